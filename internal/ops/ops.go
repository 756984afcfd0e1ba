// Package ops implements the dockrun operations on top of the resolved
// configuration and a runtime executor.
package ops

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/skorokithakis/dockrun/internal/config"
	"github.com/skorokithakis/dockrun/internal/runtime"
)

// ErrTagRequired is returned by Tag when no new tag is given.
var ErrTagRequired = errors.New("a new tag is required")

// ProdTarget is the build target publish always builds.
const ProdTarget = "prod"

// Ops runs operations for one resolved configuration.
type Ops struct {
	Config  config.Config
	Runtime runtime.Runtime
	Exec    runtime.Executor
	// Out receives progress messages.
	Out io.Writer
}

// New creates Ops that print progress to stdout.
func New(cfg config.Config, rt runtime.Runtime, exec runtime.Executor) *Ops {
	return &Ops{Config: cfg, Runtime: rt, Exec: exec, Out: os.Stdout}
}

func (o *Ops) printf(format string, args ...any) {
	if o.Out != nil {
		fmt.Fprintf(o.Out, format, args...)
	}
}

func (o *Ops) run(ctx context.Context, args []string) error {
	return o.Exec.Exec(ctx, args, runtime.Policy{})
}

// Build builds the image for target, or for the dev target when empty.
func (o *Ops) Build(ctx context.Context, target string) error {
	args := runtime.BuildArgs(o.Config, target)
	o.printf("%s %s\n", o.Runtime.Name(), strings.Join(args, " "))
	return o.run(ctx, args)
}

// Run starts the application container in the background.
func (o *Ops) Run(ctx context.Context) error {
	args := runtime.RunArgs(o.Config)
	o.printf("%s %s\n", o.Runtime.Name(), strings.Join(args, " "))
	return o.run(ctx, args)
}

// StopRemove makes sure the application container is gone. A container that
// does not exist, or fails to stop, is not an error.
func (o *Ops) StopRemove(ctx context.Context) error {
	o.printf("Stopping and removing existing container if any...\n")
	o.printf("Container name: %s\n", o.Config.AppName)

	bestEffort := runtime.Policy{TolerateFailure: true, Quiet: true}
	if err := o.Exec.Exec(ctx, runtime.StopArgs(o.Config), bestEffort); err != nil {
		return err
	}
	if err := o.Exec.Exec(ctx, runtime.RemoveArgs(o.Config), bestEffort); err != nil {
		return err
	}

	o.printf("Stopped and removed (if existed): %s\n", o.Config.AppName)
	o.printf("Done.\n")
	return nil
}

// Tag tags the current image with newTag in the same repository.
func (o *Ops) Tag(ctx context.Context, newTag string) error {
	if newTag == "" {
		return ErrTagRequired
	}

	current := runtime.ImageTag(o.Config)
	fullNew, err := runtime.RetagRef(current, newTag)
	if err != nil {
		return err
	}

	o.printf("Tagging %s -> %s\n", current, fullNew)
	return o.run(ctx, runtime.TagArgs(current, fullNew))
}

// Publish builds the prod image and pushes it, plus a :latest alias when
// tagLatestOnPublish is set.
func (o *Ops) Publish(ctx context.Context) error {
	tag := runtime.ImageTag(o.Config)
	latestTag := runtime.ImageTagLatest(o.Config)

	o.printf("Building prod image before publish...\n")
	if err := o.Build(ctx, ProdTarget); err != nil {
		return err
	}

	o.printf("Pushing %s ...\n", tag)
	if err := o.run(ctx, runtime.PushArgs(tag)); err != nil {
		return err
	}

	if o.Config.TagLatestOnPublish && !strings.HasSuffix(tag, ":latest") {
		o.printf("Tagging %s as %s and pushing...\n", tag, latestTag)
		if err := o.run(ctx, runtime.TagArgs(tag, latestTag)); err != nil {
			return err
		}
		if err := o.run(ctx, runtime.PushArgs(latestTag)); err != nil {
			return err
		}
	}

	o.printf("Publish complete.\n")
	return nil
}

// Logs follows the application container's logs.
func (o *Ops) Logs(ctx context.Context) error {
	return o.run(ctx, o.Runtime.LogsArgs(o.Config.AppName))
}

// Ps lists the application's containers.
func (o *Ops) Ps(ctx context.Context) error {
	return o.run(ctx, runtime.PsArgs(o.Config))
}
