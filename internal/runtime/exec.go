package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/kballard/go-shellquote"
	"github.com/sirupsen/logrus"
	"github.com/skorokithakis/dockrun/internal/utils"
)

// Policy controls how a single runtime invocation treats failures and output.
type Policy struct {
	// TolerateFailure swallows non-zero exits and launch failures.
	TolerateFailure bool
	// Quiet discards the command's standard streams.
	Quiet bool
}

// Executor runs one runtime command to completion.
type Executor interface {
	Exec(ctx context.Context, args []string, policy Policy) error
}

// ExitError reports a runtime command that exited with a non-zero status.
type ExitError struct {
	Code    int
	Command string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command failed (exit=%d): %s", e.Code, e.Command)
}

// CommandRunner executes runtime commands as child processes.
type CommandRunner struct {
	Binary string
	DryRun bool
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewCommandRunner creates a runner for binary that inherits the process's
// standard streams.
func NewCommandRunner(binary string, dryRun bool) *CommandRunner {
	return &CommandRunner{
		Binary: binary,
		DryRun: dryRun,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Exec runs the binary with args and blocks until it exits.
func (r *CommandRunner) Exec(ctx context.Context, args []string, policy Policy) error {
	fullCmd := shellquote.Join(append([]string{r.Binary}, args...)...)

	if r.DryRun {
		fmt.Fprintf(r.Stdout, "[DRY RUN] %s\n", fullCmd)
		return nil
	}

	cmd := exec.CommandContext(ctx, r.Binary, args...)
	if !policy.Quiet {
		cmd.Stdin = r.Stdin
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
	}
	logrus.Debugf("Running: %s", fullCmd)

	// The child shares our terminal and receives interrupts itself.
	stop := utils.HoldSignals()
	err := cmd.Run()
	stop()

	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitCode(exitErr)
		if policy.TolerateFailure {
			logrus.Debugf("Ignoring failure (exit=%d): %s", code, fullCmd)
			return nil
		}
		return &ExitError{Code: code, Command: fullCmd}
	}

	if policy.TolerateFailure {
		logrus.Debugf("Ignoring failure: %s: %v", fullCmd, err)
		return nil
	}
	logrus.Errorf("Failed to run: %s", fullCmd)
	return fmt.Errorf("failed to run %s: %w", r.Binary, err)
}

// exitCode maps a child's termination to a shell-style exit status.
func exitCode(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	if code := exitErr.ExitCode(); code > 0 {
		return code
	}
	return 1
}
