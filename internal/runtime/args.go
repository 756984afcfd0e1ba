package runtime

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/skorokithakis/dockrun/internal/config"
)

// DefaultTarget is the build target used when none is given.
const DefaultTarget = "dev"

// ResolveTarget maps a symbolic target through dockerfileTargets. Unmapped
// names are used as the stage name directly.
func ResolveTarget(cfg config.Config, target string) string {
	if target == "" {
		target = DefaultTarget
	}
	if stage := cfg.DockerfileTargets[target]; stage != "" {
		return stage
	}
	return target
}

// BuildArgs returns the arguments for building the image for target.
func BuildArgs(cfg config.Config, target string) []string {
	args := []string{
		"build",
		"--target", ResolveTarget(cfg, target),
		"-t", ImageTag(cfg),
		".",
	}
	return append(args, cfg.BuildArgs...)
}

// RunArgs returns the arguments for starting the application container.
func RunArgs(cfg config.Config) []string {
	port := strconv.Itoa(cfg.Port)
	args := []string{
		"run",
		"--name", cfg.AppName,
		"--restart", cfg.RestartPolicy,
		"-d",
		"-p", port + ":" + port,
	}

	if cfg.GPUs != "" {
		args = append(args, "--gpus", cfg.GPUs)
	}

	for _, volume := range cfg.Volumes {
		args = append(args, "-v", volume)
	}

	// Sorted so the same config always yields the same command.
	keys := make([]string, 0, len(cfg.Env))
	for k := range cfg.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := cfg.Env[k]; v == nil {
			args = append(args, "-e", k)
		} else {
			args = append(args, "-e", k+"="+*v)
		}
	}

	args = append(args, HealthArgs(cfg.Healthcheck)...)
	args = append(args, cfg.RunArgs...)
	return append(args, ImageTag(cfg))
}

// HealthArgs returns the --health-* flags for hc, or nothing when hc has
// no test command.
func HealthArgs(hc *config.Healthcheck) []string {
	if hc == nil || len(hc.Test) == 0 {
		return nil
	}
	if len(hc.Test) == 1 && strings.EqualFold(hc.Test[0], "NONE") {
		return []string{"--no-healthcheck"}
	}

	args := []string{"--health-cmd=" + HealthCommand(hc.Test)}
	if hc.Interval != "" {
		args = append(args, "--health-interval="+hc.Interval)
	}
	if hc.Timeout != "" {
		args = append(args, "--health-timeout="+hc.Timeout)
	}
	if hc.Retries != nil {
		args = append(args, fmt.Sprintf("--health-retries=%d", *hc.Retries))
	}
	if hc.StartPeriod != "" {
		args = append(args, "--health-start-period="+hc.StartPeriod)
	}
	return args
}

// HealthCommand turns a Dockerfile-style HEALTHCHECK test array into the
// shell string --health-cmd expects.
func HealthCommand(test []string) string {
	switch strings.ToUpper(test[0]) {
	case "CMD-SHELL":
		return strings.Join(test[1:], " ")
	case "CMD":
		return shellquote.Join(test[1:]...)
	default:
		return shellquote.Join(test...)
	}
}

// StopArgs stops the application container without a grace period.
func StopArgs(cfg config.Config) []string {
	return []string{"stop", "-t", "0", cfg.AppName}
}

// RemoveArgs force-removes the application container.
func RemoveArgs(cfg config.Config) []string {
	return []string{"rm", "-f", cfg.AppName}
}

// TagArgs tags source as target.
func TagArgs(source, target string) []string {
	return []string{"tag", source, target}
}

// PushArgs pushes ref to its registry.
func PushArgs(ref string) []string {
	return []string{"push", ref}
}

// PsArgs lists containers whose name matches the application.
func PsArgs(cfg config.Config) []string {
	return []string{"ps", "--filter", "name=" + cfg.AppName}
}
