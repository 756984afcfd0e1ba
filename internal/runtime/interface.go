package runtime

import (
	"context"
	"fmt"

	"github.com/skorokithakis/dockrun/internal/config"
)

// Runtime defines the interface for container runtime CLIs.
type Runtime interface {
	// Name returns the runtime flavor, e.g. "docker".
	Name() string

	// Binary returns the executable invoked for every command.
	Binary() string

	// IsAvailable checks if the runtime is installed and responding.
	IsAvailable(ctx context.Context) error

	// LogsArgs returns the arguments that follow a container's log output.
	LogsArgs(appName string) []string
}

// New returns the runtime selected by the global configuration.
func New(cfg *config.GlobalConfig) (Runtime, error) {
	binary := ""
	name := "docker"
	if cfg != nil {
		binary = cfg.Binary
		if cfg.Runtime != "" {
			name = cfg.Runtime
		}
	}

	switch name {
	case "docker":
		return NewDockerRuntime(binary), nil
	case "podman":
		return NewPodmanRuntime(binary), nil
	default:
		return nil, fmt.Errorf("unsupported runtime %q (want docker or podman)", name)
	}
}
