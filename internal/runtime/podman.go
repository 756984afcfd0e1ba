package runtime

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// PodmanRuntime implements the Runtime interface for Podman.
type PodmanRuntime struct {
	binary string
}

// NewPodmanRuntime creates a new Podman runtime.
func NewPodmanRuntime(binary string) *PodmanRuntime {
	if binary == "" {
		binary = "podman"
	}
	return &PodmanRuntime{binary: binary}
}

// Name returns "podman".
func (r *PodmanRuntime) Name() string { return "podman" }

// Binary returns the Podman executable.
func (r *PodmanRuntime) Binary() string { return r.binary }

// IsAvailable checks if Podman is available.
func (r *PodmanRuntime) IsAvailable(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, r.binary, "version", "--format", "{{.Client.Version}}")
	output, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("Podman not available. Is Podman installed?")
	}
	logrus.Debugf("Podman version %s", strings.TrimSpace(string(output)))
	return nil
}

// LogsArgs follows the container's logs. Podman has no --no-log-prefix.
func (r *PodmanRuntime) LogsArgs(appName string) []string {
	return []string{"logs", "-f", appName}
}
