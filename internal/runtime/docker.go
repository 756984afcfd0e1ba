package runtime

import (
	"context"
	"fmt"

	"github.com/docker/docker/client"
	"github.com/sirupsen/logrus"
)

// DockerRuntime implements the Runtime interface for the Docker CLI.
type DockerRuntime struct {
	binary string
}

// NewDockerRuntime creates a new Docker runtime. An empty binary means
// "docker" from PATH.
func NewDockerRuntime(binary string) *DockerRuntime {
	if binary == "" {
		binary = "docker"
	}
	return &DockerRuntime{binary: binary}
}

// Name returns "docker".
func (r *DockerRuntime) Name() string { return "docker" }

// Binary returns the Docker executable.
func (r *DockerRuntime) Binary() string { return r.binary }

// IsAvailable checks if the Docker daemon is available.
func (r *DockerRuntime) IsAvailable(ctx context.Context) error {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return fmt.Errorf("failed to create Docker client: %w", err)
	}
	defer cli.Close()

	ping, err := cli.Ping(ctx)
	if err != nil {
		return fmt.Errorf("Docker daemon not responding. Is Docker running?")
	}
	logrus.Debugf("Docker daemon API version %s (%s)", ping.APIVersion, ping.OSType)
	return nil
}

// LogsArgs follows the container's logs without the per-line prefix.
func (r *DockerRuntime) LogsArgs(appName string) []string {
	return []string{"logs", "-f", "--no-log-prefix", appName}
}
