package runtime

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/skorokithakis/dockrun/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *config.GlobalConfig
		wantName   string
		wantBinary string
		wantErr    bool
	}{
		{name: "nil config", cfg: nil, wantName: "docker", wantBinary: "docker"},
		{name: "docker", cfg: &config.GlobalConfig{Runtime: "docker"}, wantName: "docker", wantBinary: "docker"},
		{name: "podman with binary", cfg: &config.GlobalConfig{Runtime: "podman", Binary: "/usr/local/bin/podman"}, wantName: "podman", wantBinary: "/usr/local/bin/podman"},
		{name: "unknown", cfg: &config.GlobalConfig{Runtime: "rkt"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := New(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("New() should have returned an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if rt.Name() != tt.wantName {
				t.Errorf("Name() = %s, want %s", rt.Name(), tt.wantName)
			}
			if rt.Binary() != tt.wantBinary {
				t.Errorf("Binary() = %s, want %s", rt.Binary(), tt.wantBinary)
			}
		})
	}
}

func TestLogsArgs(t *testing.T) {
	docker := NewDockerRuntime("")
	if diff := cmp.Diff([]string{"logs", "-f", "--no-log-prefix", "api"}, docker.LogsArgs("api")); diff != "" {
		t.Errorf("DockerRuntime.LogsArgs() mismatch (-want +got):\n%s", diff)
	}

	podman := NewPodmanRuntime("")
	if diff := cmp.Diff([]string{"logs", "-f", "api"}, podman.LogsArgs("api")); diff != "" {
		t.Errorf("PodmanRuntime.LogsArgs() mismatch (-want +got):\n%s", diff)
	}
}
