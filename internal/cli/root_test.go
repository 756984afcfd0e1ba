package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func projectDir(t *testing.T, content string) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	if content != "" {
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRunExitCodes(t *testing.T) {
	withConfig := projectDir(t, "appName: api\nimageOrg: org\n")
	missing := projectDir(t, "")

	tests := []struct {
		name   string
		args   []string
		want   int
		stderr string
	}{
		{name: "version", args: []string{"version"}, want: 0},
		{name: "dry-run build", args: []string{"-C", withConfig, "--dry-run", "build", "prod"}, want: 0},
		{name: "dry-run publish", args: []string{"-C", withConfig, "--dry-run", "publish"}, want: 0},
		{name: "dry-run stop", args: []string{"-C", withConfig, "--dry-run", "stop"}, want: 0},
		{name: "tag without argument", args: []string{"-C", withConfig, "--dry-run", "tag"}, want: 1, stderr: "Usage: dockrun tag <newTag>"},
		{name: "tag with argument", args: []string{"-C", withConfig, "--dry-run", "tag", "1.2.3"}, want: 0},
		{name: "missing config", args: []string{"-C", missing, "--dry-run", "run"}, want: 1, stderr: "config.yaml not found"},
		{name: "unknown runtime", args: []string{"-C", withConfig, "--runtime", "rkt", "--dry-run", "ps"}, want: 1},
		{name: "unknown command", args: []string{"deploy"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if got := run(tt.args, &stdout, &stderr); got != tt.want {
				t.Errorf("run(%v) = %d, want %d", tt.args, got, tt.want)
			}
			if !strings.Contains(stderr.String(), tt.stderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.stderr)
			}
		})
	}
}

func TestRunLoadsEnvFile(t *testing.T) {
	dir := projectDir(t, "appName: api\n")
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("DOCKRUN_TEST_FROM_FILE=yes\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOCKRUN_TEST_FROM_FILE", "")
	os.Unsetenv("DOCKRUN_TEST_FROM_FILE")

	var stdout, stderr bytes.Buffer
	if got := run([]string{"-C", dir, "--env-file", envFile, "--dry-run", "ps"}, &stdout, &stderr); got != 0 {
		t.Fatalf("run() = %d, want 0", got)
	}
	if v := os.Getenv("DOCKRUN_TEST_FROM_FILE"); v != "yes" {
		t.Errorf("DOCKRUN_TEST_FROM_FILE = %q, want yes", v)
	}
}
