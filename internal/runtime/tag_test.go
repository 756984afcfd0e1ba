package runtime

import (
	"strings"
	"testing"

	"github.com/skorokithakis/dockrun/internal/config"
)

func TestImageTag(t *testing.T) {
	tests := []struct {
		name       string
		org        string
		image      string
		version    string
		wantTag    string
		wantLatest string
	}{
		{name: "org and name", org: "acme", image: "api", version: "1.0.0", wantTag: "acme/api:1.0.0", wantLatest: "acme/api:latest"},
		{name: "no org", org: "", image: "api", version: "1.0.0", wantTag: "api:1.0.0", wantLatest: "api:latest"},
		{name: "whitespace trimmed", org: "  acme ", image: " api", version: "dev", wantTag: "acme/api:dev", wantLatest: "acme/api:latest"},
		{name: "registry org", org: "ghcr.io/acme", image: "api", version: "2", wantTag: "ghcr.io/acme/api:2", wantLatest: "ghcr.io/acme/api:latest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{ImageOrg: tt.org, ImageName: tt.image, Version: tt.version}

			tag := ImageTag(cfg)
			latest := ImageTagLatest(cfg)
			if tag != tt.wantTag {
				t.Errorf("ImageTag() = %s, want %s", tag, tt.wantTag)
			}
			if latest != tt.wantLatest {
				t.Errorf("ImageTagLatest() = %s, want %s", latest, tt.wantLatest)
			}
			if strings.HasPrefix(tag, "/") {
				t.Errorf("ImageTag() = %s has a leading slash", tag)
			}
			if repo := ImageRepo(cfg); !strings.HasPrefix(tag, repo+":") || !strings.HasPrefix(latest, repo+":") {
				t.Errorf("tags %s and %s do not share repo %s", tag, latest, repo)
			}
		})
	}
}

func TestRetagRef(t *testing.T) {
	tests := []struct {
		name    string
		current string
		newTag  string
		want    string
		wantErr bool
	}{
		{name: "org repo", current: "org/app:latest", newTag: "1.2.3", want: "org/app:1.2.3"},
		{name: "bare repo", current: "app:1.0.0", newTag: "stable", want: "app:stable"},
		{name: "registry port", current: "localhost:5000/app:dev", newTag: "v2", want: "localhost:5000/app:v2"},
		{name: "upper case falls back", current: "Org/App:latest", newTag: "1.0", want: "Org/App:1.0"},
		{name: "invalid tag", current: "org/app:latest", newTag: "bad tag", wantErr: true},
		{name: "tag with slash", current: "org/app:latest", newTag: "a/b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RetagRef(tt.current, tt.newTag)
			if tt.wantErr {
				if err == nil {
					t.Errorf("RetagRef(%s, %s) = %s, want error", tt.current, tt.newTag, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("RetagRef() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RetagRef(%s, %s) = %s, want %s", tt.current, tt.newTag, got, tt.want)
			}
		})
	}
}
