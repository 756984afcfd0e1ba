package runtime

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/distribution/reference"
	"github.com/skorokithakis/dockrun/internal/config"
)

var anchoredTag = regexp.MustCompile(`^` + reference.TagRegexp.String() + `$`)

// ImageRepo joins the non-empty, trimmed image org and name with a slash.
func ImageRepo(cfg config.Config) string {
	var parts []string
	for _, p := range []string{strings.TrimSpace(cfg.ImageOrg), strings.TrimSpace(cfg.ImageName)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}

// ImageTag returns the primary tag, repo:version.
func ImageTag(cfg config.Config) string {
	return ImageRepo(cfg) + ":" + cfg.Version
}

// ImageTagLatest returns repo:latest.
func ImageTagLatest(cfg config.Config) string {
	return ImageRepo(cfg) + ":latest"
}

// RetagRef replaces the tag of current with newTag.
func RetagRef(current, newTag string) (string, error) {
	if !anchoredTag.MatchString(newTag) {
		return "", fmt.Errorf("invalid tag %q", newTag)
	}
	return repoOf(current) + ":" + newTag, nil
}

// repoOf strips the tag and digest from ref. References the parser rejects,
// such as names with upper-case letters, fall back to cutting at the last
// colon after the final slash so a registry port is kept.
func repoOf(ref string) string {
	if parsed, err := reference.Parse(ref); err == nil {
		if named, ok := parsed.(reference.Named); ok {
			return named.Name()
		}
	}

	name, _, _ := strings.Cut(ref, "@")
	slash := strings.LastIndex(name, "/")
	if colon := strings.LastIndex(name, ":"); colon > slash {
		return name[:colon]
	}
	return name
}
