package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"
)

const (
	defaultAppName       = "app"
	defaultVersion       = "latest"
	defaultPort          = 3000
	defaultRestartPolicy = "unless-stopped"
)

// Environment is the process state Resolve reads besides the documents.
type Environment struct {
	// LookupEnv reports the value of an environment variable and whether it is set.
	LookupEnv func(key string) (string, bool)
	// HomeDir replaces a leading "~/" in volume host paths.
	HomeDir string
}

func (e Environment) lookup(key string) (string, bool) {
	if e.LookupEnv == nil {
		return "", false
	}
	return e.LookupEnv(key)
}

// getenv returns the value of key when it is set and non-empty.
func (e Environment) getenv(key string) string {
	v, _ := e.lookup(key)
	return v
}

// Merge overlays local on base. Top-level keys of local replace the base
// value wholesale; nested mappings are not merged. Neither input is modified.
func Merge(base, local Document) Document {
	merged := make(Document, len(base)+len(local))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range local {
		merged[k] = v
	}
	return merged
}

// Resolve merges the documents, applies defaults and environment overrides
// and returns the final configuration.
func Resolve(base, local Document, env Environment) (Config, error) {
	fc, err := decode(Merge(base, local), local)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppName:           orDefault(fc.AppName, defaultAppName),
		ImageOrg:          fc.ImageOrg,
		RestartPolicy:     orDefault(fc.RestartPolicy, defaultRestartPolicy),
		DockerfileTargets: fc.DockerfileTargets,
		Env:               fc.Env,
		BuildArgs:         fc.BuildArgs,
		RunArgs:           fc.RunArgs,
		Healthcheck:       fc.Healthcheck,
	}
	cfg.ImageName = orDefault(fc.ImageName, cfg.AppName)
	cfg.Version = orDefault(env.getenv("VERSION"), orDefault(fc.Version, defaultVersion))

	// PORT=0 is taken as given; a zero or missing port in the files is not.
	if port := env.getenv("PORT"); port != "" {
		cfg.Port, err = parsePort(port)
	} else {
		cfg.Port, err = parsePort(fc.Port)
		if cfg.Port == 0 {
			cfg.Port = defaultPort
		}
	}
	if err != nil {
		return Config{}, err
	}

	// GPUS wins whenever it is set, so an empty value disables the config's gpus.
	if gpus, ok := env.lookup("GPUS"); ok {
		cfg.GPUs = gpus
	} else {
		cfg.GPUs = fc.GPUs
	}

	if cfg.DockerfileTargets == nil {
		cfg.DockerfileTargets = map[string]string{}
	}
	if cfg.Env == nil {
		cfg.Env = map[string]*string{}
	}
	if cfg.BuildArgs == nil {
		cfg.BuildArgs = []string{}
	}
	if cfg.RunArgs == nil {
		cfg.RunArgs = []string{}
	}

	cfg.Volumes = make([]string, 0, len(fc.Volumes))
	for _, volume := range fc.Volumes {
		cfg.Volumes = append(cfg.Volumes, expandVolume(volume, env.HomeDir))
	}

	cfg.TagLatestOnPublish = fc.TagLatestOnPublish == nil || *fc.TagLatestOnPublish

	if v := env.getenv("APP_NAME"); v != "" {
		cfg.AppName = v
	}
	if v := env.getenv("IMAGE_NAME"); v != "" {
		cfg.ImageName = v
	}
	if v := env.getenv("IMAGE_ORG"); v != "" {
		cfg.ImageOrg = v
	}

	return cfg, nil
}

// decode converts a merged document into its typed form. Each key is
// checked on its own first so a type error names the file that set it.
func decode(merged, local Document) (*fileConfig, error) {
	fc := &fileConfig{}
	if len(merged) == 0 {
		return fc, nil
	}

	doc, err := normalizeDocument(merged, local)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := decodeInto(&fileConfig{}, Document{key: doc[key]}); err != nil {
			return nil, fmt.Errorf("%s: invalid %s: %w", sourceFile(key, local), key, err)
		}
	}

	if err := decodeInto(fc, doc); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return fc, nil
}

func decodeInto(fc *fileConfig, doc Document) error {
	data, err := yaml.Marshal(map[string]any(doc))
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, fc)
}

// normalizeDocument returns a copy of doc with scalar forms of list keys
// rewritten as lists. A string buildArgs or runArgs is split into words the
// way a shell would, and a string healthcheck test runs through the shell.
func normalizeDocument(doc, local Document) (Document, error) {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	for _, key := range []string{"buildArgs", "runArgs"} {
		v, ok := out[key]
		if !ok || v == nil {
			continue
		}
		if _, isList := v.([]any); isList {
			continue
		}
		if _, isMap := v.(map[string]any); isMap {
			continue
		}
		words, err := shellquote.Split(fmt.Sprint(v))
		if err != nil {
			return nil, fmt.Errorf("%s: invalid %s %q: %w", sourceFile(key, local), key, v, err)
		}
		list := make([]any, len(words))
		for i, w := range words {
			list[i] = w
		}
		out[key] = list
	}

	if hc, ok := out["healthcheck"].(map[string]any); ok {
		if test, isString := hc["test"].(string); isString {
			copied := make(map[string]any, len(hc))
			for k, v := range hc {
				copied[k] = v
			}
			copied["test"] = []any{"CMD-SHELL", test}
			out["healthcheck"] = copied
		}
	}

	return out, nil
}

// sourceFile names the file a merged key came from.
func sourceFile(key string, local Document) string {
	if _, ok := local[key]; ok {
		return LocalFile
	}
	return BaseFile
}

func parsePort(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %w", value, err)
	}
	return port, nil
}

// expandVolume expands a leading "~/" in the host side of a host:container mount.
func expandVolume(volume, home string) string {
	host, container, found := strings.Cut(volume, ":")
	if strings.HasPrefix(host, "~/") && home != "" {
		host = filepath.Join(home, host[2:])
	}
	if !found {
		return host
	}
	return host + ":" + container
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
