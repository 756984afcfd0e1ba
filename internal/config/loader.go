package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// BaseFile is the required project configuration file.
	BaseFile = "config.yaml"
	// LocalFile is the optional, usually untracked, override file.
	LocalFile = "config.local.yaml"
)

// ErrMissingConfig is returned when the project has no config.yaml.
var ErrMissingConfig = errors.New("missing configuration")

// Loader handles configuration loading.
type Loader struct {
	configHome string
	projectDir string
}

// NewLoader creates a new configuration loader for the project in projectDir.
func NewLoader(projectDir string) *Loader {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	if projectDir == "" {
		projectDir = "."
	}
	return &Loader{
		configHome: configHome,
		projectDir: projectDir,
	}
}

// LoadGlobalConfig loads the per-user dockrun configuration. DOCKRUN_*
// environment variables and the given runtime flag, when changed, override
// the file.
func (l *Loader) LoadGlobalConfig(runtimeFlag *pflag.Flag) (*GlobalConfig, error) {
	globalViper := viper.New()
	globalViper.SetConfigFile(filepath.Join(l.configHome, "dockrun", "config.yaml"))
	globalViper.SetDefault("runtime", "docker")
	globalViper.SetDefault("binary", "")
	globalViper.SetEnvPrefix("dockrun")
	globalViper.AutomaticEnv()
	if runtimeFlag != nil {
		if err := globalViper.BindPFlag("runtime", runtimeFlag); err != nil {
			return nil, fmt.Errorf("failed to bind runtime flag: %w", err)
		}
	}

	if err := globalViper.ReadInConfig(); err != nil {
		// A missing global config is fine; anything else is not.
		if !errors.Is(err, os.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read global config: %w", err)
			}
		}
	}

	config := &GlobalConfig{}
	if err := globalViper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal global config: %w", err)
	}

	return config, nil
}

// LoadDocuments reads config.yaml and, if present, config.local.yaml.
func (l *Loader) LoadDocuments() (base, local Document, err error) {
	basePath := filepath.Join(l.projectDir, BaseFile)
	base, err = readDocument(basePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s not found at %s", ErrMissingConfig, BaseFile, absOr(l.projectDir))
		}
		return nil, nil, err
	}

	local, err = readDocument(filepath.Join(l.projectDir, LocalFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, nil, err
	}

	return base, local, nil
}

// Load reads the project files and resolves them against the process environment.
func (l *Loader) Load() (Config, error) {
	base, local, err := l.LoadDocuments()
	if err != nil {
		return Config{}, err
	}

	home, _ := os.UserHomeDir()
	return Resolve(base, local, Environment{
		LookupEnv: os.LookupEnv,
		HomeDir:   home,
	})
}

// readDocument parses a YAML file into a Document. An empty file yields an
// empty Document.
func readDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc := Document{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

func absOr(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
