package config

// GlobalConfig represents the per-user dockrun configuration.
type GlobalConfig struct {
	Runtime string `mapstructure:"runtime" yaml:"runtime"` // docker or podman
	Binary  string `mapstructure:"binary" yaml:"binary"`   // Optional path to the runtime executable
}

// Document is a parsed configuration file before any defaults are applied.
type Document map[string]any

// Config is the resolved project configuration. It is built once per
// invocation by Resolve and is not modified afterwards.
type Config struct {
	AppName            string
	ImageOrg           string
	ImageName          string
	Version            string
	Port               int
	RestartPolicy      string
	GPUs               string             // Empty means no --gpus flag
	DockerfileTargets  map[string]string  // Symbolic target -> Dockerfile stage
	Env                map[string]*string // nil value passes the host value through
	BuildArgs          []string
	RunArgs            []string
	Volumes            []string
	Healthcheck        *Healthcheck
	TagLatestOnPublish bool
}

// Healthcheck mirrors the runtime's --health-* flags.
type Healthcheck struct {
	Test        []string `yaml:"test"`
	Interval    string   `yaml:"interval"`
	Timeout     string   `yaml:"timeout"`
	Retries     *int     `yaml:"retries"`
	StartPeriod string   `yaml:"startPeriod"`
}

// fileConfig is the on-disk shape of config.yaml. Pointer fields
// distinguish absent keys from zero values.
type fileConfig struct {
	AppName            string             `yaml:"appName"`
	ImageOrg           string             `yaml:"imageOrg"`
	ImageName          string             `yaml:"imageName"`
	Version            string             `yaml:"version"`
	Port               string             `yaml:"port"`
	RestartPolicy      string             `yaml:"restartPolicy"`
	GPUs               string             `yaml:"gpus"`
	DockerfileTargets  map[string]string  `yaml:"dockerfileTargets"`
	Env                map[string]*string `yaml:"env"`
	BuildArgs          []string           `yaml:"buildArgs"`
	RunArgs            []string           `yaml:"runArgs"`
	Volumes            []string           `yaml:"volumes"`
	Healthcheck        *Healthcheck       `yaml:"healthcheck"`
	TagLatestOnPublish *bool              `yaml:"tagLatestOnPublish"`
}
