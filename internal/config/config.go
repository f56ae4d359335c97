package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where provision looks for a stack file unless told otherwise.
const DefaultPath = "/etc/driftwood/stack.yaml"

type Config struct {
	Version    string          `yaml:"version"`
	Timezone   string          `yaml:"timezone"`
	Locale     string          `yaml:"locale"`
	Host       Host            `yaml:"host"`
	Docker     Docker          `yaml:"docker"`
	Containers []ContainerSpec `yaml:"containers"`
}

type Host struct {
	ConfigRoot   string `yaml:"config_root"`
	MediaRoot    string `yaml:"media_root"`
	DownloadRoot string `yaml:"download_root"`
}

type Docker struct {
	DaemonConfigPath string   `yaml:"daemon_config_path"`
	LogDriver        string   `yaml:"log_driver"`
	InstallURL       string   `yaml:"install_url"`
	InstallSHA256    string   `yaml:"install_sha256,omitempty"`
	NetworkTimeout   Duration `yaml:"network_timeout"`
}

// Duration wraps time.Duration so stack files can say "15m" instead of
// nanosecond integers.
type Duration time.Duration

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Load reads a stack file from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stack file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing stack file: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrDefault reads the stack file at path, falling back to the built-in
// stack when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling stack: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Exists returns true if a stack file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// applyDefaults fills in zero-valued fields so a sparse stack file still
// resolves to a complete configuration.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Timezone == "" {
		c.Timezone = def.Timezone
	}
	if c.Locale == "" {
		c.Locale = def.Locale
	}
	if c.Host.ConfigRoot == "" {
		c.Host.ConfigRoot = def.Host.ConfigRoot
	}
	if c.Host.MediaRoot == "" {
		c.Host.MediaRoot = def.Host.MediaRoot
	}
	if c.Host.DownloadRoot == "" {
		c.Host.DownloadRoot = def.Host.DownloadRoot
	}
	if c.Docker.DaemonConfigPath == "" {
		c.Docker.DaemonConfigPath = def.Docker.DaemonConfigPath
	}
	if c.Docker.LogDriver == "" {
		c.Docker.LogDriver = def.Docker.LogDriver
	}
	if c.Docker.InstallURL == "" {
		c.Docker.InstallURL = def.Docker.InstallURL
	}
	if c.Docker.NetworkTimeout == 0 {
		c.Docker.NetworkTimeout = def.Docker.NetworkTimeout
	}
	if c.Containers == nil {
		c.Containers = def.Containers
	}
}

// MountDirs returns every host directory the stack bind-mounts, deduplicated,
// in launch order. Runtime sockets (paths under /var/run or /run) are
// excluded — those must already exist.
func (c *Config) MountDirs() []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, spec := range c.Containers {
		for _, v := range spec.Volumes {
			mount, err := ParseVolume(v)
			if err != nil {
				continue
			}
			if isRuntimePath(mount.Host) || seen[mount.Host] {
				continue
			}
			seen[mount.Host] = true
			dirs = append(dirs, mount.Host)
		}
	}
	return dirs
}

func isRuntimePath(path string) bool {
	return strings.HasPrefix(path, "/var/run/") || strings.HasPrefix(path, "/run/")
}
