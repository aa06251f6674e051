package internal

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user settings read from the YAML config file
type Config struct {
	ProjectsDir string `yaml:"projects_dir,omitempty"`
	HomePrefix  string `yaml:"home_prefix,omitempty"`
	Format      string `yaml:"format,omitempty"`
}

// DefaultConfigPath returns ~/.config/session-history/config.yaml
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "session-history", "config.yaml")
}

// LoadConfig reads the config file at path. A missing file at the default
// location yields an empty config; a missing explicit path is an error.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, &StorageError{Path: path, Op: "read", Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Source: "config", Key: path, Err: err}
	}
	LogDebug("Loaded config from %s", path)
	return &cfg, nil
}

// ResolveStoragePaths picks the projects directory: an explicit flag value,
// then CLAUDE_CONFIG_DIR, then the config file, then ~/.claude/projects.
func (c *Config) ResolveStoragePaths(flagProjectsDir string) (StoragePaths, error) {
	dir := flagProjectsDir
	if dir == "" && os.Getenv(ConfigDirEnv) == "" {
		dir = c.ProjectsDir
	}
	return GetStoragePaths(dir)
}
