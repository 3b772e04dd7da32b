// Package config loads tool configuration from a YAML file with a
// small search path, falling back to defaults when no file exists.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "slidetrace.yaml"

// Config holds tool settings. Zero values are filled in from Default
// during load, so a partial file only overrides what it names.
type Config struct {
	// Workers bounds how many slides are extracted concurrently.
	Workers int `yaml:"workers"`

	// Format is the default output format: "text" or "json".
	Format string `yaml:"format"`

	// Database is the run archive path; empty disables archiving.
	Database string `yaml:"database,omitempty"`

	// FailFast aborts a run on the first slide whose markup fails to
	// parse instead of recording the failure and continuing.
	FailFast bool `yaml:"fail_fast"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Workers: 4,
		Format:  "text",
	}
}

// Load reads configuration from the given path. An empty path walks
// the search path: ./slidetrace.yaml, then ~/.slidetrace/config.yaml.
// No file found is not an error - defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	slog.Debug("configuration loaded", "path", path)
	return cfg, nil
}

func (c Config) validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("format must be \"text\" or \"json\", got %q", c.Format)
	}
	return nil
}

// findConfigPath returns the first existing config file on the search
// path, or "".
func findConfigPath() string {
	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".slidetrace", "config.yaml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
