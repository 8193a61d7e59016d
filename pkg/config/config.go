// Package config loads the bessd daemon configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds daemon settings. Everything has a usable default; a config
// file and flags override. The control core itself touches no files.
type Config struct {
	// ListenAddr is the gRPC control API endpoint.
	ListenAddr string `yaml:"listen_addr"`

	// HealthAddr serves /health, /ready, and /metrics.
	HealthAddr string `yaml:"health_addr"`

	// DefaultCore hosts worker 0 when AddTc auto-launches it.
	DefaultCore int `yaml:"default_core"`

	// TrackGates includes per-gate counters in module info dumps.
	TrackGates bool `yaml:"track_gates"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ListenAddr:  "127.0.0.1:10514",
		HealthAddr:  "127.0.0.1:10515",
		DefaultCore: 0,
		LogLevel:    "info",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
