// Package config loads the station console configuration from YAML.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-stations/pkg/logging"
	"github.com/dd0wney/cluso-stations/pkg/registry"
	"github.com/dd0wney/cluso-stations/pkg/validation"
)

// Shell modes.
const (
	ModeConsole = "console"
	ModeTUI     = "tui"
)

// Config is the root of the YAML file. Every key is optional.
type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shell    ShellConfig    `yaml:"shell"`
	Audit    AuditConfig    `yaml:"audit"`
}

// RegistryConfig sizes the slot collections.
type RegistryConfig struct {
	StationCapacity    int `yaml:"station_capacity"`
	ConnectionCapacity int `yaml:"connection_capacity"`
}

// LoggingConfig selects the structured log level and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Output string `yaml:"output"`
}

// ShellConfig controls the console front end.
type ShellConfig struct {
	Color          bool   `yaml:"color"`
	SeparatorWidth int    `yaml:"separator_width"`
	Mode           string `yaml:"mode"`
}

// AuditConfig sizes the activity log ring buffer.
type AuditConfig struct {
	BufferSize int `yaml:"buffer_size"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Registry: RegistryConfig{
			StationCapacity:    registry.DefaultStationCapacity,
			ConnectionCapacity: registry.DefaultConnectionCapacity,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Output: logging.OutputStderr,
		},
		Shell: ShellConfig{
			Color:          true,
			SeparatorWidth: 50,
			Mode:           ModeConsole,
		},
		Audit: AuditConfig{
			BufferSize: 256,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping values for keys that are absent.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	return nil
}

// ApplyEnv applies the LOG_LEVEL override.
func (c *Config) ApplyEnv() {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		c.Logging.Level = strings.ToLower(lvl)
	}
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	return validation.NewConfigValidator("Config").
		RangeInt("registry.station_capacity", c.Registry.StationCapacity, 1, 64).
		RangeInt("registry.connection_capacity", c.Registry.ConnectionCapacity, 1, 64).
		OneOf("logging.level", c.Logging.Level, []string{"debug", "info", "warn", "warning", "error"}).
		OneOf("logging.output", c.Logging.Output, []string{logging.OutputStderr, logging.OutputStdout, logging.OutputDiscard}).
		OneOf("shell.mode", c.Shell.Mode, []string{ModeConsole, ModeTUI}).
		When(c.Shell.Mode == ModeConsole, func(v *validation.ConfigValidator) {
			v.RangeInt("shell.separator_width", c.Shell.SeparatorWidth, 0, 200)
		}).
		RangeInt("audit.buffer_size", c.Audit.BufferSize, 1, 10000).
		Validate()
}

// RegistryConfig converts the registry section.
func (c *Config) RegistryConfig() registry.Config {
	return registry.Config{
		StationCapacity:    c.Registry.StationCapacity,
		ConnectionCapacity: c.Registry.ConnectionCapacity,
	}
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Logging.Level)
}
