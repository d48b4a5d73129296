// Package config loads spots CLI settings using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for the spots CLI.
type Config struct {
	DefaultKind    string  `mapstructure:"default_kind" yaml:"default_kind"`
	ItemSpacing    float64 `mapstructure:"item_spacing" yaml:"item_spacing"`
	LineSpacing    float64 `mapstructure:"line_spacing" yaml:"line_spacing"`
	ViewportWidth  float64 `mapstructure:"viewport_width" yaml:"viewport_width"`
	ViewportHeight float64 `mapstructure:"viewport_height" yaml:"viewport_height"`
	SnapshotScale  float64 `mapstructure:"snapshot_scale" yaml:"snapshot_scale"`
	LogLevel       string  `mapstructure:"log_level" yaml:"log_level"`
	LogFile        string  `mapstructure:"log_file" yaml:"log_file"`
}

// keys lists every setting; each is bound to SPOTS_<KEY>.
var keys = []string{
	"default_kind",
	"item_spacing",
	"line_spacing",
	"viewport_width",
	"viewport_height",
	"snapshot_scale",
	"log_level",
	"log_file",
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("spots")

	v.SetDefault("default_kind", "grid")
	v.SetDefault("item_spacing", 0)
	v.SetDefault("line_spacing", 0)
	v.SetDefault("viewport_width", 375)
	v.SetDefault("viewport_height", 667)
	v.SetDefault("snapshot_scale", 1)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("SPOTS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range keys {
		if err := v.BindEnv(key, "SPOTS_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// The project file is merged so it only overrides the keys it sets.
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the layout engine cannot use.
func (c *Config) Validate() error {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("viewport must be positive, got %gx%g", c.ViewportWidth, c.ViewportHeight)
	}
	if c.ItemSpacing < 0 || c.LineSpacing < 0 {
		return fmt.Errorf("spacing must not be negative")
	}
	if c.SnapshotScale <= 0 {
		return fmt.Errorf("snapshot_scale must be positive, got %g", c.SnapshotScale)
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/spots/spots.yml or $XDG_CONFIG_HOME/spots/spots.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spots", "spots.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spots", "spots.yml")
}

// ProjectPath returns the project-local config path, ./spots.yml.
func ProjectPath() string {
	return "spots.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
