package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file
const FileName = ".bgkit.yaml"

type Config struct {
	// Directories (relative paths are resolved against the project root)
	PreferredDir string `yaml:"preferred_dir"`
	FallbackDir  string `yaml:"fallback_dir"`

	// Public URL prefix both directories are served under
	MountPoint string `yaml:"mount_point"`

	// Placeholder source
	SourceURL      string `yaml:"source_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MinBytes       int    `yaml:"min_bytes"`
	UserAgent      string `yaml:"user_agent"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		PreferredDir:   filepath.Join("static", "img"),
		FallbackDir:    "images",
		MountPoint:     "/static/img",
		SourceURL:      "https://picsum.photos/{width}/{height}",
		TimeoutSeconds: 30,
		MinBytes:       1024,
		UserAgent:      "bgkit",
		ColorTheme:     "auto",
		LogLevel:       "none",
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults restores defaults for empty or invalid values
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.PreferredDir == "" {
		c.PreferredDir = def.PreferredDir
	}
	if c.FallbackDir == "" {
		c.FallbackDir = def.FallbackDir
	}
	if c.MountPoint == "" {
		c.MountPoint = def.MountPoint
	}
	if c.SourceURL == "" {
		c.SourceURL = def.SourceURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = def.TimeoutSeconds
	}
	if c.MinBytes <= 0 {
		c.MinBytes = def.MinBytes
	}
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if !isOneOf(c.ColorTheme, "auto", "dark", "light") {
		c.ColorTheme = def.ColorTheme
	}
	if !isOneOf(c.LogLevel, "none", "normal", "debug") {
		c.LogLevel = def.LogLevel
	}
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isOneOf(value string, valid ...string) bool {
	for _, v := range valid {
		if value == v {
			return true
		}
	}
	return false
}
