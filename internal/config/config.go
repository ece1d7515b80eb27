// Package config holds the kiosk's runtime configuration: YAML file with
// environment overrides, falling back to defaults when no file exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	// DataDir holds the key/value store and the analytics sink.
	DataDir string `yaml:"data_dir"`
	// Content is the page content manifest path.
	Content string `yaml:"content"`

	UX      UXConfig      `yaml:"ux"`
	Form    FormConfig    `yaml:"form"`
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir: ".kiosk",
		Content: "content.yaml",
		UX:      DefaultUXConfig(),
		Form:    DefaultFormConfig(),
		Logging: DefaultLoggingConfig(),
	}
}

// Load reads configuration from path. A missing file yields defaults;
// environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("KIOSK_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}
	if path := os.Getenv("KIOSK_CONTENT"); path != "" {
		c.Content = path
	}
	if v := os.Getenv("KIOSK_REDUCED_MOTION"); v == "1" || v == "true" {
		c.UX.ReducedMotion = true
	}
	c.Form.applyEnvOverrides()
}

// StorePath returns the key/value store's database path.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "kiosk.db")
}

// AnalyticsSinkPath returns the JSONL analytics sink path.
func (c *Config) AnalyticsSinkPath() string {
	return filepath.Join(c.DataDir, "analytics.jsonl")
}
