// Package config handles loading and saving user configuration for kanaspell.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/kanaspell/internal/reading"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	Locale       string                    `yaml:"locale"`                 // e.g. "ja", "en"
	Dictionaries []string                  `yaml:"dictionaries,omitempty"` // .jsonl or .db files layered over the built-ins
	Labels       map[string]reading.Labels `yaml:"labels,omitempty"`
	Voice        VoiceConfig               `yaml:"voice"`
}

// VoiceConfig holds speech driver settings. Values range from 0 to 100.
type VoiceConfig struct {
	ID         string `yaml:"id"`
	Rate       int    `yaml:"rate"`
	RateBoost  bool   `yaml:"rate_boost"`
	Pitch      int    `yaml:"pitch"`
	Inflection int    `yaml:"inflection"`
	Volume     int    `yaml:"volume"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Locale: "ja",
		Labels: map[string]reading.Labels{
			"ja": reading.JapaneseLabels,
			"en": reading.DefaultLabels,
		},
		Voice: VoiceConfig{
			ID:         "V2",
			Rate:       30,
			Pitch:      50,
			Inflection: 50,
			Volume:     100,
		},
	}
}

// Load reads configuration from a YAML file. Missing fields keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadDir loads FileName from dir, falling back to Default when the file
// does not exist.
func LoadDir(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	checks := []struct {
		name string
		v    int
	}{
		{"voice.rate", c.Voice.Rate},
		{"voice.pitch", c.Voice.Pitch},
		{"voice.inflection", c.Voice.Inflection},
		{"voice.volume", c.Voice.Volume},
	}
	for _, ch := range checks {
		if ch.v < 0 || ch.v > 100 {
			return fmt.Errorf("%s must be between 0 and 100, got %d", ch.name, ch.v)
		}
	}
	return nil
}

// ResolveDictionaries returns dictionary paths with relative entries
// resolved against dir.
func (c *Config) ResolveDictionaries(dir string) []string {
	paths := make([]string, 0, len(c.Dictionaries))
	for _, p := range c.Dictionaries {
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		paths = append(paths, p)
	}
	return paths
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "kanaspell"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
