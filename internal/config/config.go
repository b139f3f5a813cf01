package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// Config is read from a YAML file located by the PULSE_CONFIG env var
// (default config.yaml). Zero values fall back to the defaults below.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	DBPath     string `yaml:"db_path"`
	APIBaseURL string `yaml:"api_base_url"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
}

const (
	defaultListenAddr = ":8080"
	defaultDBPath     = "pulse.db"
	defaultAPIBaseURL = "http://localhost:8080"
)

func Load() (*Config, error) {
	path := os.Getenv("PULSE_CONFIG")
	if path == "" {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadOrDefault is for commands that should work without a config file.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		cfg = &Config{}
		cfg.applyDefaults()
	}
	return cfg
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}
	if c.DBPath == "" {
		c.DBPath = defaultDBPath
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = defaultAPIBaseURL
	}
}
