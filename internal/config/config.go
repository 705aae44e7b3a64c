package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string
	APITimeout   time.Duration
	DatabasePath string
}

// fileConfig is the YAML shape of the config file. The timeout is a
// time.ParseDuration string, e.g. "30s".
type fileConfig struct {
	Addr         string `yaml:"addr"`
	Timeout      string `yaml:"timeout"`
	DatabasePath string `yaml:"database_path"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:         getEnv("CARELINK_ADDR", ":8080"),
		APITimeout:   15 * time.Second,
		DatabasePath: getEnv("CARELINK_DATABASE_PATH", "carelink.db"),
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		var fc fileConfig
		dec := yaml.NewDecoder(f)
		if err := dec.Decode(&fc); err != nil {
			return nil, err
		}

		if fc.Addr != "" {
			cfg.Addr = fc.Addr
		}
		if fc.DatabasePath != "" {
			cfg.DatabasePath = fc.DatabasePath
		}
		if fc.Timeout != "" {
			d, err := time.ParseDuration(fc.Timeout)
			if err != nil {
				return nil, fmt.Errorf("invalid timeout %q: %w", fc.Timeout, err)
			}
			cfg.APITimeout = d
		}
	}

	return cfg, nil
}

// Validate checks the loaded configuration for values the server cannot
// start without.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.APITimeout)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
