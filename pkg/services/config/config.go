// Package config loads the service configuration from an optional YAML file
// and the environment, environment taking precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Addr        string `mapstructure:"addr"`
	DatabaseURL string `mapstructure:"database_url"`
	FontDir     string `mapstructure:"font_dir"`
}

// Load reads configuration from path (skipped when empty) and from ADDR,
// DATABASE_URL and FONT_DIR environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("font_dir", "fonts")

	for _, key := range []string{"addr", "database_url", "font_dir"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("database_url is required")
	}

	return &cfg, nil
}
