// Package config loads the server configuration from the environment.
//
// Variables use the DASHBOARD_ prefix and the first underscore after it
// separates the section from the key, e.g. DASHBOARD_DATABASE_MAX_OPEN_CONNS
// maps to Config.Database.MaxOpenConns.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "DASHBOARD_"

type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Log      LogConfig      `koanf:"log" validate:"required"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development production"`
}

type ServerConfig struct {
	Port string `koanf:"port" validate:"required"`
	// Comma separated list
	CORSAllowedOrigins string `koanf:"cors_allowed_origins" validate:"required"`
}

type DatabaseConfig struct {
	DSN             string        `koanf:"dsn" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	SlowQueryMs     int           `koanf:"slow_query_ms" validate:"gte=0"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"required,oneof=trace debug info warn error"`
}

func defaults() *Config {
	return &Config{
		Primary: Primary{Env: "local"},
		Server: ServerConfig{
			Port:               "8080",
			CORSAllowedOrigins: "http://localhost:3000",
		},
		Database: DatabaseConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			SlowQueryMs:     200,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads DASHBOARD_* variables on top of the defaults and validates the result.
// POSTGRES_URL is accepted as the DSN when DASHBOARD_DATABASE_DSN is unset.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = os.Getenv("POSTGRES_URL")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c ServerConfig) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c DatabaseConfig) SlowQueryThreshold() time.Duration {
	return time.Duration(c.SlowQueryMs) * time.Millisecond
}

func (p Primary) IsLocal() bool {
	return p.Env == "local"
}
