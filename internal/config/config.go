package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	appenv "github.com/garrettladley/safequake/internal/env"
)

const DefaultServerURL = "http://191.234.211.2:8080"

type SessionBackend string

const (
	SessionBackendSQLite SessionBackend = "sqlite"
	SessionBackendRedis  SessionBackend = "redis"
)

type Config struct {
	ServerURL   string          `env:"SERVER_URL" envDefault:"http://191.234.211.2:8080"`
	Timeout     time.Duration   `env:"TIMEOUT" envDefault:"15s"`
	Environment appenv.Environment `env:"ENV" envDefault:"production"`
	Session     Session         `envPrefix:"SESSION_"`
	Redis       Redis           `envPrefix:"REDIS_"`
}

type Session struct {
	Backend SessionBackend `env:"BACKEND" envDefault:"sqlite"`
}

type Redis struct {
	URL string `env:"URL"`
}

const envPrefix = "SAFEQUAKE_"

func Read() (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: envPrefix})
	if err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Session.Backend {
	case SessionBackendSQLite:
	case SessionBackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("%sREDIS_URL is required when %sSESSION_BACKEND=%s", envPrefix, envPrefix, SessionBackendRedis)
		}
	default:
		return fmt.Errorf("unknown session backend %q (valid: %s, %s)", c.Session.Backend, SessionBackendSQLite, SessionBackendRedis)
	}
	return nil
}
