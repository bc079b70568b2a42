package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// config is the environment-driven server configuration.
type config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"ADDR" envDefault:":8080"`

	// RedisAddr is the Redis endpoint holding saves and live attempts.
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// ArchivePath is the SQLite file for finished encounters.
	ArchivePath string `env:"ARCHIVE_PATH" envDefault:"encounters.db"`

	// AttemptTTL is how long an untouched live attempt survives.
	AttemptTTL time.Duration `env:"ATTEMPT_TTL" envDefault:"30m"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
