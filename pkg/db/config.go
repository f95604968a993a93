package db

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

type PostgresConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER,required"`
	Password string `env:"DB_PASSWORD,required"`
	DBName   string `env:"DB_NAME,required"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

func LoadPostgresConfig() (PostgresConfig, error) {
	var cfg PostgresConfig
	if err := env.Parse(&cfg); err != nil {
		return PostgresConfig{}, fmt.Errorf("parse postgres config: %w", err)
	}
	return cfg, nil
}
