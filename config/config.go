package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	DatabaseURL string        `env:"DATABASE_URL"`
	CORSOrigins []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	MatchTTL    time.Duration `env:"MATCH_TTL" envDefault:"24h"`
	// TournamentTTL is deliberately longer: standings stay queryable
	// for a while after the last fixture completes.
	TournamentTTL time.Duration `env:"TOURNAMENT_TTL" envDefault:"168h"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DB is the archive database handle, nil when DATABASE_URL is unset.
var DB *gorm.DB

// ConnectDatabase opens the Postgres archive connection. Without a
// DATABASE_URL the server runs memory-only and archiving is disabled.
func ConnectDatabase(cfg Config) error {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, result archiving disabled")
		return nil
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	DB = db
	log.Println("Database connected")
	return nil
}
