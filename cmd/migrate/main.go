package main

import (
	"log"
	"os"
	"strconv"

	"picklepoint-api/config"
	"picklepoint-api/migrations"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required to run migrations")
	}
	if err := config.ConnectDatabase(cfg); err != nil {
		log.Fatalf("Error connecting database: %v", err)
	}

	migrator := migrations.NewMigrator(config.DB)
	migrator.Add(migrations.GetArchiveMigrations()...)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "up":
		if err := migrator.Migrate(); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	case "down":
		steps := 1
		if len(os.Args) > 2 {
			if n, err := strconv.Atoi(os.Args[2]); err == nil {
				steps = n
			}
		}
		if err := migrator.Rollback(steps); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
	default:
		log.Fatalf("Unknown command %q (expected up or down)", command)
	}
}
