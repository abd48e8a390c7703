package main

import (
	"log"
	"time"

	"core"
	"picklepoint-api/config"
	"picklepoint-api/fixtures"

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
	if err := config.ConnectDatabase(cfg); err != nil {
		log.Fatalf("Error connecting database: %v", err)
	}

	module := core.NewModule(config.DB, cfg.MatchTTL, cfg.TournamentTTL)

	seeder := fixtures.NewFixtures(module, time.Now().UnixNano())
	tournamentID, err := seeder.GenerateDemoTournament()
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded demo tournament %s", tournamentID)
}
