package cron

import (
	"log"
	"time"

	"core/services"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the registry cleanup job: completed matches and
// tournaments idle past their TTL are archived and dropped from
// memory, so the registries do not grow for the process lifetime.
type Scheduler struct {
	cron              *cron.Cron
	matchService      *services.MatchService
	tournamentService *services.TournamentService
	matchTTL          time.Duration
	tournamentTTL     time.Duration
}

func NewScheduler(matchService *services.MatchService, tournamentService *services.TournamentService, matchTTL, tournamentTTL time.Duration) *Scheduler {
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:              c,
		matchService:      matchService,
		tournamentService: tournamentService,
		matchTTL:          matchTTL,
		tournamentTTL:     tournamentTTL,
	}
}

// Start schedules the cleanup job at minute 0 of every hour.
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	_, err := s.cron.AddFunc("0 0 * * * *", s.runCleanup)
	if err != nil {
		log.Printf("Error scheduling cleanup job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

func (s *Scheduler) runCleanup() {
	log.Println("Running registry cleanup job...")

	matches := s.matchService.PurgeExpired(s.matchTTL)
	tournaments := s.tournamentService.PurgeExpired(s.tournamentTTL)

	if matches == 0 && tournaments == 0 {
		log.Println("No expired entries to clean up")
		return
	}

	log.Printf("Cleanup removed %d matches and %d tournaments", matches, tournaments)
}

// RunNow manually triggers the cleanup job (useful for testing)
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering cleanup job...")
	s.runCleanup()
}
