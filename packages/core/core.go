package core

import (
	"log"
	"time"

	"core/broadcast"
	"core/cron"
	"core/handlers"
	"core/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	MatchHandler      *handlers.MatchHandler
	MatchService      *services.MatchService
	TournamentHandler *handlers.TournamentHandler
	TournamentService *services.TournamentService
	ArchiveService    *services.ArchiveService
	Hub               *broadcast.Hub
	Scheduler         *cron.Scheduler
}

// NewModule wires the registries, broadcast hub, archive and cleanup
// scheduler. db may be nil, which disables the archive.
func NewModule(db *gorm.DB, matchTTL, tournamentTTL time.Duration) *Module {
	hub := broadcast.NewHub()
	archiveService := services.NewArchiveService(db)

	matchService := services.NewMatchService(hub, archiveService)
	matchHandler := handlers.NewMatchHandler(matchService, hub)

	tournamentService := services.NewTournamentService(matchService, hub, archiveService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService, hub)

	scheduler := cron.NewScheduler(matchService, tournamentService, matchTTL, tournamentTTL)

	return &Module{
		MatchHandler:      matchHandler,
		MatchService:      matchService,
		TournamentHandler: tournamentHandler,
		TournamentService: tournamentService,
		ArchiveService:    archiveService,
		Hub:               hub,
		Scheduler:         scheduler,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	matches := r.Group("/matches")
	{
		matches.POST("", m.MatchHandler.CreateMatch)
		matches.GET("/:id", m.MatchHandler.GetMatch)
		matches.POST("/:id/rallies", m.MatchHandler.RecordRally)
		matches.POST("/:id/undo", m.MatchHandler.Undo)
		matches.POST("/:id/switch-serve", m.MatchHandler.SwitchServe)
		matches.GET("/:id/stream", m.MatchHandler.StreamMatch)
		matches.DELETE("/:id", m.MatchHandler.DeleteMatch)
	}

	tournaments := r.Group("/tournaments")
	{
		tournaments.POST("", m.TournamentHandler.CreateTournament)
		tournaments.GET("/:id", m.TournamentHandler.GetStandings)
		tournaments.GET("/:id/rankings", m.TournamentHandler.GetRankings)
		tournaments.GET("/:id/tied-groups", m.TournamentHandler.GetTiedGroups)
		tournaments.GET("/:id/stream", m.TournamentHandler.StreamStandings)
		tournaments.POST("/:id/fixtures/:fixtureId/result", m.TournamentHandler.RecordFixtureResult)
		tournaments.POST("/:id/fixtures/:fixtureId/start", m.TournamentHandler.StartFixtureMatch)
		tournaments.POST("/:id/fixtures/:fixtureId/complete", m.TournamentHandler.CompleteFixtureFromMatch)
		tournaments.DELETE("/:id", m.TournamentHandler.DeleteTournament)
	}
}

// StartScheduler starts the registry cleanup scheduler
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the registry cleanup scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}

// RunCleanupNow manually triggers the cleanup job (useful for testing)
func (m *Module) RunCleanupNow() {
	m.Scheduler.RunNow()
}
