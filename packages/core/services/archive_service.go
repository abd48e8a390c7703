package services

import (
	"log"
	"time"

	"core/models"

	"gorm.io/gorm"
)

// ArchiveService writes completed matches and tournaments to Postgres
// before the in-memory registries purge them. A nil db disables it;
// every method is safe to call either way.
type ArchiveService struct {
	db *gorm.DB
}

func NewArchiveService(db *gorm.DB) *ArchiveService {
	return &ArchiveService{db: db}
}

func (s *ArchiveService) Enabled() bool {
	return s != nil && s.db != nil
}

func (s *ArchiveService) SaveMatch(state models.MatchState) {
	if !s.Enabled() || state.Status != models.MatchCompleted {
		return
	}

	completedAt := time.Now()
	if state.CompletedAt != nil {
		completedAt = *state.CompletedAt
	}

	row := models.ArchivedMatch{
		MatchID:       state.ID,
		Format:        state.Format,
		ScoringSystem: state.ScoringSystem,
		TargetScore:   state.TargetScore,
		Team1Score:    state.Team1Score,
		Team2Score:    state.Team2Score,
		Winner:        state.Winner,
		RallyCount:    state.RallyCount,
		StartedAt:     state.CreatedAt,
		CompletedAt:   completedAt,
	}

	if err := s.db.Where("match_id = ?", state.ID).FirstOrCreate(&row).Error; err != nil {
		log.Printf("Error archiving match %s: %v", state.ID, err)
	}
}

func (s *ArchiveService) SaveTournament(tournament models.Tournament, rankings []models.RankingEntry) {
	if !s.Enabled() || tournament.Status != models.TournamentCompleted {
		return
	}

	completedAt := time.Now()
	if tournament.CompletedAt != nil {
		completedAt = *tournament.CompletedAt
	}

	winnerName := ""
	if len(rankings) > 0 {
		winnerName = rankings[0].TeamName
	}

	row := models.ArchivedTournament{
		TournamentID: tournament.ID,
		Name:         tournament.Name,
		OrganizerID:  tournament.OrganizerID,
		TeamCount:    len(tournament.Teams),
		FixtureCount: len(tournament.Fixtures),
		WinnerName:   winnerName,
		StartedAt:    tournament.CreatedAt,
		CompletedAt:  completedAt,
	}

	if err := s.db.Where("tournament_id = ?", tournament.ID).FirstOrCreate(&row).Error; err != nil {
		log.Printf("Error archiving tournament %s: %v", tournament.ID, err)
	}
}
