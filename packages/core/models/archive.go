package models

import "time"

// Archive rows are write-behind copies of completed matches and
// tournaments, flushed before the in-memory registries are purged.
// The live registries stay authoritative; these rows carry no
// restart guarantees.

type ArchivedMatch struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID       string    `gorm:"size:36;uniqueIndex;not null" json:"match_id"`
	Format        string    `gorm:"size:20;not null" json:"format"`
	ScoringSystem string    `gorm:"size:20;not null" json:"scoring_system"`
	TargetScore   int       `gorm:"not null" json:"target_score"`
	Team1Score    int       `gorm:"not null" json:"team1_score"`
	Team2Score    int       `gorm:"not null" json:"team2_score"`
	Winner        int       `gorm:"not null" json:"winner"`
	RallyCount    int       `gorm:"not null" json:"rally_count"`
	StartedAt     time.Time `json:"started_at"`
	CompletedAt   time.Time `json:"completed_at"`
	CreatedAt     time.Time `json:"created_at"`
}

func (ArchivedMatch) TableName() string {
	return "archived_matches"
}

type ArchivedTournament struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TournamentID string    `gorm:"size:36;uniqueIndex;not null" json:"tournament_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	OrganizerID  string    `gorm:"size:255;not null" json:"organizer_id"`
	TeamCount    int       `gorm:"not null" json:"team_count"`
	FixtureCount int       `gorm:"not null" json:"fixture_count"`
	WinnerName   string    `gorm:"size:255" json:"winner_name"`
	StartedAt    time.Time `json:"started_at"`
	CompletedAt  time.Time `json:"completed_at"`
	CreatedAt    time.Time `json:"created_at"`
}

func (ArchivedTournament) TableName() string {
	return "archived_tournaments"
}
