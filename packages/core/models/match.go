package models

import "time"

// Match formats
const (
	FormatSingles = "singles"
	FormatDoubles = "doubles"
)

// Scoring systems
const (
	ScoringRally   = "rally"
	ScoringSideOut = "sideout"
)

// Match statuses
const (
	MatchInProgress = "in_progress"
	MatchCompleted  = "completed"
)

// History entry causes
const (
	CauseRally        = "rally"
	CauseManualSwitch = "manual_switch"
)

// MatchState is the full live state of one game. The engine hands it
// out by value, so callers never alias internal state.
type MatchState struct {
	ID            string     `json:"id"`
	Team1Score    int        `json:"team1_score"`
	Team2Score    int        `json:"team2_score"`
	ServingTeam   int        `json:"serving_team"`  // 1 or 2
	ServerNumber  int        `json:"server_number"` // 1 or 2, meaningful in doubles only
	Format        string     `json:"format"`         // singles, doubles
	ScoringSystem string     `json:"scoring_system"` // rally, sideout
	TargetScore   int        `json:"target_score"`
	Status        string     `json:"status"`           // in_progress, completed
	Winner        int        `json:"winner,omitempty"` // 0 until completed
	RallyCount    int        `json:"rally_count"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// HistoryEntry is an immutable pre-mutation snapshot pushed before
// every rally or manual serve switch. Undo pops and restores by value.
type HistoryEntry struct {
	Team1Score   int    `json:"team1_score"`
	Team2Score   int    `json:"team2_score"`
	ServingTeam  int    `json:"serving_team"`
	ServerNumber int    `json:"server_number"`
	ActingTeam   int    `json:"acting_team"` // 0 for manual switches
	Cause        string `json:"cause"`       // rally, manual_switch
}

// DTOs

type CreateMatchRequest struct {
	Format        string `json:"format" binding:"required,oneof=singles doubles"`
	ScoringSystem string `json:"scoring_system" binding:"required,oneof=rally sideout"`
	TargetScore   int    `json:"target_score" binding:"required,min=1"`
	FirstServer   int    `json:"first_server" binding:"required,oneof=1 2"`
}

type RecordRallyRequest struct {
	WinningTeam int `json:"winning_team" binding:"required,oneof=1 2"`
}

type MatchResponse struct {
	Match   MatchState     `json:"match"`
	History []HistoryEntry `json:"history,omitempty"`
}
