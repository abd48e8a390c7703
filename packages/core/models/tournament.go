package models

import "time"

// Tournament statuses
const (
	TournamentInProgress = "in_progress"
	TournamentCompleted  = "completed"
)

// Fixture statuses
const (
	FixturePending    = "pending"
	FixtureInProgress = "in_progress"
	FixtureCompleted  = "completed"
)

// Head-to-head results
const (
	ResultWon  = "won"
	ResultLost = "lost"
)

type Team struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	GamesWon        int          `json:"games_won"`
	GamesLost       int          `json:"games_lost"`
	PointsScored    int          `json:"points_scored"`
	PointsConceded  int          `json:"points_conceded"`
	PointDifference int          `json:"point_difference"` // always pointsScored - pointsConceded
	MatchRecords    []HeadToHead `json:"match_records"`
}

// HeadToHead is one entry in a team's direct-meeting log, appended in
// fixture completion order.
type HeadToHead struct {
	OpponentID   int    `json:"opponent_id"`
	Result       string `json:"result"` // won, lost
	ScoreFor     int    `json:"score_for"`
	ScoreAgainst int    `json:"score_against"`
}

type Fixture struct {
	ID          int        `json:"id"`
	Team1ID     int        `json:"team1_id"`
	Team2ID     int        `json:"team2_id"`
	Team1Score  int        `json:"team1_score"`
	Team2Score  int        `json:"team2_score"`
	Status      string     `json:"status"`             // pending, in_progress, completed
	MatchID     string     `json:"match_id,omitempty"` // linked live match, if any
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type Tournament struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	OrganizerID string     `json:"organizer_id"`
	Status      string     `json:"status"` // in_progress, completed
	Teams       []Team     `json:"teams"`
	Fixtures    []Fixture  `json:"fixtures"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// RankingEntry is a fresh projection of Team state, recomputed
// wholesale; it is never stored.
type RankingEntry struct {
	Rank            int     `json:"rank"`
	TeamID          int     `json:"team_id"`
	TeamName        string  `json:"team_name"`
	GamesWon        int     `json:"games_won"`
	GamesLost       int     `json:"games_lost"`
	PointsScored    int     `json:"points_scored"`
	PointsConceded  int     `json:"points_conceded"`
	PointDifference int     `json:"point_difference"`
	WinPercentage   float64 `json:"win_percentage"`
}

// TiedGroup lists teams sharing an identical (wins, pointDiff,
// pointsScored) triple, surfacing where head-to-head rules decide.
type TiedGroup struct {
	GamesWon        int   `json:"games_won"`
	PointDifference int   `json:"point_difference"`
	PointsScored    int   `json:"points_scored"`
	TeamIDs         []int `json:"team_ids"`
}

// DTOs

type CreateTournamentRequest struct {
	Name        string   `json:"name" binding:"required"`
	TeamNames   []string `json:"team_names" binding:"required,min=2"`
	OrganizerID string   `json:"organizer_id" binding:"required"`
}

type RecordFixtureResultRequest struct {
	Team1Score int `json:"team1_score" binding:"min=0"`
	Team2Score int `json:"team2_score" binding:"min=0"`
}

type StartFixtureResponse struct {
	Fixture Fixture    `json:"fixture"`
	Match   MatchState `json:"match"`
}

type StandingsResponse struct {
	TournamentID string         `json:"tournament_id"`
	Name         string         `json:"name"`
	OrganizerID  string         `json:"organizer_id"`
	Status       string         `json:"status"`
	Rankings     []RankingEntry `json:"rankings"`
	Fixtures     []Fixture      `json:"fixtures"`
	CreatedAt    time.Time      `json:"created_at"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
}
