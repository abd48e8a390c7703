package engine

import "errors"

// Engine errors are sentinel values so callers can branch with
// errors.Is instead of matching message strings.
var (
	// Validation
	ErrInvalidTeam    = errors.New("team must be 1 or 2")
	ErrInvalidFormat  = errors.New("format must be singles or doubles")
	ErrInvalidScoring = errors.New("scoring system must be rally or sideout")
	ErrInvalidTarget  = errors.New("target score must be at least 1")
	ErrNotEnoughTeams = errors.New("tournament requires at least 2 teams")
	ErrEmptyTeamName  = errors.New("team name cannot be empty")
	ErrNegativeScore  = errors.New("scores cannot be negative")
	ErrEqualScores    = errors.New("fixture cannot complete with equal scores")

	// Invalid state
	ErrMatchCompleted   = errors.New("match already completed")
	ErrFixtureCompleted = errors.New("fixture already completed")
	ErrFixtureStarted   = errors.New("fixture already started")

	// Not found
	ErrFixtureNotFound = errors.New("fixture not found")

	// Empty history
	ErrEmptyHistory = errors.New("nothing to undo")
)
