package engine

import (
	"core/models"
	"time"
)

// Match is the live scoring state machine for one game. It assumes
// exclusive access during a call and does no locking; the service
// layer serializes operations per match id. It also does not re-check
// match status on RecordRally; that precondition belongs to callers.
type Match struct {
	state   models.MatchState
	history []models.HistoryEntry
	now     func() time.Time
}

// NewMatch validates the configuration and returns a match in the
// in-progress state with the given first server holding serve.
func NewMatch(id string, req models.CreateMatchRequest, now func() time.Time) (*Match, error) {
	if req.Format != models.FormatSingles && req.Format != models.FormatDoubles {
		return nil, ErrInvalidFormat
	}
	if req.ScoringSystem != models.ScoringRally && req.ScoringSystem != models.ScoringSideOut {
		return nil, ErrInvalidScoring
	}
	if req.TargetScore < 1 {
		return nil, ErrInvalidTarget
	}
	if req.FirstServer != 1 && req.FirstServer != 2 {
		return nil, ErrInvalidTeam
	}
	if now == nil {
		now = time.Now
	}

	return &Match{
		state: models.MatchState{
			ID:            id,
			ServingTeam:   req.FirstServer,
			ServerNumber:  1,
			Format:        req.Format,
			ScoringSystem: req.ScoringSystem,
			TargetScore:   req.TargetScore,
			Status:        models.MatchInProgress,
			CreatedAt:     now(),
		},
		now: now,
	}, nil
}

// RecordRally applies the outcome of one rally. Under rally scoring
// the winning team always scores and takes the serve if it did not
// hold it. Under side-out scoring only the serving team can score; a
// rally lost by the server is a side-out and rotates the serve.
func (m *Match) RecordRally(winningTeam int) error {
	if winningTeam != 1 && winningTeam != 2 {
		return ErrInvalidTeam
	}

	m.pushHistory(winningTeam, models.CauseRally)

	switch m.state.ScoringSystem {
	case models.ScoringRally:
		m.addPoint(winningTeam)
		if m.state.ServingTeam != winningTeam {
			m.state.ServingTeam = winningTeam
			m.state.ServerNumber = 1
		}
	case models.ScoringSideOut:
		if m.state.ServingTeam == winningTeam {
			m.addPoint(winningTeam)
		} else {
			m.rotateServe()
		}
	}

	m.state.RallyCount++
	m.checkWin()
	return nil
}

// Undo restores the most recent pre-rally (or pre-switch) snapshot.
// A completed match reopens; winner and completion time are cleared.
func (m *Match) Undo() error {
	if len(m.history) == 0 {
		return ErrEmptyHistory
	}

	last := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]

	m.state.Team1Score = last.Team1Score
	m.state.Team2Score = last.Team2Score
	m.state.ServingTeam = last.ServingTeam
	m.state.ServerNumber = last.ServerNumber

	if m.state.RallyCount > 0 {
		m.state.RallyCount--
	}

	if m.state.Status == models.MatchCompleted {
		m.state.Status = models.MatchInProgress
		m.state.Winner = 0
		m.state.CompletedAt = nil
	}

	return nil
}

// SwitchServe is the operator override: it rotates the serve exactly
// as a side-out would, regardless of scoring outcome or match status,
// and records a manual_switch history entry so the correction shows
// up in the audit trail and can itself be undone.
func (m *Match) SwitchServe() {
	m.pushHistory(0, models.CauseManualSwitch)
	m.rotateServe()
}

// Snapshot returns a read-only copy of the current state.
func (m *Match) Snapshot() models.MatchState {
	return m.state
}

// History returns a copy of the undo log, oldest first.
func (m *Match) History() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(m.history))
	copy(out, m.history)
	return out
}

func (m *Match) pushHistory(actingTeam int, cause string) {
	m.history = append(m.history, models.HistoryEntry{
		Team1Score:   m.state.Team1Score,
		Team2Score:   m.state.Team2Score,
		ServingTeam:  m.state.ServingTeam,
		ServerNumber: m.state.ServerNumber,
		ActingTeam:   actingTeam,
		Cause:        cause,
	})
}

func (m *Match) addPoint(team int) {
	if team == 1 {
		m.state.Team1Score++
	} else {
		m.state.Team2Score++
	}
}

// rotateServe encodes the doubles two-server rule: the first side-out
// of team 1's service turn (server 1, past the opening rally) hands
// the ball to server 2 on the same side; server 2 losing the serve
// always passes it fully to the opponent with server 1 up. Singles
// has no server numbers and the serve passes directly.
func (m *Match) rotateServe() {
	if m.state.Format == models.FormatDoubles &&
		m.state.ServerNumber == 1 &&
		m.state.ServingTeam == 1 &&
		m.state.RallyCount > 0 {
		m.state.ServerNumber = 2
		return
	}

	if m.state.ServingTeam == 1 {
		m.state.ServingTeam = 2
	} else {
		m.state.ServingTeam = 1
	}
	m.state.ServerNumber = 1
}

// checkWin applies the win-by-2 rule against the target score.
func (m *Match) checkWin() {
	s1, s2 := m.state.Team1Score, m.state.Team2Score
	lead := s1 - s2
	if lead < 0 {
		lead = -lead
	}
	if (s1 >= m.state.TargetScore || s2 >= m.state.TargetScore) && lead >= 2 {
		if s1 > s2 {
			m.state.Winner = 1
		} else {
			m.state.Winner = 2
		}
		m.state.Status = models.MatchCompleted
		completed := m.now()
		m.state.CompletedAt = &completed
	}
}
