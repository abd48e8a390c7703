package engine

import (
	"errors"
	"testing"
	"time"

	"core/models"
)

func fixedClock() func() time.Time {
	t := time.Date(2026, 8, 10, 18, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func newTestMatch(t *testing.T, format, scoring string, target, firstServer int) *Match {
	t.Helper()
	match, err := NewMatch("m1", models.CreateMatchRequest{
		Format:        format,
		ScoringSystem: scoring,
		TargetScore:   target,
		FirstServer:   firstServer,
	}, fixedClock())
	if err != nil {
		t.Fatalf("new match: %v", err)
	}
	return match
}

func TestNewMatchValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateMatchRequest
		err  error
	}{
		{"bad format", models.CreateMatchRequest{Format: "triples", ScoringSystem: models.ScoringRally, TargetScore: 11, FirstServer: 1}, ErrInvalidFormat},
		{"bad scoring", models.CreateMatchRequest{Format: models.FormatSingles, ScoringSystem: "golden", TargetScore: 11, FirstServer: 1}, ErrInvalidScoring},
		{"bad target", models.CreateMatchRequest{Format: models.FormatSingles, ScoringSystem: models.ScoringRally, TargetScore: 0, FirstServer: 1}, ErrInvalidTarget},
		{"bad server", models.CreateMatchRequest{Format: models.FormatSingles, ScoringSystem: models.ScoringRally, TargetScore: 11, FirstServer: 3}, ErrInvalidTeam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMatch("m1", tt.req, nil); !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestRallyScoringAlwaysScoresAndStealsServe(t *testing.T) {
	match := newTestMatch(t, models.FormatDoubles, models.ScoringRally, 11, 1)

	if err := match.RecordRally(2); err != nil {
		t.Fatalf("record rally: %v", err)
	}

	state := match.Snapshot()
	if state.Team2Score != 1 {
		t.Fatalf("expected team 2 to score, got %d", state.Team2Score)
	}
	if state.ServingTeam != 2 || state.ServerNumber != 1 {
		t.Fatalf("expected serve to pass to team 2 server 1, got team %d server %d", state.ServingTeam, state.ServerNumber)
	}

	// Serving team winning keeps the serve.
	if err := match.RecordRally(2); err != nil {
		t.Fatalf("record rally: %v", err)
	}
	state = match.Snapshot()
	if state.Team2Score != 2 || state.ServingTeam != 2 {
		t.Fatalf("expected team 2 on 2 still serving, got score %d team %d", state.Team2Score, state.ServingTeam)
	}
}

func TestSideOutOnlyServerScores(t *testing.T) {
	match := newTestMatch(t, models.FormatSingles, models.ScoringSideOut, 11, 1)

	// Non-serving team wins: no score, serve passes.
	if err := match.RecordRally(2); err != nil {
		t.Fatalf("record rally: %v", err)
	}
	state := match.Snapshot()
	if state.Team1Score != 0 || state.Team2Score != 0 {
		t.Fatalf("side-out must not score, got %d-%d", state.Team1Score, state.Team2Score)
	}
	if state.ServingTeam != 2 {
		t.Fatalf("expected serve with team 2, got %d", state.ServingTeam)
	}

	// Serving team wins: scores, keeps serve.
	if err := match.RecordRally(2); err != nil {
		t.Fatalf("record rally: %v", err)
	}
	state = match.Snapshot()
	if state.Team2Score != 1 || state.ServingTeam != 2 {
		t.Fatalf("expected team 2 to score and keep serve, got %d-%d team %d", state.Team1Score, state.Team2Score, state.ServingTeam)
	}
}

func TestDoublesServeRotation(t *testing.T) {
	match := newTestMatch(t, models.FormatDoubles, models.ScoringSideOut, 11, 1)

	// First rally of the game: side-out passes directly, no second server.
	if err := match.RecordRally(2); err != nil {
		t.Fatalf("record rally: %v", err)
	}
	state := match.Snapshot()
	if state.ServingTeam != 2 || state.ServerNumber != 1 {
		t.Fatalf("opening side-out should pass serve directly, got team %d server %d", state.ServingTeam, state.ServerNumber)
	}

	// Team 2 side-out passes straight back to team 1.
	if err := match.RecordRally(1); err != nil {
		t.Fatalf("record rally: %v", err)
	}
	state = match.Snapshot()
	if state.ServingTeam != 1 || state.ServerNumber != 1 {
		t.Fatalf("expected team 1 server 1, got team %d server %d", state.ServingTeam, state.ServerNumber)
	}

	// Team 1's first side-out of this service turn goes to server 2.
	if err := match.RecordRally(2); err != nil {
		t.Fatalf("record rally: %v", err)
	}
	state = match.Snapshot()
	if state.ServingTeam != 1 || state.ServerNumber != 2 {
		t.Fatalf("expected team 1 server 2, got team %d server %d", state.ServingTeam, state.ServerNumber)
	}

	// Server 2 losing the serve passes it fully to the opponent.
	if err := match.RecordRally(2); err != nil {
		t.Fatalf("record rally: %v", err)
	}
	state = match.Snapshot()
	if state.ServingTeam != 2 || state.ServerNumber != 1 {
		t.Fatalf("expected team 2 server 1, got team %d server %d", state.ServingTeam, state.ServerNumber)
	}
}

func TestSinglesHasNoSecondServer(t *testing.T) {
	match := newTestMatch(t, models.FormatSingles, models.ScoringSideOut, 11, 1)

	if err := match.RecordRally(2); err != nil {
		t.Fatalf("record rally: %v", err)
	}
	if err := match.RecordRally(1); err != nil {
		t.Fatalf("record rally: %v", err)
	}
	// Back with team 1 well past the opening rally; a side-out must
	// still pass directly in singles.
	if err := match.RecordRally(2); err != nil {
		t.Fatalf("record rally: %v", err)
	}

	state := match.Snapshot()
	if state.ServingTeam != 2 || state.ServerNumber != 1 {
		t.Fatalf("singles side-out should pass serve directly, got team %d server %d", state.ServingTeam, state.ServerNumber)
	}
}

func TestWinDetection(t *testing.T) {
	tests := []struct {
		name      string
		score1    int
		score2    int
		completed bool
		winner    int
	}{
		{"win at target", 11, 9, true, 1},
		{"win by 2 violated", 11, 10, false, 0},
		{"extended game", 12, 10, true, 1},
		{"team 2 wins", 9, 11, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := newTestMatch(t, models.FormatSingles, models.ScoringRally, 11, 1)

			// Interleave so neither side finishes early.
			for i := 0; i < tt.score1 || i < tt.score2; i++ {
				if i < tt.score2 {
					if err := match.RecordRally(2); err != nil {
						t.Fatalf("record rally: %v", err)
					}
				}
				if i < tt.score1 {
					if err := match.RecordRally(1); err != nil {
						t.Fatalf("record rally: %v", err)
					}
				}
			}

			state := match.Snapshot()
			if state.Team1Score != tt.score1 || state.Team2Score != tt.score2 {
				t.Fatalf("expected %d-%d, got %d-%d", tt.score1, tt.score2, state.Team1Score, state.Team2Score)
			}

			completed := state.Status == models.MatchCompleted
			if completed != tt.completed {
				t.Fatalf("expected completed=%v, got status %q", tt.completed, state.Status)
			}
			if state.Winner != tt.winner {
				t.Fatalf("expected winner %d, got %d", tt.winner, state.Winner)
			}
			if tt.completed && state.CompletedAt == nil {
				t.Fatal("expected completion time to be set")
			}
		})
	}
}

func TestUndoRestoresExactState(t *testing.T) {
	match := newTestMatch(t, models.FormatDoubles, models.ScoringSideOut, 11, 1)

	initial := match.Snapshot()

	moves := []int{1, 2, 2, 1, 2, 1, 1}
	var snapshots []models.MatchState
	for _, team := range moves {
		snapshots = append(snapshots, match.Snapshot())
		if err := match.RecordRally(team); err != nil {
			t.Fatalf("record rally: %v", err)
		}
	}

	// Undo one step at a time and compare against the recorded states.
	for i := len(snapshots) - 1; i >= 0; i-- {
		if err := match.Undo(); err != nil {
			t.Fatalf("undo: %v", err)
		}
		got := match.Snapshot()
		want := snapshots[i]
		if got.Team1Score != want.Team1Score || got.Team2Score != want.Team2Score ||
			got.ServingTeam != want.ServingTeam || got.ServerNumber != want.ServerNumber ||
			got.RallyCount != want.RallyCount {
			t.Fatalf("undo %d: got %+v, want %+v", i, got, want)
		}
	}

	final := match.Snapshot()
	if final != initial {
		t.Fatalf("expected initial state after full undo, got %+v", final)
	}
}

func TestUndoOnFreshMatch(t *testing.T) {
	match := newTestMatch(t, models.FormatSingles, models.ScoringRally, 11, 1)

	if err := match.Undo(); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("expected ErrEmptyHistory, got %v", err)
	}
}

func TestUndoReopensCompletedMatch(t *testing.T) {
	match := newTestMatch(t, models.FormatSingles, models.ScoringRally, 2, 1)

	if err := match.RecordRally(1); err != nil {
		t.Fatalf("record rally: %v", err)
	}
	if err := match.RecordRally(1); err != nil {
		t.Fatalf("record rally: %v", err)
	}
	if match.Snapshot().Status != models.MatchCompleted {
		t.Fatal("expected match to complete at 2-0")
	}

	if err := match.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}

	state := match.Snapshot()
	if state.Status != models.MatchInProgress {
		t.Fatalf("expected match to reopen, got %q", state.Status)
	}
	if state.Winner != 0 || state.CompletedAt != nil {
		t.Fatalf("expected winner and completion time cleared, got winner=%d completedAt=%v", state.Winner, state.CompletedAt)
	}
	if state.Team1Score != 1 {
		t.Fatalf("expected score 1-0 after undo, got %d-%d", state.Team1Score, state.Team2Score)
	}
}

func TestSwitchServeIsRecordedAndUndoable(t *testing.T) {
	match := newTestMatch(t, models.FormatSingles, models.ScoringSideOut, 11, 1)

	match.SwitchServe()

	state := match.Snapshot()
	if state.ServingTeam != 2 {
		t.Fatalf("expected serve with team 2, got %d", state.ServingTeam)
	}
	if state.RallyCount != 0 {
		t.Fatalf("manual switch must not count a rally, got %d", state.RallyCount)
	}

	history := match.History()
	if len(history) != 1 || history[0].Cause != models.CauseManualSwitch || history[0].ActingTeam != 0 {
		t.Fatalf("expected one manual_switch entry, got %+v", history)
	}

	if err := match.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if got := match.Snapshot().ServingTeam; got != 1 {
		t.Fatalf("expected serve back with team 1, got %d", got)
	}
}

func TestSwitchServeAllowedOnCompletedMatch(t *testing.T) {
	match := newTestMatch(t, models.FormatSingles, models.ScoringRally, 2, 1)
	match.RecordRally(1)
	match.RecordRally(1)

	match.SwitchServe()

	state := match.Snapshot()
	if state.Status != models.MatchCompleted {
		t.Fatalf("manual switch must not change status, got %q", state.Status)
	}
	if state.ServingTeam != 2 {
		t.Fatalf("expected serve with team 2, got %d", state.ServingTeam)
	}
}

func TestHistoryTagsActingTeam(t *testing.T) {
	match := newTestMatch(t, models.FormatSingles, models.ScoringRally, 11, 1)
	match.RecordRally(2)
	match.RecordRally(1)

	history := match.History()
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	if history[0].ActingTeam != 2 || history[1].ActingTeam != 1 {
		t.Fatalf("expected acting teams 2 then 1, got %d then %d", history[0].ActingTeam, history[1].ActingTeam)
	}
	if history[0].Cause != models.CauseRally {
		t.Fatalf("expected rally cause, got %q", history[0].Cause)
	}
}
