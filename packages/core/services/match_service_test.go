package services

import (
	"errors"
	"testing"
	"time"

	"core/broadcast"
	"core/engine"
	"core/models"
)

func newTestMatchService() (*MatchService, *broadcast.Hub) {
	hub := broadcast.NewHub()
	return NewMatchService(hub, NewArchiveService(nil)), hub
}

func singlesRally11() models.CreateMatchRequest {
	return models.CreateMatchRequest{
		Format:        models.FormatSingles,
		ScoringSystem: models.ScoringRally,
		TargetScore:   11,
		FirstServer:   1,
	}
}

func TestCreateAndGetMatch(t *testing.T) {
	service, _ := newTestMatchService()

	created, err := service.CreateMatch(singlesRally11())
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a match id")
	}
	if created.Status != models.MatchInProgress {
		t.Fatalf("expected in-progress match, got %q", created.Status)
	}

	got, err := service.GetSnapshot(created.ID)
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if got != created {
		t.Fatalf("snapshot mismatch: %+v vs %+v", got, created)
	}

	if _, err := service.GetSnapshot("missing"); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestRecordRallyRejectsCompletedMatch(t *testing.T) {
	service, _ := newTestMatchService()

	created, err := service.CreateMatch(models.CreateMatchRequest{
		Format:        models.FormatSingles,
		ScoringSystem: models.ScoringRally,
		TargetScore:   2,
		FirstServer:   1,
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := service.RecordRally(created.ID, 1); err != nil {
			t.Fatalf("record rally: %v", err)
		}
	}

	if _, err := service.RecordRally(created.ID, 1); !errors.Is(err, engine.ErrMatchCompleted) {
		t.Fatalf("expected ErrMatchCompleted, got %v", err)
	}

	// Undo reopens the match and scoring resumes.
	if _, err := service.Undo(created.ID); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if _, err := service.RecordRally(created.ID, 2); err != nil {
		t.Fatalf("record rally after undo: %v", err)
	}
}

func TestMutationsPublishSnapshots(t *testing.T) {
	service, hub := newTestMatchService()

	created, err := service.CreateMatch(singlesRally11())
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	ch, cancel := hub.Subscribe(broadcast.MatchTopic(created.ID))
	defer cancel()

	if _, err := service.RecordRally(created.ID, 1); err != nil {
		t.Fatalf("record rally: %v", err)
	}

	select {
	case payload := <-ch:
		if len(payload) == 0 {
			t.Fatal("expected a snapshot payload")
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot published after rally")
	}
}

func TestDeleteMatch(t *testing.T) {
	service, _ := newTestMatchService()

	created, err := service.CreateMatch(singlesRally11())
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	if err := service.DeleteMatch(created.ID); err != nil {
		t.Fatalf("delete match: %v", err)
	}
	if _, err := service.GetSnapshot(created.ID); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound after delete, got %v", err)
	}
	if err := service.DeleteMatch(created.ID); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound on second delete, got %v", err)
	}
}

func TestPurgeExpiredRemovesOnlyCompletedMatches(t *testing.T) {
	service, _ := newTestMatchService()

	live, err := service.CreateMatch(singlesRally11())
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	done, err := service.CreateMatch(models.CreateMatchRequest{
		Format:        models.FormatSingles,
		ScoringSystem: models.ScoringRally,
		TargetScore:   2,
		FirstServer:   1,
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := service.RecordRally(done.ID, 1); err != nil {
			t.Fatalf("record rally: %v", err)
		}
	}

	time.Sleep(10 * time.Millisecond)

	if removed := service.PurgeExpired(time.Millisecond); removed != 1 {
		t.Fatalf("expected 1 purged match, got %d", removed)
	}
	if _, err := service.GetSnapshot(done.ID); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected completed match purged, got %v", err)
	}
	if _, err := service.GetSnapshot(live.ID); err != nil {
		t.Fatalf("live match must survive the purge: %v", err)
	}
}
