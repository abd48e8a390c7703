package services

import (
	"encoding/json"
	"sync"
	"time"

	"core/broadcast"
	"core/engine"
	"core/models"

	"github.com/google/uuid"
)

// MatchService is the registry of live match engines. The engines
// assume exclusive access during a call, so every operation against
// one match id runs under that entry's mutex.
type MatchService struct {
	mu      sync.RWMutex
	entries map[string]*matchEntry

	hub     *broadcast.Hub
	archive *ArchiveService
}

type matchEntry struct {
	mu         sync.Mutex
	match      *engine.Match
	lastActive time.Time
}

func NewMatchService(hub *broadcast.Hub, archive *ArchiveService) *MatchService {
	return &MatchService{
		entries: make(map[string]*matchEntry),
		hub:     hub,
		archive: archive,
	}
}

func (s *MatchService) CreateMatch(req models.CreateMatchRequest) (models.MatchState, error) {
	id := uuid.NewString()
	match, err := engine.NewMatch(id, req, time.Now)
	if err != nil {
		return models.MatchState{}, err
	}

	s.mu.Lock()
	s.entries[id] = &matchEntry{match: match, lastActive: time.Now()}
	s.mu.Unlock()

	return match.Snapshot(), nil
}

// RecordRally checks the in-progress precondition the engine itself
// does not re-validate, then applies the rally and pushes the fresh
// snapshot to stream listeners.
func (s *MatchService) RecordRally(matchID string, winningTeam int) (models.MatchState, error) {
	entry, err := s.entry(matchID)
	if err != nil {
		return models.MatchState{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.match.Snapshot().Status == models.MatchCompleted {
		return models.MatchState{}, engine.ErrMatchCompleted
	}

	if err := entry.match.RecordRally(winningTeam); err != nil {
		return models.MatchState{}, err
	}
	entry.lastActive = time.Now()

	snapshot := entry.match.Snapshot()
	s.publish(snapshot)
	return snapshot, nil
}

func (s *MatchService) Undo(matchID string) (models.MatchState, error) {
	entry, err := s.entry(matchID)
	if err != nil {
		return models.MatchState{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.match.Undo(); err != nil {
		return models.MatchState{}, err
	}
	entry.lastActive = time.Now()

	snapshot := entry.match.Snapshot()
	s.publish(snapshot)
	return snapshot, nil
}

// SwitchServe is allowed whatever the match status; it is an operator
// correction tool, not a scoring operation.
func (s *MatchService) SwitchServe(matchID string) (models.MatchState, error) {
	entry, err := s.entry(matchID)
	if err != nil {
		return models.MatchState{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.match.SwitchServe()
	entry.lastActive = time.Now()

	snapshot := entry.match.Snapshot()
	s.publish(snapshot)
	return snapshot, nil
}

func (s *MatchService) GetSnapshot(matchID string) (models.MatchState, error) {
	entry, err := s.entry(matchID)
	if err != nil {
		return models.MatchState{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.match.Snapshot(), nil
}

func (s *MatchService) GetMatch(matchID string) (models.MatchResponse, error) {
	entry, err := s.entry(matchID)
	if err != nil {
		return models.MatchResponse{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return models.MatchResponse{
		Match:   entry.match.Snapshot(),
		History: entry.match.History(),
	}, nil
}

func (s *MatchService) DeleteMatch(matchID string) error {
	s.mu.Lock()
	entry, ok := s.entries[matchID]
	if ok {
		delete(s.entries, matchID)
	}
	s.mu.Unlock()

	if !ok {
		return ErrMatchNotFound
	}

	entry.mu.Lock()
	snapshot := entry.match.Snapshot()
	entry.mu.Unlock()

	s.archive.SaveMatch(snapshot)
	s.hub.CloseTopic(broadcast.MatchTopic(matchID))
	return nil
}

// PurgeExpired archives and removes completed matches that have been
// idle longer than ttl. Returns the number of matches removed.
func (s *MatchService) PurgeExpired(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	var expired []string
	for id, entry := range s.entries {
		entry.mu.Lock()
		if entry.match.Snapshot().Status == models.MatchCompleted && entry.lastActive.Before(cutoff) {
			expired = append(expired, id)
		}
		entry.mu.Unlock()
	}
	s.mu.Unlock()

	removed := 0
	for _, id := range expired {
		if err := s.DeleteMatch(id); err == nil {
			removed++
		}
	}
	return removed
}

func (s *MatchService) entry(matchID string) (*matchEntry, error) {
	s.mu.RLock()
	entry, ok := s.entries[matchID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrMatchNotFound
	}
	return entry, nil
}

func (s *MatchService) publish(snapshot models.MatchState) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	s.hub.Publish(broadcast.MatchTopic(snapshot.ID), payload)
}
