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

// TournamentService is the registry of round-robin engines. It also
// bridges fixtures to live matches: a fixture can be started as a
// match and later completed from that match's final snapshot, which
// is the only contract between the two engines.
type TournamentService struct {
	mu      sync.RWMutex
	entries map[string]*tournamentEntry

	matchService *MatchService
	hub          *broadcast.Hub
	archive      *ArchiveService
}

type tournamentEntry struct {
	mu         sync.Mutex
	roundRobin *engine.RoundRobin
	lastActive time.Time
}

func NewTournamentService(matchService *MatchService, hub *broadcast.Hub, archive *ArchiveService) *TournamentService {
	return &TournamentService{
		entries:      make(map[string]*tournamentEntry),
		matchService: matchService,
		hub:          hub,
		archive:      archive,
	}
}

func (s *TournamentService) CreateTournament(req models.CreateTournamentRequest) (models.Tournament, error) {
	id := uuid.NewString()
	roundRobin, err := engine.NewRoundRobin(id, req.Name, req.TeamNames, req.OrganizerID, time.Now)
	if err != nil {
		return models.Tournament{}, err
	}

	s.mu.Lock()
	s.entries[id] = &tournamentEntry{roundRobin: roundRobin, lastActive: time.Now()}
	s.mu.Unlock()

	return roundRobin.Snapshot(), nil
}

// RecordFixtureResult completes a fixture with a final score, updates
// standings and broadcasts the fresh standings view.
func (s *TournamentService) RecordFixtureResult(tournamentID string, fixtureID, score1, score2 int) (models.StandingsResponse, error) {
	entry, err := s.entry(tournamentID)
	if err != nil {
		return models.StandingsResponse{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.roundRobin.ApplyResult(fixtureID, score1, score2); err != nil {
		return models.StandingsResponse{}, err
	}
	entry.lastActive = time.Now()

	standings := buildStandings(entry.roundRobin)
	if standings.Status == models.TournamentCompleted {
		s.archive.SaveTournament(entry.roundRobin.Snapshot(), standings.Rankings)
	}
	s.publish(standings)
	return standings, nil
}

// StartFixtureMatch spawns a live match for a pending fixture and
// links it. The match is rolled back if the fixture cannot be linked,
// so a failed call leaves both registries unchanged.
func (s *TournamentService) StartFixtureMatch(tournamentID string, fixtureID int, req models.CreateMatchRequest) (models.StartFixtureResponse, error) {
	entry, err := s.entry(tournamentID)
	if err != nil {
		return models.StartFixtureResponse{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if _, err := entry.roundRobin.Fixture(fixtureID); err != nil {
		return models.StartFixtureResponse{}, err
	}

	match, err := s.matchService.CreateMatch(req)
	if err != nil {
		return models.StartFixtureResponse{}, err
	}

	if err := entry.roundRobin.LinkMatch(fixtureID, match.ID); err != nil {
		s.matchService.DeleteMatch(match.ID)
		return models.StartFixtureResponse{}, err
	}
	entry.lastActive = time.Now()

	fixture, _ := entry.roundRobin.Fixture(fixtureID)
	s.publish(buildStandings(entry.roundRobin))
	return models.StartFixtureResponse{Fixture: fixture, Match: match}, nil
}

// CompleteFixtureFromMatch feeds the final score of the fixture's
// linked match into the standings. Only a completed match snapshot is
// accepted; the score pair and status are the whole contract with the
// match engine.
func (s *TournamentService) CompleteFixtureFromMatch(tournamentID string, fixtureID int) (models.StandingsResponse, error) {
	entry, err := s.entry(tournamentID)
	if err != nil {
		return models.StandingsResponse{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	fixture, err := entry.roundRobin.Fixture(fixtureID)
	if err != nil {
		return models.StandingsResponse{}, err
	}
	if fixture.Status == models.FixtureCompleted {
		return models.StandingsResponse{}, engine.ErrFixtureCompleted
	}
	if fixture.MatchID == "" {
		return models.StandingsResponse{}, ErrFixtureNotStarted
	}

	snapshot, err := s.matchService.GetSnapshot(fixture.MatchID)
	if err != nil {
		return models.StandingsResponse{}, err
	}
	if snapshot.Status != models.MatchCompleted {
		return models.StandingsResponse{}, ErrMatchNotFinished
	}

	if err := entry.roundRobin.ApplyResult(fixtureID, snapshot.Team1Score, snapshot.Team2Score); err != nil {
		return models.StandingsResponse{}, err
	}
	entry.lastActive = time.Now()

	standings := buildStandings(entry.roundRobin)
	if standings.Status == models.TournamentCompleted {
		s.archive.SaveTournament(entry.roundRobin.Snapshot(), standings.Rankings)
	}
	s.publish(standings)
	return standings, nil
}

func (s *TournamentService) GetRankings(tournamentID string) ([]models.RankingEntry, error) {
	entry, err := s.entry(tournamentID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.roundRobin.Rankings(), nil
}

func (s *TournamentService) GetTiedGroups(tournamentID string) ([]models.TiedGroup, error) {
	entry, err := s.entry(tournamentID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.roundRobin.TiedGroups(), nil
}

func (s *TournamentService) GetStandings(tournamentID string) (models.StandingsResponse, error) {
	entry, err := s.entry(tournamentID)
	if err != nil {
		return models.StandingsResponse{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return buildStandings(entry.roundRobin), nil
}

func (s *TournamentService) DeleteTournament(tournamentID string) error {
	s.mu.Lock()
	entry, ok := s.entries[tournamentID]
	if ok {
		delete(s.entries, tournamentID)
	}
	s.mu.Unlock()

	if !ok {
		return ErrTournamentNotFound
	}

	entry.mu.Lock()
	s.archive.SaveTournament(entry.roundRobin.Snapshot(), entry.roundRobin.Rankings())
	entry.mu.Unlock()

	s.hub.CloseTopic(broadcast.TournamentTopic(tournamentID))
	return nil
}

// PurgeExpired archives and removes completed tournaments idle longer
// than ttl. Returns the number of tournaments removed.
func (s *TournamentService) PurgeExpired(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	var expired []string
	for id, entry := range s.entries {
		entry.mu.Lock()
		if entry.roundRobin.Snapshot().Status == models.TournamentCompleted && entry.lastActive.Before(cutoff) {
			expired = append(expired, id)
		}
		entry.mu.Unlock()
	}
	s.mu.Unlock()

	removed := 0
	for _, id := range expired {
		if err := s.DeleteTournament(id); err == nil {
			removed++
		}
	}
	return removed
}

func (s *TournamentService) entry(tournamentID string) (*tournamentEntry, error) {
	s.mu.RLock()
	entry, ok := s.entries[tournamentID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrTournamentNotFound
	}
	return entry, nil
}

func (s *TournamentService) publish(standings models.StandingsResponse) {
	payload, err := json.Marshal(standings)
	if err != nil {
		return
	}
	s.hub.Publish(broadcast.TournamentTopic(standings.TournamentID), payload)
}

func buildStandings(roundRobin *engine.RoundRobin) models.StandingsResponse {
	tournament := roundRobin.Snapshot()
	return models.StandingsResponse{
		TournamentID: tournament.ID,
		Name:         tournament.Name,
		OrganizerID:  tournament.OrganizerID,
		Status:       tournament.Status,
		Rankings:     roundRobin.Rankings(),
		Fixtures:     tournament.Fixtures,
		CreatedAt:    tournament.CreatedAt,
		CompletedAt:  tournament.CompletedAt,
	}
}
