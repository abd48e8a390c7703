package engine

import (
	"sort"
	"strings"
	"time"

	"core/models"
	"core/utils"
)

// RoundRobin owns one tournament's fixture list, cumulative team
// statistics and ranking computation. Like Match, it performs no
// locking and expects the service layer to serialize calls.
type RoundRobin struct {
	tournament models.Tournament
	now        func() time.Time
}

// NewRoundRobin generates one fixture per unordered pair of distinct
// teams (n(n-1)/2 total). Teams and fixtures get 1-based ids in
// creation order; the team id order doubles as the final ranking
// tie-break, so team order at creation is meaningful.
func NewRoundRobin(id, name string, teamNames []string, organizerID string, now func() time.Time) (*RoundRobin, error) {
	if len(teamNames) < 2 {
		return nil, ErrNotEnoughTeams
	}
	if now == nil {
		now = time.Now
	}

	teams := make([]models.Team, len(teamNames))
	for i, teamName := range teamNames {
		teamName = strings.TrimSpace(teamName)
		if teamName == "" {
			return nil, ErrEmptyTeamName
		}
		teams[i] = models.Team{ID: i + 1, Name: teamName}
	}

	var fixtures []models.Fixture
	fixtureID := 1
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			fixtures = append(fixtures, models.Fixture{
				ID:      fixtureID,
				Team1ID: teams[i].ID,
				Team2ID: teams[j].ID,
				Status:  models.FixturePending,
			})
			fixtureID++
		}
	}

	return &RoundRobin{
		tournament: models.Tournament{
			ID:          id,
			Name:        name,
			OrganizerID: organizerID,
			Status:      models.TournamentInProgress,
			Teams:       teams,
			Fixtures:    fixtures,
			CreatedAt:   now(),
		},
		now: now,
	}, nil
}

// LinkMatch marks a pending fixture as in progress and records the id
// of the live match driving it. Fixtures are never reopened, so a
// started or completed fixture rejects the link.
func (rr *RoundRobin) LinkMatch(fixtureID int, matchID string) error {
	fixture := rr.fixture(fixtureID)
	if fixture == nil {
		return ErrFixtureNotFound
	}
	switch fixture.Status {
	case models.FixtureCompleted:
		return ErrFixtureCompleted
	case models.FixtureInProgress:
		return ErrFixtureStarted
	}

	fixture.Status = models.FixtureInProgress
	fixture.MatchID = matchID
	return nil
}

// ApplyResult completes a fixture with a final score and updates both
// teams' cumulative stats and head-to-head logs. Equal scores are
// rejected: the game has no drawn outcome. Validation happens before
// any mutation, so a failed call leaves the tournament unchanged.
func (rr *RoundRobin) ApplyResult(fixtureID, score1, score2 int) error {
	fixture := rr.fixture(fixtureID)
	if fixture == nil {
		return ErrFixtureNotFound
	}
	if fixture.Status == models.FixtureCompleted {
		return ErrFixtureCompleted
	}
	if score1 < 0 || score2 < 0 {
		return ErrNegativeScore
	}
	if score1 == score2 {
		return ErrEqualScores
	}

	fixture.Team1Score = score1
	fixture.Team2Score = score2
	fixture.Status = models.FixtureCompleted
	completed := rr.now()
	fixture.CompletedAt = &completed

	team1 := rr.team(fixture.Team1ID)
	team2 := rr.team(fixture.Team2ID)
	team1.PointsScored += score1
	team1.PointsConceded += score2
	team2.PointsScored += score2
	team2.PointsConceded += score1
	team1.PointDifference = team1.PointsScored - team1.PointsConceded
	team2.PointDifference = team2.PointsScored - team2.PointsConceded

	team1Result, team2Result := models.ResultWon, models.ResultLost
	if score1 > score2 {
		team1.GamesWon++
		team2.GamesLost++
	} else {
		team2.GamesWon++
		team1.GamesLost++
		team1Result, team2Result = models.ResultLost, models.ResultWon
	}

	team1.MatchRecords = append(team1.MatchRecords, models.HeadToHead{
		OpponentID:   team2.ID,
		Result:       team1Result,
		ScoreFor:     score1,
		ScoreAgainst: score2,
	})
	team2.MatchRecords = append(team2.MatchRecords, models.HeadToHead{
		OpponentID:   team1.ID,
		Result:       team2Result,
		ScoreFor:     score2,
		ScoreAgainst: score1,
	})

	if rr.allFixturesCompleted() {
		rr.tournament.Status = models.TournamentCompleted
		rr.tournament.CompletedAt = &completed
	}
	return nil
}

// Rankings computes a fresh total order over the teams:
// games won, then point difference, then points scored, then the
// head-to-head meeting of the tied pair, and finally ascending team
// id so the order is always deterministic.
func (rr *RoundRobin) Rankings() []models.RankingEntry {
	teams := make([]models.Team, len(rr.tournament.Teams))
	copy(teams, rr.tournament.Teams)

	sort.SliceStable(teams, func(i, j int) bool {
		return rr.teamLess(&teams[i], &teams[j])
	})

	entries := make([]models.RankingEntry, len(teams))
	for i, team := range teams {
		entries[i] = models.RankingEntry{
			Rank:            i + 1,
			TeamID:          team.ID,
			TeamName:        team.Name,
			GamesWon:        team.GamesWon,
			GamesLost:       team.GamesLost,
			PointsScored:    team.PointsScored,
			PointsConceded:  team.PointsConceded,
			PointDifference: team.PointDifference,
			WinPercentage:   utils.WinPercentage(team.GamesWon, team.GamesLost),
		}
	}
	return entries
}

func (rr *RoundRobin) teamLess(a, b *models.Team) bool {
	if a.GamesWon != b.GamesWon {
		return a.GamesWon > b.GamesWon
	}
	if a.PointDifference != b.PointDifference {
		return a.PointDifference > b.PointDifference
	}
	if a.PointsScored != b.PointsScored {
		return a.PointsScored > b.PointsScored
	}
	if cmp := headToHead(a, b); cmp != 0 {
		return cmp > 0
	}
	return a.ID < b.ID
}

// headToHead compares two teams by their direct meeting: the winner
// outranks the loser; failing that, the h2h point differential, then
// the raw score posted in that meeting. Returns >0 when a outranks b,
// 0 when the teams have not met.
func headToHead(a, b *models.Team) int {
	recordA := findRecord(a, b.ID)
	recordB := findRecord(b, a.ID)
	if recordA == nil || recordB == nil {
		return 0
	}

	if recordA.Result != recordB.Result {
		if recordA.Result == models.ResultWon {
			return 1
		}
		return -1
	}

	diffA := recordA.ScoreFor - recordA.ScoreAgainst
	diffB := recordB.ScoreFor - recordB.ScoreAgainst
	if diffA != diffB {
		if diffA > diffB {
			return 1
		}
		return -1
	}

	if recordA.ScoreFor != recordB.ScoreFor {
		if recordA.ScoreFor > recordB.ScoreFor {
			return 1
		}
		return -1
	}
	return 0
}

func findRecord(team *models.Team, opponentID int) *models.HeadToHead {
	for i := range team.MatchRecords {
		if team.MatchRecords[i].OpponentID == opponentID {
			return &team.MatchRecords[i]
		}
	}
	return nil
}

// TiedGroups partitions teams into groups sharing an identical
// (gamesWon, pointDifference, pointsScored) triple, keeping only
// groups of two or more. Groups come back best-triple first with team
// ids ascending.
func (rr *RoundRobin) TiedGroups() []models.TiedGroup {
	type key struct{ won, diff, scored int }
	groups := make(map[key][]int)
	for _, team := range rr.tournament.Teams {
		k := key{team.GamesWon, team.PointDifference, team.PointsScored}
		groups[k] = append(groups[k], team.ID)
	}

	var tied []models.TiedGroup
	for k, ids := range groups {
		if len(ids) < 2 {
			continue
		}
		sort.Ints(ids)
		tied = append(tied, models.TiedGroup{
			GamesWon:        k.won,
			PointDifference: k.diff,
			PointsScored:    k.scored,
			TeamIDs:         ids,
		})
	}

	sort.Slice(tied, func(i, j int) bool {
		if tied[i].GamesWon != tied[j].GamesWon {
			return tied[i].GamesWon > tied[j].GamesWon
		}
		if tied[i].PointDifference != tied[j].PointDifference {
			return tied[i].PointDifference > tied[j].PointDifference
		}
		return tied[i].PointsScored > tied[j].PointsScored
	})
	return tied
}

// Snapshot returns a deep copy of the tournament state.
func (rr *RoundRobin) Snapshot() models.Tournament {
	out := rr.tournament

	out.Teams = make([]models.Team, len(rr.tournament.Teams))
	copy(out.Teams, rr.tournament.Teams)
	for i := range out.Teams {
		records := make([]models.HeadToHead, len(out.Teams[i].MatchRecords))
		copy(records, out.Teams[i].MatchRecords)
		out.Teams[i].MatchRecords = records
	}

	out.Fixtures = make([]models.Fixture, len(rr.tournament.Fixtures))
	copy(out.Fixtures, rr.tournament.Fixtures)

	return out
}

// Fixture returns a copy of one fixture.
func (rr *RoundRobin) Fixture(fixtureID int) (models.Fixture, error) {
	fixture := rr.fixture(fixtureID)
	if fixture == nil {
		return models.Fixture{}, ErrFixtureNotFound
	}
	return *fixture, nil
}

func (rr *RoundRobin) fixture(fixtureID int) *models.Fixture {
	for i := range rr.tournament.Fixtures {
		if rr.tournament.Fixtures[i].ID == fixtureID {
			return &rr.tournament.Fixtures[i]
		}
	}
	return nil
}

func (rr *RoundRobin) team(teamID int) *models.Team {
	for i := range rr.tournament.Teams {
		if rr.tournament.Teams[i].ID == teamID {
			return &rr.tournament.Teams[i]
		}
	}
	return nil
}

func (rr *RoundRobin) allFixturesCompleted() bool {
	for _, fixture := range rr.tournament.Fixtures {
		if fixture.Status != models.FixtureCompleted {
			return false
		}
	}
	return true
}
