package fixtures

import (
	"fmt"
	"log"
	"math/rand"

	"core"
	"core/models"
	"core/utils"
)

// Fixtures generates demo data: one round-robin tournament whose
// games are played out through the live match engine rather than
// written in as raw scores.
type Fixtures struct {
	module *core.Module
	rng    *rand.Rand
}

func NewFixtures(module *core.Module, seed int64) *Fixtures {
	return &Fixtures{
		module: module,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// GenerateDemoTournament creates a 4-team tournament and simulates
// every fixture to completion.
func (f *Fixtures) GenerateDemoTournament() (string, error) {
	log.Println("Starting demo data generation...")

	tournament, err := f.module.TournamentService.CreateTournament(models.CreateTournamentRequest{
		Name:        "Demo Club Championship",
		TeamNames:   []string{"Dink Dynasty", "Net Ninjas", "Kitchen Crashers", "Smash Bros"},
		OrganizerID: "demo-organizer",
	})
	if err != nil {
		return "", fmt.Errorf("failed to create demo tournament: %w", err)
	}

	for _, fixture := range tournament.Fixtures {
		if err := f.simulateFixture(tournament.ID, fixture.ID); err != nil {
			return "", fmt.Errorf("failed to simulate fixture %d: %w", fixture.ID, err)
		}
	}

	standings, err := f.module.TournamentService.GetStandings(tournament.ID)
	if err != nil {
		return "", err
	}

	for _, entry := range standings.Rankings {
		margin := utils.AveragePointMargin(entry.PointDifference, entry.GamesWon, entry.GamesLost)
		log.Printf("  %d. %s  %d-%d (%.0f%%, avg margin %+.1f)",
			entry.Rank, entry.TeamName, entry.GamesWon, entry.GamesLost,
			entry.WinPercentage*100, margin)
	}

	log.Println("Demo data generation completed")
	return tournament.ID, nil
}

func (f *Fixtures) simulateFixture(tournamentID string, fixtureID int) error {
	started, err := f.module.TournamentService.StartFixtureMatch(tournamentID, fixtureID, models.CreateMatchRequest{
		Format:        models.FormatDoubles,
		ScoringSystem: models.ScoringRally,
		TargetScore:   11,
		FirstServer:   1,
	})
	if err != nil {
		return err
	}

	// One side is slightly stronger so standings are not uniform.
	bias := 40 + f.rng.Intn(21)

	state := started.Match
	for state.Status != models.MatchCompleted {
		winner := 2
		if f.rng.Intn(100) < bias {
			winner = 1
		}
		state, err = f.module.MatchService.RecordRally(started.Match.ID, winner)
		if err != nil {
			return err
		}
	}

	_, err = f.module.TournamentService.CompleteFixtureFromMatch(tournamentID, fixtureID)
	return err
}
