package services

import "errors"

var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrTournamentNotFound = errors.New("tournament not found")

	// ErrMatchNotFinished rejects completing a fixture whose linked
	// match has not reached the completed status.
	ErrMatchNotFinished = errors.New("linked match is not finished")

	// ErrFixtureNotStarted rejects completing a fixture that has no
	// linked match yet.
	ErrFixtureNotStarted = errors.New("fixture has no linked match")
)
