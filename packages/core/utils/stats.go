package utils

// WinPercentage returns wins over games played, 0.0 when no games
// have been played yet.
func WinPercentage(wins, losses int) float64 {
	played := wins + losses
	if played == 0 {
		return 0.0
	}
	return float64(wins) / float64(played)
}

// AveragePointMargin returns the mean point difference per completed
// game, 0.0 when no games have been played.
func AveragePointMargin(pointDifference, wins, losses int) float64 {
	played := wins + losses
	if played == 0 {
		return 0.0
	}
	return float64(pointDifference) / float64(played)
}
