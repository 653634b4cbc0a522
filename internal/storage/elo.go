package storage

import "math"

// eloK is the fixed K-factor for rating updates.
const eloK = 32

// EloDelta returns the rating change for a player with the given rating
// against an opponent, where score is 1 for a win and 0 for a loss.
func EloDelta(rating, opponentRating int, score float64) int {
	expected := 1.0 / (1.0 + math.Pow(10, float64(opponentRating-rating)/400.0))
	return int(math.Round(eloK * (score - expected)))
}
