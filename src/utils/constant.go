package utils

import "math"

// -----------------------------------------------------------------------------

// Defaults for history sizing. At the default 500ms step cadence a symbol
// produces 2 points per second; 2000 points keeps roughly the last ~17 minutes
// per symbol, which is plenty for the history and stats endpoints.
const (
	DefaultHistoryPoints = 2000
	DefaultRetentionDays = 7
)

// -----------------------------------------------------------------------------

// CalculateMaxDataPoints derives a history buffer size from a step interval,
// targeting about one hour of points per symbol, capped for memory safety.
func CalculateMaxDataPoints(stepIntervalMs int) int {
	if stepIntervalMs <= 0 {
		return DefaultHistoryPoints
	}
	points := int(math.Ceil(3600_000 / float64(stepIntervalMs)))
	if points > 10000 {
		points = 10000
	}
	return points
}
