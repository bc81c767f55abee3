package models

// MProcessingMetrics represents performance metrics for one archiver drain pass.
type MProcessingMetrics struct {
	DrainTimeSeconds float64 `json:"drain_time_seconds"`
	UpdatesDrained   int     `json:"updates_drained"`
	ValidSymbols     int     `json:"valid_symbols"`
}
