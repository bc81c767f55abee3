package models

// MPriceUpdate represents one simulated quote. Plain value, never mutated
// after creation.
type MPriceUpdate struct {
	Symbol      string  `json:"symbol"`
	Price       float64 `json:"price"`
	TimestampMs int64   `json:"timestamp_ms"`
}
