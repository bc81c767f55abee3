package models

// -----------------------------------------------------------------------------
// Server State Structure
// -----------------------------------------------------------------------------

type MLatestData struct {
	Type              string                  `json:"type"` // "INITIAL" or "UPDATE"
	RawData           map[string]MPriceUpdate `json:"raw_data"`
	Timestamp         int64                   `json:"timestamp"`
	ProcessingMetrics MProcessingMetrics      `json:"processing_metrics"`
}

// -----------------------------------------------------------------------------
// SubscribeCommand for client messages
// -----------------------------------------------------------------------------

type MSubscribeCommand struct {
	Command string   `json:"command"`
	Symbols []string `json:"symbols"`
}
