package analysis

// -----------------------------------------------------------------------------
// MPriceSummary is the per-symbol roll-up of buffered history served by the
// stats endpoint.
// -----------------------------------------------------------------------------

type MPriceSummary struct {
	Symbol        string  `json:"symbol"`
	DataPoints    int     `json:"data_points"`
	MeanPrice     float64 `json:"mean_price"`
	StdPrice      float64 `json:"std_price"`
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
	PercentChange float64 `json:"percent_change"`
}

// -----------------------------------------------------------------------------

// SummarizePrices computes summary statistics over a symbol's price history
// (oldest first).
func SummarizePrices(symbol string, prices []float64) MPriceSummary {
	mean, std := CalculateMeanStd(prices)
	min, max := CalculateMinMax(prices)

	return MPriceSummary{
		Symbol:        symbol,
		DataPoints:    len(prices),
		MeanPrice:     mean,
		StdPrice:      std,
		MinPrice:      min,
		MaxPrice:      max,
		PercentChange: CalculatePercentChange(prices),
	}
}
