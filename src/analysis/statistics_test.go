package analysis

import (
	"math"
	"testing"
)

// -----------------------------------------------------------------------------

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// -----------------------------------------------------------------------------

func TestCalculateMeanStd(t *testing.T) {
	cases := []struct {
		name     string
		data     []float64
		wantMean float64
		wantStd  float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{5}, 5, 0},
		{"constant", []float64{2, 2, 2, 2}, 2, 0},
		{"simple", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 5, 2},
	}

	for _, tc := range cases {
		mean, std := CalculateMeanStd(tc.data)
		if !almostEqual(mean, tc.wantMean) || !almostEqual(std, tc.wantStd) {
			t.Errorf("%s: got mean=%f std=%f, want mean=%f std=%f", tc.name, mean, std, tc.wantMean, tc.wantStd)
		}
	}
}

// -----------------------------------------------------------------------------

func TestCalculateMinMax(t *testing.T) {
	min, max := CalculateMinMax([]float64{3.5, 1.0, 9.25, 4.0})
	if min != 1.0 || max != 9.25 {
		t.Errorf("Expected min=1.0 max=9.25, got min=%f max=%f", min, max)
	}

	min, max = CalculateMinMax(nil)
	if min != 0 || max != 0 {
		t.Errorf("Expected zeros for empty input, got min=%f max=%f", min, max)
	}
}

// -----------------------------------------------------------------------------

func TestCalculatePercentChange(t *testing.T) {
	if got := CalculatePercentChange([]float64{100, 110}); !almostEqual(got, 0.1) {
		t.Errorf("Expected 0.1, got %f", got)
	}
	if got := CalculatePercentChange([]float64{100, 90}); !almostEqual(got, -0.1) {
		t.Errorf("Expected -0.1, got %f", got)
	}
	if got := CalculatePercentChange([]float64{100}); got != 0 {
		t.Errorf("Expected 0 for a single point, got %f", got)
	}
	if got := CalculatePercentChange([]float64{0, 50}); got != 0 {
		t.Errorf("Expected 0 for a zero base, got %f", got)
	}
}

// -----------------------------------------------------------------------------

func TestSummarizePrices(t *testing.T) {
	summary := SummarizePrices("AAPL", []float64{100, 102, 98, 104})

	if summary.Symbol != "AAPL" {
		t.Errorf("Expected symbol AAPL, got %s", summary.Symbol)
	}
	if summary.DataPoints != 4 {
		t.Errorf("Expected 4 data points, got %d", summary.DataPoints)
	}
	if !almostEqual(summary.MeanPrice, 101) {
		t.Errorf("Expected mean 101, got %f", summary.MeanPrice)
	}
	if summary.MinPrice != 98 || summary.MaxPrice != 104 {
		t.Errorf("Expected min=98 max=104, got min=%f max=%f", summary.MinPrice, summary.MaxPrice)
	}
	if !almostEqual(summary.PercentChange, 0.04) {
		t.Errorf("Expected percent change 0.04, got %f", summary.PercentChange)
	}
}
