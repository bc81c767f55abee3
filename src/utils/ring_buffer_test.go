package utils

import (
	"testing"

	"ticker-engine/src/models"
)

// -----------------------------------------------------------------------------

func makeUpdate(ts int64, price float64) models.MPriceUpdate {
	return models.MPriceUpdate{Symbol: "AAPL", TimestampMs: ts, Price: price}
}

// -----------------------------------------------------------------------------

func TestRingBufferAppendAndGetAll(t *testing.T) {
	rb := NewRingBuffer(5)

	for i := 0; i < 3; i++ {
		rb.Append(makeUpdate(int64(i), float64(100+i)))
	}

	if rb.Size() != 3 {
		t.Fatalf("Expected size 3, got %d", rb.Size())
	}

	all := rb.GetAll("AAPL")
	for i, u := range all {
		if u.TimestampMs != int64(i) {
			t.Errorf("Expected timestamp %d at index %d, got %d", i, i, u.TimestampMs)
		}
		if u.Symbol != "AAPL" {
			t.Errorf("Expected symbol AAPL, got %s", u.Symbol)
		}
	}
}

// -----------------------------------------------------------------------------

func TestRingBufferWraparoundKeepsNewest(t *testing.T) {
	rb := NewRingBuffer(4)

	for i := 0; i < 10; i++ {
		rb.Append(makeUpdate(int64(i), float64(i)))
	}

	if !rb.IsFull() {
		t.Fatalf("Expected full buffer")
	}
	if rb.Size() != 4 {
		t.Fatalf("Expected size 4 after wraparound, got %d", rb.Size())
	}

	// Oldest evicted: only timestamps 6..9 remain, oldest first
	all := rb.GetAll("AAPL")
	for i, u := range all {
		want := int64(6 + i)
		if u.TimestampMs != want {
			t.Errorf("Expected timestamp %d at index %d, got %d", want, i, u.TimestampMs)
		}
	}
}

// -----------------------------------------------------------------------------

func TestRingBufferGetLatest(t *testing.T) {
	rb := NewRingBuffer(8)

	for i := 0; i < 6; i++ {
		rb.Append(makeUpdate(int64(i), float64(i)))
	}

	latest := rb.GetLatest("AAPL", 3)
	if len(latest) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(latest))
	}
	for i, u := range latest {
		want := int64(3 + i)
		if u.TimestampMs != want {
			t.Errorf("Expected timestamp %d at index %d, got %d", want, i, u.TimestampMs)
		}
	}

	// Asking for more than stored returns everything
	if got := rb.GetLatest("AAPL", 100); len(got) != 6 {
		t.Errorf("Expected 6 items, got %d", len(got))
	}

	// Empty and zero cases
	if got := rb.GetLatest("AAPL", 0); len(got) != 0 {
		t.Errorf("Expected no items for n=0, got %d", len(got))
	}
	rb.Clear()
	if got := rb.GetLatest("AAPL", 3); len(got) != 0 {
		t.Errorf("Expected no items after Clear, got %d", len(got))
	}
}

// -----------------------------------------------------------------------------

func TestRingBufferPricesColumn(t *testing.T) {
	rb := NewRingBuffer(3)

	rb.Append(makeUpdate(1, 100.5))
	rb.Append(makeUpdate(2, 101.5))
	rb.Append(makeUpdate(3, 99.5))
	rb.Append(makeUpdate(4, 98.5)) // evicts 100.5

	prices := rb.Prices()
	want := []float64{101.5, 99.5, 98.5}
	if len(prices) != len(want) {
		t.Fatalf("Expected %d prices, got %d", len(want), len(prices))
	}
	for i := range want {
		if prices[i] != want[i] {
			t.Errorf("Expected price %f at index %d, got %f", want[i], i, prices[i])
		}
	}
}

// -----------------------------------------------------------------------------

func TestMemoryManagerHistory(t *testing.T) {
	mm := NewMemoryManager(4, testLogger())

	for i := 0; i < 6; i++ {
		mm.AddDataPoint(models.MPriceUpdate{Symbol: "AAPL", TimestampMs: int64(i), Price: float64(i)})
	}
	mm.AddDataPoint(models.MPriceUpdate{Symbol: "GOOG", TimestampMs: 100, Price: 50})

	if mm.SymbolCount() != 2 {
		t.Fatalf("Expected 2 symbols, got %d", mm.SymbolCount())
	}
	if !mm.HasSymbol("AAPL") || mm.HasSymbol("MSFT") {
		t.Errorf("Symbol presence checks failed")
	}

	history := mm.GetHistory("AAPL", 0)
	if len(history) != 4 {
		t.Fatalf("Expected capped history of 4, got %d", len(history))
	}
	if history[0].TimestampMs != 2 {
		t.Errorf("Expected oldest surviving timestamp 2, got %d", history[0].TimestampMs)
	}

	snapshot := mm.GetLatestSnapshot()
	if snapshot["AAPL"].TimestampMs != 5 || snapshot["GOOG"].TimestampMs != 100 {
		t.Errorf("Snapshot does not hold the latest points: %+v", snapshot)
	}

	if got := mm.GetHistory("MSFT", 0); len(got) != 0 {
		t.Errorf("Unknown symbol must yield empty history, got %d", len(got))
	}

	mm.Cleanup()
	if mm.SymbolCount() != 0 {
		t.Errorf("Expected no symbols after Cleanup, got %d", mm.SymbolCount())
	}
}
