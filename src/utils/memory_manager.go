package utils

import (
	"sync"

	"ticker-engine/src/logger"
	"ticker-engine/src/models"
)

// -----------------------------------------------------------------------------
// MemoryManager holds the in-memory price history per symbol, one fixed-size
// ring buffer each. Fed by the archiver loop, read by the server handlers.
// -----------------------------------------------------------------------------

type MemoryManager struct {
	DataStreams   map[string]*RingBuffer
	MaxDataPoints int
	Logger        *logger.Logger
	mu            sync.RWMutex
}

// -----------------------------------------------------------------------------

func NewMemoryManager(maxDataPoints int, log *logger.Logger) *MemoryManager {
	return &MemoryManager{
		DataStreams:   make(map[string]*RingBuffer),
		MaxDataPoints: maxDataPoints,
		Logger:        log,
	}
}

// -----------------------------------------------------------------------------

// AddDataPoint appends an update to its symbol's buffer, creating the buffer
// on first sight of the symbol.
func (mm *MemoryManager) AddDataPoint(update models.MPriceUpdate) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	if _, ok := mm.DataStreams[update.Symbol]; !ok {
		mm.DataStreams[update.Symbol] = NewRingBuffer(mm.MaxDataPoints)
	}

	mm.DataStreams[update.Symbol].Append(update)
}

// -----------------------------------------------------------------------------

// GetHistory returns up to n buffered updates for a symbol, oldest first.
// n <= 0 means the full buffer.
func (mm *MemoryManager) GetHistory(symbol string, n int) []models.MPriceUpdate {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	buffer, ok := mm.DataStreams[symbol]
	if !ok || buffer.Size() == 0 {
		return []models.MPriceUpdate{}
	}

	if n <= 0 {
		return buffer.GetAll(symbol)
	}
	return buffer.GetLatest(symbol, n)
}

// -----------------------------------------------------------------------------

// GetLatestSnapshot returns the most recent update for every symbol.
func (mm *MemoryManager) GetLatestSnapshot() map[string]models.MPriceUpdate {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	result := make(map[string]models.MPriceUpdate)
	for sym, buffer := range mm.DataStreams {
		if buffer.Size() == 0 {
			continue
		}

		latest := buffer.GetLatest(sym, 1)
		if len(latest) > 0 {
			result[sym] = latest[0]
		}
	}
	return result
}

// -----------------------------------------------------------------------------

// GetPrices returns the buffered price column for a symbol, oldest first.
func (mm *MemoryManager) GetPrices(symbol string) []float64 {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	buffer, ok := mm.DataStreams[symbol]
	if !ok {
		return []float64{}
	}
	return buffer.Prices()
}

// -----------------------------------------------------------------------------

// HasSymbol checks if symbol exists
func (mm *MemoryManager) HasSymbol(symbol string) bool {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	_, ok := mm.DataStreams[symbol]
	return ok
}

// -----------------------------------------------------------------------------

// SymbolCount returns number of symbols with data
func (mm *MemoryManager) SymbolCount() int {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	return len(mm.DataStreams)
}

// -----------------------------------------------------------------------------

// Cleanup clears all buffered history
func (mm *MemoryManager) Cleanup() {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	mm.DataStreams = make(map[string]*RingBuffer)
}
