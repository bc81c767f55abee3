package utils

import (
	"ticker-engine/src/models"
)

// -----------------------------------------------------------------------------
// RingBuffer is a fixed-size circular buffer of price points.
// True ring buffer - no resizing of the hot path!
// -----------------------------------------------------------------------------

type RingBuffer struct {
	// Data storage as 2D slice (rows x features)
	data     [][models.RB_NUM_FEATURES]float64
	capacity int
	index    int // Next write position
	size     int // Current number of elements
}

// -----------------------------------------------------------------------------

// NewRingBuffer creates a new buffer with fixed capacity
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = 1000 // Default reasonable size
	}

	return &RingBuffer{
		data:     make([][models.RB_NUM_FEATURES]float64, capacity),
		capacity: capacity,
		index:    0,
		size:     0,
	}
}

// -----------------------------------------------------------------------------

// Append adds a price update, evicting the oldest point when full
func (rb *RingBuffer) Append(point models.MPriceUpdate) {
	rb.data[rb.index] = [models.RB_NUM_FEATURES]float64{
		float64(point.TimestampMs),
		point.Price,
	}

	rb.index = (rb.index + 1) % rb.capacity

	// Update size (never exceeds capacity)
	if rb.size < rb.capacity {
		rb.size++
	}
}

// -----------------------------------------------------------------------------

// GetLatest returns the n latest records for a symbol, oldest first
func (rb *RingBuffer) GetLatest(symbol string, n int) []models.MPriceUpdate {
	if rb.size == 0 || n <= 0 {
		return []models.MPriceUpdate{}
	}

	count := n
	if n > rb.size {
		count = rb.size
	}

	result := make([]models.MPriceUpdate, count)

	// Latest data is at index-1
	startIdx := (rb.index - count + rb.capacity) % rb.capacity

	for i := 0; i < count; i++ {
		idx := (startIdx + i) % rb.capacity
		row := rb.data[idx]

		result[i] = models.MPriceUpdate{
			Symbol:      symbol,
			TimestampMs: int64(row[models.RB_IDX_TIMESTAMP]),
			Price:       row[models.RB_IDX_PRICE],
		}
	}

	return result
}

// -----------------------------------------------------------------------------

// GetAll returns all data in insertion order (oldest to newest)
func (rb *RingBuffer) GetAll(symbol string) []models.MPriceUpdate {
	if rb.size == 0 {
		return []models.MPriceUpdate{}
	}

	result := make([]models.MPriceUpdate, rb.size)

	// Oldest element: wrap-around when full, otherwise index 0
	var startIdx int
	if rb.size == rb.capacity {
		startIdx = rb.index
	} else {
		startIdx = 0
	}

	for i := 0; i < rb.size; i++ {
		idx := (startIdx + i) % rb.capacity
		row := rb.data[idx]

		result[i] = models.MPriceUpdate{
			Symbol:      symbol,
			TimestampMs: int64(row[models.RB_IDX_TIMESTAMP]),
			Price:       row[models.RB_IDX_PRICE],
		}
	}

	return result
}

// -----------------------------------------------------------------------------

// Prices returns the buffered price column in insertion order
func (rb *RingBuffer) Prices() []float64 {
	if rb.size == 0 {
		return []float64{}
	}

	result := make([]float64, rb.size)

	var startIdx int
	if rb.size == rb.capacity {
		startIdx = rb.index
	} else {
		startIdx = 0
	}

	for i := 0; i < rb.size; i++ {
		idx := (startIdx + i) % rb.capacity
		result[i] = rb.data[idx][models.RB_IDX_PRICE]
	}

	return result
}

// -----------------------------------------------------------------------------

// Size returns current number of elements
func (rb *RingBuffer) Size() int {
	return rb.size
}

// -----------------------------------------------------------------------------

// Capacity returns buffer capacity (fixed)
func (rb *RingBuffer) Capacity() int {
	return rb.capacity
}

// -----------------------------------------------------------------------------

// IsFull returns whether buffer is full
func (rb *RingBuffer) IsFull() bool {
	return rb.size == rb.capacity
}

// -----------------------------------------------------------------------------

// Clear resets the buffer
func (rb *RingBuffer) Clear() {
	rb.index = 0
	rb.size = 0
}
