package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"ticker-engine/src/models"
)

// -----------------------------------------------------------------------------
// Simulation is the per-run context: a symbol -> current price mapping seeded
// once at start and mutated every step by a bounded random walk. Exclusively
// owned by the producer goroutine and discarded when the run ends; only
// observable through emitted MPriceUpdates.
// -----------------------------------------------------------------------------

// Documented defaults for the random walk
const (
	DefaultStepIntervalMs = 500
	DefaultBasePriceMin   = 90.0
	DefaultBasePriceMax   = 110.0
	DefaultMaxDelta       = 1.0
	DefaultPriceFloor     = 0.01
)

// -----------------------------------------------------------------------------

type Simulation struct {
	symbols []string // fixed iteration order for the whole run
	prices  map[string]float64
	rng     *rand.Rand

	maxDelta   float64
	priceFloor float64
}

// -----------------------------------------------------------------------------

// NewSimulation seeds one base price per symbol from a uniform range and fixes
// the step iteration order. Invalid parameters are rejected here so the
// producer can collapse to a startup failure without ever executing a step.
func NewSimulation(symbols []string, cfg models.MSimulationConfig) (*Simulation, error) {
	baseMin := cfg.BasePriceMin
	baseMax := cfg.BasePriceMax
	if baseMin == 0 && baseMax == 0 {
		baseMin = DefaultBasePriceMin
		baseMax = DefaultBasePriceMax
	}
	if baseMin >= baseMax {
		return nil, fmt.Errorf("invalid base price range [%f, %f)", baseMin, baseMax)
	}

	maxDelta := cfg.MaxDelta
	if maxDelta == 0 {
		maxDelta = DefaultMaxDelta
	}
	if maxDelta < 0 {
		return nil, fmt.Errorf("max delta cannot be negative: %f", maxDelta)
	}

	floor := cfg.PriceFloor
	if floor == 0 {
		floor = DefaultPriceFloor
	}
	if floor < 0 || floor >= baseMin {
		return nil, fmt.Errorf("invalid price floor %f for base range [%f, %f)", floor, baseMin, baseMax)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Sorted copy with adjacent duplicates compacted away: deterministic
	// iteration order and exactly one entry per symbol, however the caller
	// spelled the list
	ordered := make([]string, len(symbols))
	copy(ordered, symbols)
	sort.Strings(ordered)

	unique := ordered[:0]
	for _, symbol := range ordered {
		if len(unique) == 0 || symbol != unique[len(unique)-1] {
			unique = append(unique, symbol)
		}
	}
	ordered = unique

	prices := make(map[string]float64, len(ordered))
	for _, symbol := range ordered {
		prices[symbol] = baseMin + rng.Float64()*(baseMax-baseMin)
	}

	return &Simulation{
		symbols:    ordered,
		prices:     prices,
		rng:        rng,
		maxDelta:   maxDelta,
		priceFloor: floor,
	}, nil
}

// -----------------------------------------------------------------------------

// Step advances every symbol by one bounded symmetric random delta, clamps at
// the floor, and returns one update per symbol in the fixed iteration order.
func (sim *Simulation) Step() []models.MPriceUpdate {
	updates := make([]models.MPriceUpdate, 0, len(sim.symbols))

	for _, symbol := range sim.symbols {
		// Uniform in [-maxDelta, +maxDelta)
		delta := (sim.rng.Float64()*2 - 1) * sim.maxDelta

		price := sim.prices[symbol] + delta
		if price < sim.priceFloor {
			price = sim.priceFloor
		}
		sim.prices[symbol] = price

		updates = append(updates, models.MPriceUpdate{
			Symbol:      symbol,
			Price:       price,
			TimestampMs: time.Now().UnixMilli(),
		})
	}

	return updates
}

// -----------------------------------------------------------------------------

// Symbols returns the run's fixed iteration order.
func (sim *Simulation) Symbols() []string {
	return sim.symbols
}
