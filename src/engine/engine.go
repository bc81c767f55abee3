package engine

import (
	"time"

	"ticker-engine/src/interfaces"
	"ticker-engine/src/logger"
	"ticker-engine/src/models"
	"ticker-engine/src/utils"
)

// -----------------------------------------------------------------------------
// TickerEngine is the caller-facing handle around one EngineState. It owns the
// public lifecycle (start/cancel) and the pull-based drain surface. One engine
// may be started, cancelled and restarted repeatedly; each start creates a new
// Simulation that is discarded when that run ends.
// -----------------------------------------------------------------------------

type TickerEngine struct {
	Config *models.MConfig
	Logger *logger.Logger
	state  *EngineState
}

// -----------------------------------------------------------------------------

// NewTickerEngine constructs an engine with fresh, empty state, not running.
func NewTickerEngine(cfg *models.MConfig, log *logger.Logger) *TickerEngine {
	return &TickerEngine{
		Config: cfg,
		Logger: log,
		state:  NewEngineState(),
	}
}

// -----------------------------------------------------------------------------

// StartTracking begins a producer run for the given symbols. An empty symbol
// list and a redundant start while already running are both silent no-ops.
// The call returns immediately; the producer runs on its own goroutine and
// never propagates failures back to the caller.
func (e *TickerEngine) StartTracking(symbols []string, listener interfaces.IPriceListener) {
	if len(symbols) == 0 {
		return
	}

	if !e.state.TryAcquireRun() {
		e.Logger.Debug("StartTracking ignored: producer already running")
		return
	}

	e.state.ResetForNewRun()

	go e.runLoop(symbols, listener)
}

// -----------------------------------------------------------------------------

// Cancel requests the producer to stop. Fire-and-forget: the producer may emit
// at most one further in-flight step before it observes the flag and exits.
func (e *TickerEngine) Cancel() {
	e.state.RequestCancel()
}

// -----------------------------------------------------------------------------

// DrainUpdates removes and returns up to max pending updates in FIFO order.
// Callers may poll at any cadence independent of the producer's.
func (e *TickerEngine) DrainUpdates(max int) []models.MPriceUpdate {
	return e.state.Drain(max)
}

// -----------------------------------------------------------------------------

// IsRunning reports whether a producer run is active.
func (e *TickerEngine) IsRunning() bool {
	return e.state.IsRunning()
}

// -----------------------------------------------------------------------------

// QueueLen returns the number of updates waiting to be drained.
func (e *TickerEngine) QueueLen() int {
	return e.state.QueueLen()
}

// -----------------------------------------------------------------------------
// Producer loop
// -----------------------------------------------------------------------------

// runLoop is the producer: NotRunning -> Running -> Stopping -> NotRunning.
// It alone mutates the Simulation; the only shared state it touches is the
// EngineState, through short critical sections.
func (e *TickerEngine) runLoop(symbols []string, listener interfaces.IPriceListener) {
	defer e.state.MarkStopped()

	// The producer is isolated from the caller: a panicking listener (or any
	// abnormal exit) is logged and absorbed, never propagated.
	defer func() {
		if r := recover(); r != nil {
			e.Logger.Error("Producer terminated abnormally: %v", r)
		}
	}()

	sim, err := NewSimulation(symbols, e.Config.Simulation)
	if err != nil {
		// Startup failure: Running -> NotRunning without executing a step.
		// Not caller-visible; StartTracking has already returned.
		e.Logger.Error("Failed to start simulation: %v", err)
		return
	}

	interval := time.Duration(e.Config.Simulation.StepIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = DefaultStepIntervalMs * time.Millisecond
	}

	var scheduler *utils.MarketScheduler
	if e.Config.Simulation.MarketHoursOnly {
		scheduler = utils.NewMarketScheduler(sim.Symbols(), logger.NewLogger(e.Config.LogLevel, "MarketScheduler"))
	}

	e.Logger.Info("Producer started: %d symbols, step interval %v", len(sim.Symbols()), interval)

	for !e.state.IsCancelled() {
		if scheduler == nil || scheduler.AnyMarketOpen() {
			for _, update := range sim.Step() {
				// Push path first, queue second. The two deliveries of the
				// same update are logically simultaneous; callers must not
				// rely on this ordering.
				listener.OnPrice(update)
				e.state.Enqueue(update)
			}
		} else {
			e.Logger.Debug("All markets closed, skipping step")
		}

		// Scheduling point: no lock held across the inter-step delay
		time.Sleep(interval)
	}

	e.Logger.Info("Producer stopped")
}
