package interfaces

import "ticker-engine/src/models"

// -----------------------------------------------------------------------------
// IPriceListener is the push-notification capability handed to the engine.
// -----------------------------------------------------------------------------

type IPriceListener interface {

	// OnPrice is invoked synchronously on the producer goroutine, once per
	// symbol per simulation step. Implementations must not block: a slow
	// listener stalls the producer's cadence for all symbols.
	OnPrice(update models.MPriceUpdate)
}
