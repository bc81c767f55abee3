package helpers

import (
	"fmt"
	"time"

	"ticker-engine/src/logger"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type TickerEngineError struct {
	Message string
	Cause   error
}

func (e *TickerEngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TickerEngineError) Unwrap() error {
	return e.Cause
}

// Distinct error types for type assertions at the edges. The engine's own
// public surface returns no errors; these cover config, storage and server.
type ConfigurationError struct{ TickerEngineError }
type DatabaseError struct{ TickerEngineError }
type ValidationError struct{ TickerEngineError }

// -----------------------------------------------------------------------------
// Retry Logic
// -----------------------------------------------------------------------------

// RetryWithBackoff attempts the operation up to maxRetries times with
// exponential backoff. Used for storage initialization, where the database
// may not be reachable yet at process start.
func RetryWithBackoff(log *logger.Logger, operation string, maxRetries int, baseDelay time.Duration, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if attempt == maxRetries-1 {
			break
		}

		delay := baseDelay * (1 << attempt)
		log.Warning("Attempt %d/%d failed for %s: %v. Retrying in %v", attempt+1, maxRetries, operation, err, delay)
		time.Sleep(delay)
	}

	return &TickerEngineError{Message: fmt.Sprintf("%s failed after %d attempts", operation, maxRetries), Cause: lastErr}
}
