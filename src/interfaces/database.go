package interfaces

import "ticker-engine/src/models"

// -----------------------------------------------------------------------------
// IDatabase defines the contract for archiving drained price updates.
// -----------------------------------------------------------------------------

type IDatabase interface {

	// -----------------------------------------------------------------------------

	// Initialize sets up the database schema and tables.
	Initialize() error

	// -----------------------------------------------------------------------------

	// SavePriceUpdatesBulk inserts a batch of drained price updates.
	SavePriceUpdatesBulk(updates []models.MPriceUpdate) error

	// -----------------------------------------------------------------------------

	// CleanupOldData removes updates older than the retention policy.
	CleanupOldData() error

	// -----------------------------------------------------------------------------

	// Close the database connection
	Close() error
}
