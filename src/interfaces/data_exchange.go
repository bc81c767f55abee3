package interfaces

// -----------------------------------------------------------------------------
// IDataExchanger defines the interface for sharing data with external systems
// (Server/Push).
// -----------------------------------------------------------------------------

type IDataExchanger interface {

	// -----------------------------------------------------------------------------
	// Broadcast pushes data to connected subscribers and updates server state.
	Broadcast(payload interface{})

	// -----------------------------------------------------------------------------
	// Start the server
	Start() error

	// -----------------------------------------------------------------------------
	// Stop the server gracefully
	Stop() error
}
