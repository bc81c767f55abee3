package server

import (
	"encoding/json"
	"net/http"

	"ticker-engine/src/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Hub Pattern Implementation
// -----------------------------------------------------------------------------

// handleWebsockets is the main Hub loop
func (s *FeedServer) handleWebsockets() {
	for {
		select {
		case client := <-s.register:
			s.clients[client] = struct{}{}
			// Send current state on connect
			s.stateMutex.RLock()
			if s.latestState != nil {
				client.send <- s.latestState
			}
			s.stateMutex.RUnlock()

		case client := <-s.unregister:
			if _, ok := s.clients[client]; ok {
				delete(s.clients, client)
				close(client.send)
			}

		case message, ok := <-s.broadcast:
			if !ok {
				// Stop closed the channel: drop every client and exit
				for client := range s.clients {
					delete(s.clients, client)
					close(client.send)
				}
				return
			}

			// Merge into state, then broadcast
			s.mergeState(message)

			for client := range s.clients {
				select {
				case client.send <- message:
					// Message sent successfully
				default:
					// Client too slow, disconnect to prevent Hub blocking
					delete(s.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// -----------------------------------------------------------------------------

// mergeState folds an update payload into the latest-per-symbol snapshot that
// new subscribers receive on connect.
func (s *FeedServer) mergeState(message *models.MLatestData) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	if s.latestState.RawData == nil {
		s.latestState.RawData = make(map[string]models.MPriceUpdate)
	}
	for sym, update := range message.RawData {
		s.latestState.RawData[sym] = update
	}

	s.latestState.Timestamp = message.Timestamp
	s.latestState.ProcessingMetrics = message.ProcessingMetrics
	s.latestState.Type = "UPDATE"
}

// -----------------------------------------------------------------------------
// Listener and Data Exchange Implementation
// -----------------------------------------------------------------------------

// OnPrice implements interfaces.IPriceListener. Runs on the engine's producer
// goroutine, so it must never block: the update is handed to the hub through
// the bounded broadcast channel and dropped if the hub is saturated. Dropped
// pushes are recoverable through the drain path.
func (s *FeedServer) OnPrice(update models.MPriceUpdate) {
	payload := &models.MLatestData{
		Type:      "UPDATE",
		RawData:   map[string]models.MPriceUpdate{update.Symbol: update},
		Timestamp: update.TimestampMs,
	}

	select {
	case s.broadcast <- payload:
	default:
		s.Logger.Debug("Broadcast queue full, dropping push for %s", update.Symbol)
	}
}

// -----------------------------------------------------------------------------

// Broadcast implements interfaces.IDataExchanger for archiver batch payloads.
func (s *FeedServer) Broadcast(message interface{}) {
	state, ok := message.(*models.MLatestData)
	if !ok {
		s.Logger.Info("Broadcast expected *models.MLatestData, got %T", message)
		return
	}

	select {
	case s.broadcast <- state:
	default:
		s.Logger.Debug("Broadcast queue full, dropping batch payload")
	}
}

// -----------------------------------------------------------------------------
// WebSocket Handlers
// -----------------------------------------------------------------------------

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// -----------------------------------------------------------------------------

func (s *FeedServer) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Info("Failed to upgrade websocket: %v", err)
		return
	}

	client := &Client{
		hub:  s,
		conn: conn,
		// Buffered channel to prevent blocking the Hub loop
		send: make(chan interface{}, 256),
	}

	s.register <- client

	// Start goroutines for reading/writing
	go client.writePump()
	go client.readPump()
}

// -----------------------------------------------------------------------------
// Client Message Handling
// -----------------------------------------------------------------------------

func (s *FeedServer) HandleClientMessage(client *Client, message []byte) {
	var cmd models.MSubscribeCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		s.Logger.Info("Failed to parse client command: %v, disconnecting client", err)
		client.conn.Close()
		return
	}

	if cmd.Command != "subscribe" {
		return
	}

	s.stateMutex.RLock()
	response := s.snapshotResponse(cmd.Symbols)
	s.stateMutex.RUnlock()

	// Use select to avoid blocking if client's send buffer is full
	select {
	case client.send <- response:
	default:
	}
}

// -----------------------------------------------------------------------------

// snapshotResponse filters the latest-per-symbol state down to the requested
// symbols (all symbols when the filter is empty). Caller holds stateMutex.
func (s *FeedServer) snapshotResponse(symbols []string) *models.MLatestData {
	filtered := make(map[string]models.MPriceUpdate)
	if len(symbols) == 0 {
		for sym, update := range s.latestState.RawData {
			filtered[sym] = update
		}
	} else {
		for _, sym := range symbols {
			if update, exists := s.latestState.RawData[sym]; exists {
				filtered[sym] = update
			}
		}
	}

	return &models.MLatestData{
		Type:              "INITIAL",
		RawData:           filtered,
		Timestamp:         s.latestState.Timestamp,
		ProcessingMetrics: s.latestState.ProcessingMetrics,
	}
}
