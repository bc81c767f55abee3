package server

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"ticker-engine/src/analysis"
	"ticker-engine/src/engine"
	"ticker-engine/src/logger"
	"ticker-engine/src/models"
	"ticker-engine/src/utils"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// FeedServer exposes the engine over REST and pushes live updates to websocket
// subscribers. It also implements interfaces.IPriceListener: the engine's
// producer hands each update to OnPrice, which forwards it through a bounded
// channel so a slow subscriber can never stall the producer's cadence.
// -----------------------------------------------------------------------------

type FeedServer struct {
	Config  *models.MConfig
	Logger  *logger.Logger
	Engine  *engine.TickerEngine
	History *utils.MemoryManager
	router  *gin.Engine

	// WebSocket clients
	clients    map[*Client]struct{}
	broadcast  chan *models.MLatestData // Strongly typed and Buffered Queue
	register   chan *Client
	unregister chan *Client

	// Local cache
	latestState *models.MLatestData
	stateMutex  sync.RWMutex
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewFeedServer(cfg *models.MConfig, log *logger.Logger, eng *engine.TickerEngine, history *utils.MemoryManager) *FeedServer {
	// Set Gin mode
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &FeedServer{
		Config:  cfg,
		Logger:  log,
		Engine:  eng,
		History: history,
		router:  gin.Default(),
		clients: make(map[*Client]struct{}),
		// Buffered channel so bursts of updates never block the producer
		broadcast:  make(chan *models.MLatestData, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		latestState: &models.MLatestData{
			Type:      "INITIAL",
			RawData:   make(map[string]models.MPriceUpdate),
			Timestamp: 0,
		},
	}

	// Add CORS Middleware
	s.router.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *FeedServer) setupRoutes() {
	// REST API endpoints
	s.router.GET("/api/health", s.getHealth)
	s.router.GET("/api/config", s.getConfig)
	s.router.GET("/api/updates", s.drainUpdates)
	s.router.GET("/api/history/:symbol", s.getHistory)
	s.router.GET("/api/stats/:symbol", s.getStats)

	// Engine control
	s.router.POST("/api/start", s.startTracking)
	s.router.POST("/api/cancel", s.cancelTracking)

	// WebSocket endpoint
	s.router.GET("/ws", s.handleWebSocket)
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *FeedServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)

	go s.handleWebsockets()

	return s.router.Run(addr)
}

// -----------------------------------------------------------------------------

// Stop shuts down the hub loop, which disconnects every websocket client on
// its way out. Callers must cancel the engine and wait for the producer to
// exit first: a producer still pushing into a closed broadcast channel panics.
func (s *FeedServer) Stop() error {
	close(s.broadcast)
	return nil
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

func (s *FeedServer) getHealth(c *gin.Context) {
	s.stateMutex.RLock()
	connections := len(s.clients)
	timestamp := s.latestState.Timestamp
	s.stateMutex.RUnlock()

	c.JSON(200, gin.H{
		"status":        "ok",
		"running":       s.Engine.IsRunning(),
		"queued":        s.Engine.QueueLen(),
		"connections":   connections,
		"latest_update": timestamp,
	})
}

// -----------------------------------------------------------------------------

func (s *FeedServer) getConfig(c *gin.Context) {
	c.JSON(200, gin.H{
		"symbols":          s.Config.Simulation.Symbols,
		"step_interval_ms": s.Config.Simulation.StepIntervalMs,
	})
}

// -----------------------------------------------------------------------------

// drainUpdates is the pull-based consumer path: it removes pending updates
// from the engine queue, FIFO, up to max. Note that the archiver loop drains
// the same queue; each update is delivered to exactly one drainer.
func (s *FeedServer) drainUpdates(c *gin.Context) {
	max, err := strconv.Atoi(c.DefaultQuery("max", "100"))
	if err != nil || max < 0 {
		c.JSON(400, gin.H{"error": "max must be a non-negative integer"})
		return
	}

	updates := s.Engine.DrainUpdates(max)
	c.JSON(200, gin.H{
		"updates": updates,
		"count":   len(updates),
	})
}

// -----------------------------------------------------------------------------

func (s *FeedServer) getHistory(c *gin.Context) {
	symbol := c.Param("symbol")
	n, err := strconv.Atoi(c.DefaultQuery("n", "0"))
	if err != nil {
		c.JSON(400, gin.H{"error": "n must be an integer"})
		return
	}

	if !s.History.HasSymbol(symbol) {
		c.JSON(404, gin.H{"error": fmt.Sprintf("no history for symbol %s", symbol)})
		return
	}

	history := s.History.GetHistory(symbol, n)
	c.JSON(200, gin.H{
		"symbol":  symbol,
		"count":   len(history),
		"history": history,
	})
}

// -----------------------------------------------------------------------------

func (s *FeedServer) getStats(c *gin.Context) {
	symbol := c.Param("symbol")

	if !s.History.HasSymbol(symbol) {
		c.JSON(404, gin.H{"error": fmt.Sprintf("no history for symbol %s", symbol)})
		return
	}

	summary := analysis.SummarizePrices(symbol, s.History.GetPrices(symbol))
	c.JSON(200, summary)
}

// -----------------------------------------------------------------------------

type startRequest struct {
	Symbols []string `json:"symbols"`
}

// startTracking begins a producer run with the server as listener. A redundant
// start and an empty symbol list are no-ops by engine contract, so the handler
// reports the resulting state rather than an error.
func (s *FeedServer) startTracking(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request body"})
		return
	}

	symbols := req.Symbols
	if len(symbols) == 0 {
		symbols = s.Config.Simulation.Symbols
	}

	s.Engine.StartTracking(symbols, s)
	c.JSON(200, gin.H{
		"running": s.Engine.IsRunning(),
		"symbols": symbols,
	})
}

// -----------------------------------------------------------------------------

func (s *FeedServer) cancelTracking(c *gin.Context) {
	s.Engine.Cancel()
	// Stopping is asynchronous; running may still read true briefly
	c.JSON(200, gin.H{
		"cancelled": true,
		"running":   s.Engine.IsRunning(),
	})
}
