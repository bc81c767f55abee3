package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ticker-engine/src/config"
	"ticker-engine/src/engine"
	"ticker-engine/src/helpers"
	"ticker-engine/src/interfaces"
	"ticker-engine/src/logger"
	"ticker-engine/src/models"
	"ticker-engine/src/server"
	"ticker-engine/src/storage"
	"ticker-engine/src/utils"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "../../config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	config, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(config.LogLevel, config.Name)

	// 1. Setup Storage
	var db interfaces.IDatabase

	switch config.Storage.DBType {
	case "postgres":
		db, err = storage.NewPostgresDB(config.MConfig, appLogger)
	default:
		// Default to SQLite
		db, err = storage.NewAsyncSQLiteDB(config.MConfig, appLogger)
	}

	if err != nil {
		appLogger.Critical("Failed to init db: %v", err)
	}
	if err := helpers.RetryWithBackoff(appLogger, "database initialization", 3, time.Second, db.Initialize); err != nil {
		appLogger.Critical("Failed to migrate db: %v", err)
	}
	defer db.Close()

	// 2. Setup History + Engine + Server
	maxPoints := config.History.MaxPoints
	if maxPoints <= 0 {
		maxPoints = utils.CalculateMaxDataPoints(config.Simulation.StepIntervalMs)
	}
	history := utils.NewMemoryManager(maxPoints, logger.NewLogger(config.LogLevel, "MemoryManager"))

	eng := engine.NewTickerEngine(config.MConfig, logger.NewLogger(config.LogLevel, "TickerEngine"))
	srv := server.NewFeedServer(config.MConfig, logger.NewLogger(config.LogLevel, "FeedServer"), eng, history)

	// The archiver talks to the push side through the exchanger contract only
	var exchange interfaces.IDataExchanger = srv

	// 3. Start Server
	go func() {
		if err := exchange.Start(); err != nil {
			appLogger.Error("Server failed: %v", err)
		}
	}()

	// 4. Start the producer. The server doubles as the push listener; the
	// queue side is consumed by the archiver loop below.
	eng.StartTracking(config.Simulation.Symbols, srv)

	// 5. Archiver loop: drain the engine queue at its own cadence, persist,
	// feed the in-memory history and broadcast the batch.
	drainInterval := time.Duration(config.Drain.IntervalMs) * time.Millisecond
	if drainInterval <= 0 {
		drainInterval = time.Second
	}
	batchSize := config.Drain.BatchSize
	if batchSize <= 0 {
		batchSize = 256
	}

	ticker := time.NewTicker(drainInterval)
	defer ticker.Stop()

	cleanupTicker := time.NewTicker(time.Hour)
	defer cleanupTicker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	appLogger.Info("Starting archiver loop (drain every %v, batch %d)...", drainInterval, batchSize)

	for {
		select {
		case <-ticker.C:
			startDrain := time.Now()

			updates := eng.DrainUpdates(batchSize)
			if len(updates) == 0 {
				continue
			}

			if err := db.SavePriceUpdatesBulk(updates); err != nil {
				appLogger.Error("Failed to archive %d updates: %v", len(updates), err)
			}

			latest := make(map[string]models.MPriceUpdate)
			for _, u := range updates {
				history.AddDataPoint(u)
				latest[u.Symbol] = u
			}

			exchange.Broadcast(&models.MLatestData{
				Type:      "UPDATE",
				RawData:   latest,
				Timestamp: time.Now().UnixMilli(),
				ProcessingMetrics: models.MProcessingMetrics{
					DrainTimeSeconds: time.Since(startDrain).Seconds(),
					UpdatesDrained:   len(updates),
					ValidSymbols:     len(latest),
				},
			})

		case <-cleanupTicker.C:
			if err := db.CleanupOldData(); err != nil {
				appLogger.Error("Cleanup failed: %v", err)
			}

		case <-quit:
			appLogger.Info("Shutting down...")
			eng.Cancel()

			// Cancellation is cooperative; give the producer a bounded window
			// to observe the flag, then archive whatever is left.
			deadline := time.Now().Add(3 * time.Second)
			for eng.IsRunning() && time.Now().Before(deadline) {
				time.Sleep(50 * time.Millisecond)
			}

			if remaining := eng.DrainUpdates(eng.QueueLen()); len(remaining) > 0 {
				if err := db.SavePriceUpdatesBulk(remaining); err != nil {
					appLogger.Error("Failed to archive final %d updates: %v", len(remaining), err)
				}
			}

			// Safe only once the producer has exited: it pushes into the
			// exchanger, and Stop closes that path
			if !eng.IsRunning() {
				if err := exchange.Stop(); err != nil {
					appLogger.Error("Exchanger shutdown failed: %v", err)
				}
			}
			return
		}
	}
}
