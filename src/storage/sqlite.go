package storage

import (
	"database/sql"
	"time"

	"ticker-engine/src/helpers"
	"ticker-engine/src/logger"
	"ticker-engine/src/models"

	_ "modernc.org/sqlite"
)

// -----------------------------------------------------------------------------

type AsyncSQLiteDB struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewAsyncSQLiteDB(cfg *models.MConfig, log *logger.Logger) (*AsyncSQLiteDB, error) {
	return &AsyncSQLiteDB{
		Config: cfg,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) Initialize() error {
	dsn := d.Config.Storage.DBPath

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		return &helpers.DatabaseError{TickerEngineError: helpers.TickerEngineError{
			Message: "sqlite unreachable", Cause: err}}
	}

	d.DB = db

	// PRAGMA optimizations
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		d.Logger.Warning("Failed to set WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL;"); err != nil {
		d.Logger.Warning("Failed to set synchronous mode: %v", err)
	}

	return d.createTables()
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) createTables() error {
	// SQLite types: INTEGER for int64, REAL for float64, TEXT for string.
	// A symbol can emit at most one update per step, so (symbol, timestamp_ms)
	// is effectively unique; INSERT OR IGNORE absorbs re-archived batches.
	query := `
		CREATE TABLE IF NOT EXISTS price_updates (
			symbol TEXT,
			timestamp_ms INTEGER,
			price REAL,
			PRIMARY KEY (symbol, timestamp_ms)
		);
	`
	_, err := d.DB.Exec(query)
	return err
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) SavePriceUpdatesBulk(updates []models.MPriceUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := d.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO price_updates (symbol, timestamp_ms, price)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, u := range updates {
		if _, err := stmt.Exec(u.Symbol, u.TimestampMs, u.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) CleanupOldData() error {
	retentionDays := d.Config.Storage.RetentionDays
	if retentionDays <= 0 {
		return nil
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays).UnixMilli()

	if _, err := d.DB.Exec("DELETE FROM price_updates WHERE timestamp_ms < ?", cutoff); err != nil {
		d.Logger.Error("Cleanup price_updates error: %v", err)
		return err
	}

	d.Logger.Debug("Cleanup completed (cutoff %d)", cutoff)
	return nil
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
