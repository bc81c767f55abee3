package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ticker-engine/src/helpers"
	"ticker-engine/src/logger"
	"ticker-engine/src/models"

	_ "github.com/lib/pq"
)

// -----------------------------------------------------------------------------

type PostgresDB struct {
	Config *models.MConfig
	DB     *sql.DB
	Schema string
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewPostgresDB(cfg *models.MConfig, log *logger.Logger) (*PostgresDB, error) {
	// Schema per deployed binary so several simulators can share one database
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable name: %w", err)
	}
	name := filepath.Base(exe)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	return &PostgresDB{
		Config: cfg,
		Schema: name,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) Initialize() error {
	dsn := d.Config.Storage.DBConnectionString
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		return &helpers.DatabaseError{TickerEngineError: helpers.TickerEngineError{
			Message: "postgres unreachable", Cause: err}}
	}

	d.DB = db

	if _, err := d.DB.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS "%s"`, d.Schema)); err != nil {
		return fmt.Errorf("failed to create schema %s: %w", d.Schema, err)
	}

	return d.createTables()
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) createTables() error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s".price_updates (
			symbol TEXT,
			timestamp_ms BIGINT,
			price DOUBLE PRECISION,
			PRIMARY KEY (symbol, timestamp_ms)
		);
	`, d.Schema)

	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create price_updates: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) SavePriceUpdatesBulk(updates []models.MPriceUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := d.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(fmt.Sprintf(`
		INSERT INTO "%s".price_updates (symbol, timestamp_ms, price)
		VALUES ($1, $2, $3)
		ON CONFLICT (symbol, timestamp_ms) DO NOTHING
	`, d.Schema))
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

func (d *PostgresDB) CleanupOldData() error {
	retentionDays := d.Config.Storage.RetentionDays
	if retentionDays <= 0 {
		return nil
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays).UnixMilli()

	query := fmt.Sprintf(`DELETE FROM "%s".price_updates WHERE timestamp_ms < $1`, d.Schema)
	if _, err := d.DB.Exec(query, cutoff); err != nil {
		d.Logger.Error("Cleanup price_updates error: %v", err)
		return err
	}

	d.Logger.Debug("Cleanup completed (cutoff %d)", cutoff)
	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
