package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ticker-engine/src/helpers"
	"ticker-engine/src/utils"
)

// -----------------------------------------------------------------------------

const validYAML = `
name: ticker-engine
host: 127.0.0.1
port: 8090
log_level: INFO
storage:
  db_type: sqlite
  db_path: ./ticker.db
  retention_days: 7
simulation:
  symbols:
    - AAPL
    - GOOG
  step_interval_ms: 500
  base_price_min: 90.0
  base_price_max: 110.0
  max_delta: 1.0
  price_floor: 0.01
history:
  max_points: 2000
drain:
  interval_ms: 1000
  batch_size: 256
`

// -----------------------------------------------------------------------------

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	return path
}

// -----------------------------------------------------------------------------

func TestNewConfigLoadsValidYAML(t *testing.T) {
	cfg, err := NewConfig(writeTempConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Name != "ticker-engine" {
		t.Errorf("Expected name ticker-engine, got %s", cfg.Name)
	}
	if cfg.Port != 8090 {
		t.Errorf("Expected port 8090, got %d", cfg.Port)
	}
	if len(cfg.Simulation.Symbols) != 2 || cfg.Simulation.Symbols[0] != "AAPL" {
		t.Errorf("Unexpected symbols: %v", cfg.Simulation.Symbols)
	}
	if cfg.Simulation.StepIntervalMs != 500 {
		t.Errorf("Expected step interval 500, got %d", cfg.Simulation.StepIntervalMs)
	}
	if cfg.Simulation.PriceFloor != 0.01 {
		t.Errorf("Expected price floor 0.01, got %f", cfg.Simulation.PriceFloor)
	}
	if cfg.Storage.DBType != "sqlite" {
		t.Errorf("Expected sqlite storage, got %s", cfg.Storage.DBType)
	}
	if cfg.Drain.BatchSize != 256 {
		t.Errorf("Expected drain batch 256, got %d", cfg.Drain.BatchSize)
	}
}

// -----------------------------------------------------------------------------

func TestNewConfigMissingFile(t *testing.T) {
	if _, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected error for missing file")
	}
}

// -----------------------------------------------------------------------------

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{
			"privileged port",
			`
name: ticker-engine
host: 127.0.0.1
port: 80
storage: {db_type: sqlite, db_path: ./t.db}
simulation: {symbols: [AAPL]}
`,
		},
		{
			"no symbols",
			`
name: ticker-engine
host: 127.0.0.1
port: 8090
storage: {db_type: sqlite, db_path: ./t.db}
simulation: {symbols: []}
`,
		},
		{
			"missing db path for sqlite",
			`
name: ticker-engine
host: 127.0.0.1
port: 8090
storage: {db_type: sqlite}
simulation: {symbols: [AAPL]}
`,
		},
		{
			"inverted base price range",
			`
name: ticker-engine
host: 127.0.0.1
port: 8090
storage: {db_type: sqlite, db_path: ./t.db}
simulation: {symbols: [AAPL], base_price_min: 110.0, base_price_max: 90.0}
`,
		},
		{
			"negative step interval",
			`
name: ticker-engine
host: 127.0.0.1
port: 8090
storage: {db_type: sqlite, db_path: ./t.db}
simulation: {symbols: [AAPL], step_interval_ms: -5}
`,
		},
	}

	for _, tc := range cases {
		if _, err := NewConfig(writeTempConfig(t, tc.yaml)); err == nil {
			t.Errorf("Expected validation error for %s", tc.name)
		}
	}
}

// -----------------------------------------------------------------------------

func TestLoadErrorsAreTyped(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var cerr *helpers.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Errorf("Expected ConfigurationError for a missing file, got %T", err)
	}

	_, err = NewConfig(writeTempConfig(t, `
name: ticker-engine
host: 127.0.0.1
port: 80
storage: {db_type: sqlite, db_path: ./t.db}
simulation: {symbols: [AAPL]}
`))
	var verr *helpers.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("Expected ValidationError for a bad port, got %T", err)
	}
}

// -----------------------------------------------------------------------------

func TestRetentionDefaultsWhenUnset(t *testing.T) {
	cfg, err := NewConfig(writeTempConfig(t, `
name: ticker-engine
host: 127.0.0.1
port: 8090
storage: {db_type: sqlite, db_path: ./t.db}
simulation: {symbols: [AAPL]}
`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Storage.RetentionDays != utils.DefaultRetentionDays {
		t.Errorf("Expected default retention %d, got %d", utils.DefaultRetentionDays, cfg.Storage.RetentionDays)
	}
}

// -----------------------------------------------------------------------------

func TestSaveRoundTrip(t *testing.T) {
	cfg, err := NewConfig(writeTempConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	out := filepath.Join(t.TempDir(), "saved.yaml")
	cfg.Simulation.StepIntervalMs = 250
	if err := cfg.Save(out); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := NewConfig(out)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if reloaded.Simulation.StepIntervalMs != 250 {
		t.Errorf("Expected persisted step interval 250, got %d", reloaded.Simulation.StepIntervalMs)
	}
}
