package config

import (
	"fmt"
	"os"

	"ticker-engine/src/helpers"
	"ticker-engine/src/models"
	"ticker-engine/src/utils"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from YAML file
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, &helpers.ConfigurationError{TickerEngineError: helpers.TickerEngineError{
			Message: fmt.Sprintf("failed to read config file '%s'", configPath), Cause: err}}
	}

	// 2. Unmarshal data into the models struct
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, &helpers.ConfigurationError{TickerEngineError: helpers.TickerEngineError{
			Message: "failed to parse config from YAML", Cause: err}}
	}

	config := &Config{MConfig: &modelConfig}

	// 3. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, &helpers.ValidationError{TickerEngineError: helpers.TickerEngineError{
			Message: "config validation failed", Cause: err}}
	}

	// 4. Fill in defaults that validation treats as "unset"
	if config.Storage.RetentionDays == 0 {
		config.Storage.RetentionDays = utils.DefaultRetentionDays
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}

	// Validate Storage configuration
	if c.Storage.DBType == "" {
		return fmt.Errorf("database type cannot be empty")
	}
	if c.Storage.DBType == "sqlite" && c.Storage.DBPath == "" {
		return fmt.Errorf("database path cannot be empty for sqlite")
	}
	if c.Storage.DBType == "postgres" && c.Storage.DBConnectionString == "" {
		return fmt.Errorf("connection string cannot be empty for postgres")
	}
	if c.Storage.RetentionDays < 0 {
		return fmt.Errorf("retention days cannot be negative")
	}

	// Validate Simulation configuration. Zero values fall back to the engine's
	// documented defaults, so only genuinely inconsistent settings fail here.
	if len(c.Simulation.Symbols) == 0 {
		return fmt.Errorf("at least one symbol must be configured")
	}
	for i, sym := range c.Simulation.Symbols {
		if sym == "" {
			return fmt.Errorf("symbol %d cannot be empty", i)
		}
	}
	if c.Simulation.StepIntervalMs < 0 {
		return fmt.Errorf("step interval cannot be negative")
	}
	if c.Simulation.BasePriceMin < 0 || c.Simulation.BasePriceMax < 0 {
		return fmt.Errorf("base price range cannot be negative")
	}
	if c.Simulation.BasePriceMin > c.Simulation.BasePriceMax {
		return fmt.Errorf("base price min %f exceeds max %f", c.Simulation.BasePriceMin, c.Simulation.BasePriceMax)
	}
	if c.Simulation.PriceFloor < 0 {
		return fmt.Errorf("price floor cannot be negative")
	}

	// Validate Drain configuration
	if c.Drain.IntervalMs < 0 {
		return fmt.Errorf("drain interval cannot be negative")
	}
	if c.Drain.BatchSize < 0 {
		return fmt.Errorf("drain batch size cannot be negative")
	}

	// Validate History configuration
	if c.History.MaxPoints < 0 {
		return fmt.Errorf("history max points cannot be negative")
	}

	return nil
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	// 1. Marshal the struct to YAML
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// 2. Write to file (0644 permissions)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
