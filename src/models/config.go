package models

// MConfig Structure
type MConfig struct {
	Name       string            `yaml:"name"`
	Host       string            `yaml:"host"`
	Port       int               `yaml:"port"`
	LogLevel   string            `yaml:"log_level"`
	Storage    MStorageConfig    `yaml:"storage"`
	Simulation MSimulationConfig `yaml:"simulation"`
	History    MHistoryConfig    `yaml:"history"`
	Drain      MDrainConfig      `yaml:"drain"`
}

type MStorageConfig struct {
	DBType             string `yaml:"db_type"`
	DBPath             string `yaml:"db_path"`
	DBConnectionString string `yaml:"db_connection_string"`
	RetentionDays      int    `yaml:"retention_days"`
}

type MSimulationConfig struct {
	Symbols         []string `yaml:"symbols"`
	StepIntervalMs  int      `yaml:"step_interval_ms"`
	BasePriceMin    float64  `yaml:"base_price_min"`
	BasePriceMax    float64  `yaml:"base_price_max"`
	MaxDelta        float64  `yaml:"max_delta"`
	PriceFloor      float64  `yaml:"price_floor"`
	Seed            int64    `yaml:"seed"` // 0 = time-seeded
	MarketHoursOnly bool     `yaml:"market_hours_only"`
}

type MHistoryConfig struct {
	MaxPoints int `yaml:"max_points"`
}

type MDrainConfig struct {
	IntervalMs int `yaml:"interval_ms"`
	BatchSize  int `yaml:"batch_size"`
}
