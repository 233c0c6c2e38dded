package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds every knob of a risk-normalization run. The first seven
// fields describe the trader's risk tolerance and the Monte Carlo sampling;
// the rest bound the solver and control execution.
type Config struct {
	// Number of periods in each synthetic equity curve (the forecast horizon).
	ForecastLength int `json:"forecast_length" yaml:"forecast_length"`

	// Starting value of the trading account.
	InitialCapital float64 `json:"initial_capital" yaml:"initial_capital"`

	// Percentage from the high end of the max-drawdown distribution at which
	// tail risk is measured. 5 means the 95th percentile of drawdowns.
	TailPercentile float64 `json:"tail_percentile" yaml:"tail_percentile"`

	// Largest drawdown the trader will accept, as a proportion of the highest
	// equity marked to market. 0.10 is a 10% drawdown.
	DrawdownTolerance float64 `json:"drawdown_tolerance" yaml:"drawdown_tolerance"`

	// Equity curves simulated per distribution estimate.
	NumberOfCurves int `json:"number_of_curves" yaml:"number_of_curves"`

	// Convergence epsilon for |tail risk - tolerance|.
	DesiredAccuracy float64 `json:"desired_accuracy" yaml:"desired_accuracy"`

	// Trading periods per year, used to annualize terminal wealth.
	PeriodsPerYear int `json:"periods_per_year" yaml:"periods_per_year"`

	// Solver iteration cap. Exceeding it is a reported failure, never a hang.
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`

	// Upper sanity clamp on the candidate fraction during solving.
	MaxFraction float64 `json:"max_fraction" yaml:"max_fraction"`

	// Concurrent curve simulations per estimate. 0 means NumCPU.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`

	// Master random seed. 0 means derive one from the clock; any other value
	// makes the whole run reproducible at any worker count.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err = yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file (format chosen by extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid. Every violation here is an
// input error reported before any simulation runs.
func (c *Config) Validate() error {
	if c.ForecastLength <= 0 {
		return fmt.Errorf("forecast_length must be positive")
	}
	if c.InitialCapital <= 0 {
		return fmt.Errorf("initial_capital must be positive")
	}
	if c.TailPercentile < 0 || c.TailPercentile > 100 {
		return fmt.Errorf("tail_percentile must be between 0 and 100")
	}
	if c.DrawdownTolerance < 0 || c.DrawdownTolerance > 1 {
		return fmt.Errorf("drawdown_tolerance must be between 0 and 1")
	}
	if c.NumberOfCurves <= 0 {
		return fmt.Errorf("number_of_curves must be positive")
	}
	if c.DesiredAccuracy <= 0 {
		return fmt.Errorf("desired_accuracy must be positive")
	}
	if c.PeriodsPerYear <= 0 {
		return fmt.Errorf("periods_per_year must be positive")
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive")
	}
	if c.MaxFraction <= 0 {
		return fmt.Errorf("max_fraction must be positive")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	return nil
}

// Default returns a configuration with the canonical defaults: a 500-period
// forecast on a $100k account, 10% drawdown tolerance measured at the 95th
// percentile over 1000 curves, annualized at 252 periods per year.
func Default() *Config {
	return &Config{
		ForecastLength:    500,
		InitialCapital:    100000,
		TailPercentile:    5,
		DrawdownTolerance: 0.10,
		NumberOfCurves:    1000,
		DesiredAccuracy:   0.003,
		PeriodsPerYear:    252,
		MaxIterations:     50,
		MaxFraction:       100,
	}
}
