package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	// DefaultTickRate is the number of simulation steps per second.
	DefaultTickRate = 60

	// maxDt caps a single step so a stalled terminal does not teleport enemies.
	maxDt = 0.1
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible enemy placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// TickRate is the number of simulation steps per second.
	TickRate int

	// EnemyCount overrides the number of enemies spawned. 0 keeps the tuning value.
	EnemyCount int

	// LogFile receives the log output while the terminal UI owns stdout.
	// Empty discards logs.
	LogFile string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{TickRate: DefaultTickRate}
}

// ConfigFromEnv reads SNOWHUNT_SEED, SNOWHUNT_TICK_RATE, SNOWHUNT_ENEMIES and
// LOG_FILE on top of the defaults.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	var errs []error

	if v, ok := os.LookupEnv("SNOWHUNT_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("SNOWHUNT_SEED: %w", err))
		}
		cfg.Seed = seed
	}
	if v, ok := os.LookupEnv("SNOWHUNT_TICK_RATE"); ok && v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("SNOWHUNT_TICK_RATE: %w", err))
		} else {
			cfg.TickRate = rate
		}
	}
	if v, ok := os.LookupEnv("SNOWHUNT_ENEMIES"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("SNOWHUNT_ENEMIES: %w", err))
		}
		cfg.EnemyCount = n
	}
	cfg.LogFile = os.Getenv("LOG_FILE")

	if err := errors.Join(errs...); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate reports settings the loop cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.TickRate <= 0 || c.TickRate > 240 {
		errs = append(errs, fmt.Errorf("tick rate must be in 1..240, got %d", c.TickRate))
	}
	if c.EnemyCount < 0 {
		errs = append(errs, fmt.Errorf("enemy count must not be negative, got %d", c.EnemyCount))
	}
	return errors.Join(errs...)
}
