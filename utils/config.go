package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Width             int           `json:"width"`  // 0 uses the terminal width
	Height            int           `json:"height"` // 0 uses the terminal height
	FrameRate         time.Duration `json:"frame_rate"`
	LoadFactor        int           `json:"load_factor"`
	NudgingLoadFactor int           `json:"nudging_load_factor"`
	UseParallel       bool          `json:"use_parallel"`
	Workers           int           `json:"workers"`
	UseMemoryPool     bool          `json:"use_memory_pool"`
	MaxGenerations    int           `json:"max_generations"`
	Seed              int64         `json:"seed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameRate:         50 * time.Millisecond,
		LoadFactor:        9,  // Smaller means more crowded
		NudgingLoadFactor: 27, // Smaller means a bigger nudge
		UseParallel:       false,
		UseMemoryPool:     true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the simulation can't run with
func (c Config) Validate() error {
	if c.LoadFactor <= 0 {
		return errors.Errorf("[Validate] load_factor must be positive, got %d", c.LoadFactor)
	}
	if c.NudgingLoadFactor <= 0 {
		return errors.Errorf("[Validate] nudging_load_factor must be positive, got %d", c.NudgingLoadFactor)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame_rate must not be negative, got %v", c.FrameRate)
	}
	if c.Width < 0 || c.Height < 0 {
		return errors.Errorf("[Validate] width and height must not be negative, got %dx%d", c.Width, c.Height)
	}
	return nil
}
