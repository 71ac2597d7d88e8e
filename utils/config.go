package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate when a setting is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a simulation session
type Config struct {
	Width               int    `json:"width"`
	Height              int    `json:"height"`
	PatternFile         string `json:"pattern_file"`
	OffsetX             int    `json:"offset_x"`
	OffsetY             int    `json:"offset_y"`
	CenterPattern       bool   `json:"center_pattern"`
	MaxGenerations      int    `json:"max_generations"`
	UseParallel         bool   `json:"use_parallel"`
	UseMemoryPool       bool   `json:"use_memory_pool"`
	UseBoundedGrid      bool   `json:"use_bounded_grid"`
	StagnationThreshold int    `json:"stagnation_threshold"`
	HistorySize         int    `json:"history_size"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               64,
		Height:              64,
		MaxGenerations:      1000,
		UseParallel:         true,
		UseMemoryPool:       true,
		UseBoundedGrid:      true, // Enable active region optimization
		StagnationThreshold: 5,
		HistorySize:         5,
	}
}

// LoadConfig loads configuration from JSON file, on top of DefaultConfig
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
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the config describes a usable session
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid size %dx%d must be positive", c.Width, c.Height)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations %d is negative", c.MaxGenerations)
	case c.StagnationThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "stagnation_threshold %d is negative", c.StagnationThreshold)
	case c.HistorySize < 0:
		return errors.Wrapf(ErrInvalidConfig, "history_size %d is negative", c.HistorySize)
	}
	return nil
}
