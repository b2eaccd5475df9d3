package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	RendererANSI   = "ansi"
	RendererScreen = "screen"
)

// Config holds the configuration for the simulation
type Config struct {
	Width             int           `json:"width"`
	Height            int           `json:"height"`
	FrameRate         time.Duration `json:"frame_rate"`
	MaxGenerations    int           `json:"max_generations"`
	Seed              string        `json:"seed"`
	RandomSeed        int64         `json:"random_seed"`
	RandomDensity     float64       `json:"random_density"`
	Renderer          string        `json:"renderer"`
	ParallelWorkers   int           `json:"parallel_workers"`
	WarmupGenerations int           `json:"warmup_generations"`
}

// DefaultConfig returns the reference configuration: a 50 wide, 100 tall grid
// seeded with the modulo pattern and redrawn every 100ms
func DefaultConfig() Config {
	return Config{
		Width:             50,
		Height:            100,
		FrameRate:         100 * time.Millisecond,
		MaxGenerations:    0, // Run until interrupted
		Seed:              "modulo",
		RandomDensity:     0.15,
		Renderer:          RendererANSI,
		ParallelWorkers:   1,
		WarmupGenerations: 1,
	}
}

// Validate rejects configurations the driver cannot run
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.Errorf("[Validate] grid dimensions must be non-negative, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Errorf("[Validate] frame_rate must be non-negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max_generations must be non-negative, got %d", c.MaxGenerations)
	case c.WarmupGenerations < 0:
		return errors.Errorf("[Validate] warmup_generations must be non-negative, got %d", c.WarmupGenerations)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random_density must be within [0,1], got %v", c.RandomDensity)
	}
	switch c.Renderer {
	case RendererANSI, RendererScreen:
	default:
		return errors.Errorf("[Validate] unknown renderer: %q", c.Renderer)
	}
	return nil
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
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}
