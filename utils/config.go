package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	// ModeSequence stops the run on extinction or a repeating cycle
	ModeSequence = "sequence"
	// ModeUnbounded keeps stepping until interrupted or MaxGenerations is hit
	ModeUnbounded = "unbounded"
)

// Config holds the configuration for the game
type Config struct {
	FrameRate      time.Duration `json:"frame_rate"`
	Mode           string        `json:"mode"`
	AutoRestart    bool          `json:"auto_restart"`
	MaxRestarts    int           `json:"max_restarts"`
	MaxGenerations int           `json:"max_generations"`
	RandomDensity  float64       `json:"random_density"`
	Seed           int64         `json:"seed"`
	Pattern        string        `json:"pattern"`
	PatternFile    string        `json:"pattern_file"`
	Render         bool          `json:"render"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameRate:      150 * time.Millisecond,
		Mode:           ModeSequence,
		AutoRestart:    true,
		MaxRestarts:    3,
		MaxGenerations: 1000,
		RandomDensity:  0.15,
		Seed:           time.Now().UnixNano(),
		Render:         true,
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
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the configuration values are usable
func (c Config) Validate() error {
	switch c.Mode {
	case ModeSequence, ModeUnbounded:
	default:
		return errors.Errorf("[Validate] unknown mode: %q", c.Mode)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] negative frame_rate: %v", c.FrameRate)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	}
	if c.MaxGenerations < 0 || c.MaxRestarts < 0 {
		return errors.New("[Validate] max_generations and max_restarts must not be negative")
	}
	return nil
}
