package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jdginn/go-reflector-puzzle/puzzle"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ValidateImmediately bool
}

// LoadFromFile loads a LevelConfig from a YAML file
func LoadFromFile(path string, opts LoadOptions) (*LevelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors: %v", errs)
		}
	}

	return config, nil
}

// SaveToFile saves a LevelConfig to a YAML file
func SaveToFile(config *LevelConfig, path string) error {
	collector, err := NewMetadataCollector()
	if err != nil {
		return fmt.Errorf("creating metadata collector: %w", err)
	}
	collector.PopulateMetadata(config)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Default returns the standard game constants.
func Default() *LevelConfig {
	return &LevelConfig{
		Arena: Arena{
			Width:    800,
			Height:   800,
			GridSize: 20,
		},
		Exclusion: Exclusion{
			TargetSafeRadius: 100,
			WallSafeMargin:   40,
		},
		Generation: Generation{
			TargetSurfaceArea: 84,
			MinMirrorCount:    4,
		},
		Ray: Ray{
			Speed:          5,
			MaxReflections: 40,
			MaxDistance:    50_000,
			TargetRadius:   15,
		},
	}
}

// Geometry converts the configured arena and exclusion zones into the
// immutable per-level geometry the core consumes.
func (c *LevelConfig) Geometry() puzzle.LevelGeometry {
	return puzzle.LevelGeometry{
		Arena:            puzzle.MakeBox(0, 0, c.Arena.Width, c.Arena.Height),
		GridSize:         c.Arena.GridSize,
		TargetSafeRadius: c.Exclusion.TargetSafeRadius,
		WallSafeMargin:   c.Exclusion.WallSafeMargin,
	}
}

// GenerateParams converts the generation section for the given level.
func (c *LevelConfig) GenerateParams(level int) puzzle.GenerateParams {
	target := c.Generation.TargetSurfaceArea
	if len(c.Difficulty.Levels) > 0 {
		target = c.Difficulty.TargetForLevel(level)
	}
	return puzzle.GenerateParams{
		TargetSurfaceArea:    target,
		MinMirrorCount:       c.Generation.MinMirrorCount,
		Seed:                 c.Generation.Seed + int64(level),
		MaxConfigAttempts:    c.Generation.MaxConfigAttempts,
		MaxPlacementAttempts: c.Generation.MaxPlacementAttempts,
	}
}

// TraceParams converts the ray section.
func (c *LevelConfig) TraceParams() puzzle.TraceParams {
	return puzzle.TraceParams{
		MaxReflections: c.Ray.MaxReflections,
		MaxDistance:    c.Ray.MaxDistance,
		TargetRadius:   c.Ray.TargetRadius,
	}
}
