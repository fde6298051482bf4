package config

// LevelConfig represents the complete configuration for puzzle generation
// and simulation.
type LevelConfig struct {
	Metadata   Metadata   `yaml:"metadata"`
	Arena      Arena      `yaml:"arena"`
	Exclusion  Exclusion  `yaml:"exclusion"`
	Generation Generation `yaml:"generation"`
	Ray        Ray        `yaml:"ray"`
	Difficulty Difficulty `yaml:"difficulty,omitempty"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

type Arena struct {
	Width    float64 `yaml:"width"`     // pixels
	Height   float64 `yaml:"height"`    // pixels
	GridSize float64 `yaml:"grid_size"` // lattice spacing in pixels
}

type Exclusion struct {
	TargetSafeRadius float64 `yaml:"target_safe_radius"` // pixels
	WallSafeMargin   float64 `yaml:"wall_safe_margin"`   // pixels
}

type Generation struct {
	TargetSurfaceArea    int   `yaml:"target_surface_area"` // grid units
	MinMirrorCount       int   `yaml:"min_mirror_count"`
	Seed                 int64 `yaml:"seed"`
	MaxConfigAttempts    int   `yaml:"max_config_attempts,omitempty"`
	MaxPlacementAttempts int   `yaml:"max_placement_attempts,omitempty"`
}

type Ray struct {
	Speed          float64 `yaml:"speed"` // pixels per tick
	MaxReflections int     `yaml:"max_reflections"`
	MaxDistance    float64 `yaml:"max_distance"`  // pixels
	TargetRadius   float64 `yaml:"target_radius"` // pixels
}

// Difficulty maps level numbers to target surface areas; intermediate
// levels are interpolated piecewise linearly.
type Difficulty struct {
	Levels []DifficultyPoint `yaml:"levels,omitempty"`
}

type DifficultyPoint struct {
	Level             int `yaml:"level"`
	TargetSurfaceArea int `yaml:"target_surface_area"`
}
