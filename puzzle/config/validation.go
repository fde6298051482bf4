package config

import (
	"fmt"
	"sort"
	"strings"
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors formats validation errors grouped by category
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	categories := map[string][]ValidationError{}
	var order []string
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		if _, ok := categories[category]; !ok {
			order = append(order, category)
		}
		categories[category] = append(categories[category], err)
	}
	sort.Strings(order)

	for _, category := range order {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *LevelConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Arena.Validate()...)
	errors = append(errors, c.Exclusion.Validate(&c.Arena)...)
	errors = append(errors, c.Generation.Validate()...)
	errors = append(errors, c.Ray.Validate()...)
	errors = append(errors, c.Difficulty.Validate()...)
	return errors
}

func (a *Arena) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("arena.width", a.Width)...)
	errors = append(errors, validatePositive("arena.height", a.Height)...)
	errors = append(errors, validatePositive("arena.grid_size", a.GridSize)...)

	if a.GridSize > 0 {
		if remainder := mod(a.Width, a.GridSize); remainder != 0 {
			errors = append(errors, ValidationError{
				Field:   "arena.width",
				Message: "must be a whole number of grid units",
			})
		}
		if remainder := mod(a.Height, a.GridSize); remainder != 0 {
			errors = append(errors, ValidationError{
				Field:   "arena.height",
				Message: "must be a whole number of grid units",
			})
		}
	}

	return errors
}

func mod(a, b float64) float64 {
	n := a / b
	return a - float64(int(n))*b
}

func (e *Exclusion) Validate(arena *Arena) []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("exclusion.target_safe_radius", e.TargetSafeRadius)...)
	errors = append(errors, validateNonNegative("exclusion.wall_safe_margin", e.WallSafeMargin)...)

	if arena.Width > 0 && e.TargetSafeRadius*2 >= arena.Width {
		errors = append(errors, ValidationError{
			Field:   "exclusion.target_safe_radius",
			Message: "exclusion disk swallows the whole arena",
		})
	}

	return errors
}

func (g *Generation) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("generation.target_surface_area", float64(g.TargetSurfaceArea))...)
	errors = append(errors, validatePositive("generation.min_mirror_count", float64(g.MinMirrorCount))...)
	errors = append(errors, validateNonNegative("generation.max_config_attempts", float64(g.MaxConfigAttempts))...)
	errors = append(errors, validateNonNegative("generation.max_placement_attempts", float64(g.MaxPlacementAttempts))...)

	return errors
}

func (r *Ray) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("ray.speed", r.Speed)...)
	errors = append(errors, validatePositive("ray.max_reflections", float64(r.MaxReflections))...)
	errors = append(errors, validatePositive("ray.max_distance", r.MaxDistance)...)
	errors = append(errors, validatePositive("ray.target_radius", r.TargetRadius)...)

	return errors
}

func (d *Difficulty) Validate() []ValidationError {
	var errors []ValidationError

	for i, p := range d.Levels {
		if p.Level < 1 {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("difficulty.levels.%d.level", i),
				Message: "levels start at 1",
			})
		}
		errors = append(errors, validatePositive(
			fmt.Sprintf("difficulty.levels.%d.target_surface_area", i),
			float64(p.TargetSurfaceArea))...)
		if i > 0 && p.Level <= d.Levels[i-1].Level {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("difficulty.levels.%d.level", i),
				Message: "levels must be strictly increasing",
			})
		}
	}

	return errors
}
