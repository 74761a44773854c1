// Package scoring turns a habit difficulty and a streak length into a point
// value. The formula is multiplicative with a capped linear streak bonus:
//
//	points = round(base × difficultyMultiplier × (1 + streakBonus))
//	streakBonus = min(maxStreakBonus, streakStep × max(0, streak−1))
//
// Rounding is half-away-from-zero (math.Round). All constants live in the
// Config so an install can tune them; tests pin the reference values.
package scoring

import (
	"math"

	"habitual/internal/constants"
	"habitual/internal/models"
)

// Config carries the scoring constants. Zero values are not usable; start
// from DefaultConfig and override via config.toml.
type Config struct {
	BasePoints       float64 `toml:"base_points"`
	EasyMultiplier   float64 `toml:"easy_multiplier"`
	MediumMultiplier float64 `toml:"medium_multiplier"`
	HardMultiplier   float64 `toml:"hard_multiplier"`
	StreakStep       float64 `toml:"streak_step"`
	MaxStreakBonus   float64 `toml:"max_streak_bonus"`
}

// DefaultConfig returns the reference scoring constants
func DefaultConfig() Config {
	return Config{
		BasePoints:       constants.BasePoints,
		EasyMultiplier:   constants.EasyMultiplier,
		MediumMultiplier: constants.MediumMultiplier,
		HardMultiplier:   constants.HardMultiplier,
		StreakStep:       constants.StreakStepBonus,
		MaxStreakBonus:   constants.MaxStreakBonus,
	}
}

// Multiplier maps a difficulty class to its configured multiplier. Unknown
// values fall back to the easy multiplier; difficulty is validated at the
// habit-creation boundary.
func (c Config) Multiplier(d models.Difficulty) float64 {
	switch d {
	case models.DifficultyMedium:
		return c.MediumMultiplier
	case models.DifficultyHard:
		return c.HardMultiplier
	default:
		return c.EasyMultiplier
	}
}

// Points computes the point value of a single completion. It is
// monotonically non-decreasing in streakLength and capped at
// base × multiplier × (1 + MaxStreakBonus).
func (c Config) Points(d models.Difficulty, streakLength int) int {
	bonus := c.StreakStep * float64(max(0, streakLength-1))
	if bonus > c.MaxStreakBonus {
		bonus = c.MaxStreakBonus
	}
	return int(math.Round(c.BasePoints * c.Multiplier(d) * (1 + bonus)))
}
