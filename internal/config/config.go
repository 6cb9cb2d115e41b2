// Package config provides YAML-based configuration loading for the game
// rules, leaderboard view, and storage paths.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// Config contains all tunable settings.
type Config struct {
	Board       BoardConfig       `yaml:"board"`
	Speed       SpeedConfig       `yaml:"speed"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Storage     StorageConfig     `yaml:"storage"`
}

// BoardConfig defines the playfield geometry in pixel units.
type BoardConfig struct {
	SizePx int `yaml:"size_px"` // Board edge length
	CellPx int `yaml:"cell_px"` // Lattice step; SizePx must be a multiple
}

// SpeedConfig defines the tick interval curve.
type SpeedConfig struct {
	InitialMs int `yaml:"initial_ms"` // Interval at score 0
	StepMs    int `yaml:"step_ms"`    // Reduction per speed-up
	MinMs     int `yaml:"min_ms"`     // Interval floor
	Every     int `yaml:"every"`      // Speed up at each positive multiple of this score
}

// LeaderboardConfig defines the ranked view.
type LeaderboardConfig struct {
	Limit     int `yaml:"limit"`      // Entries shown (top-N)
	RefreshMs int `yaml:"refresh_ms"` // Watch poll interval
}

// StorageConfig defines persistence locations.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Rules converts the configuration to the game ruleset.
func (c Config) Rules() game.Rules {
	return game.Rules{
		BoardSize:       c.Board.SizePx,
		CellSize:        c.Board.CellPx,
		InitialInterval: time.Duration(c.Speed.InitialMs) * time.Millisecond,
		SpeedStep:       time.Duration(c.Speed.StepMs) * time.Millisecond,
		MinInterval:     time.Duration(c.Speed.MinMs) * time.Millisecond,
		SpeedEvery:      c.Speed.Every,
	}
}

// RefreshInterval returns the leaderboard poll interval.
func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.Leaderboard.RefreshMs) * time.Millisecond
}

// Validate checks structural constraints the game depends on.
func (c Config) Validate() error {
	if c.Board.CellPx <= 0 {
		return fmt.Errorf("config: cell_px must be positive, got %d", c.Board.CellPx)
	}
	if c.Board.SizePx <= 0 || c.Board.SizePx%c.Board.CellPx != 0 {
		return fmt.Errorf("config: size_px %d must be a positive multiple of cell_px %d",
			c.Board.SizePx, c.Board.CellPx)
	}
	if c.Speed.InitialMs <= 0 || c.Speed.MinMs <= 0 || c.Speed.InitialMs < c.Speed.MinMs {
		return fmt.Errorf("config: invalid speed range %dms..%dms", c.Speed.MinMs, c.Speed.InitialMs)
	}
	if c.Speed.Every <= 0 {
		return fmt.Errorf("config: speed.every must be positive, got %d", c.Speed.Every)
	}
	if c.Leaderboard.Limit <= 0 {
		return fmt.Errorf("config: leaderboard.limit must be positive, got %d", c.Leaderboard.Limit)
	}
	return nil
}
