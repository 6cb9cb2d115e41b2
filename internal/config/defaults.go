package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded default configuration, used when even the
// embedded YAML fails to parse.
func Default() Config {
	return Config{
		Board: BoardConfig{
			SizePx: 400,
			CellPx: 20,
		},
		Speed: SpeedConfig{
			InitialMs: 150,
			StepMs:    10,
			MinMs:     50,
			Every:     5,
		},
		Leaderboard: LeaderboardConfig{
			Limit:     10,
			RefreshMs: 1000,
		},
		Storage: StorageConfig{
			DBPath: "~/.snaketui/leaderboard.db",
		},
	}
}
