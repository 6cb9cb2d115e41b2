package game

import "time"

// Snapshot captures the complete run state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	Interval time.Duration
}

// Snapshot returns the current run snapshot for determinism verification.
func (r *Run) Snapshot() Snapshot {
	headX, headY := 0, 0
	if len(r.body) > 0 {
		headX = r.body[0].X
		headY = r.body[0].Y
	}
	return Snapshot{
		Tick:     r.tick,
		Phase:    r.phase,
		Score:    r.score,
		SnakeLen: len(r.body),
		HeadX:    headX,
		HeadY:    headY,
		Dir:      r.dir,
		FoodX:    r.food.X,
		FoodY:    r.food.Y,
		Interval: r.interval,
	}
}
