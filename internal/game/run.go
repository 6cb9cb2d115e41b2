package game

import (
	"math/rand"
	"time"
)

// Phase is the run state machine state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Rules holds the tunable gameplay parameters. All sizes are pixel units,
// all durations tick intervals.
type Rules struct {
	BoardSize       int           // Board edge length (400 -> 20x20 cells at CellSize 20)
	CellSize        int           // Lattice step
	InitialInterval time.Duration // Tick interval at score 0
	SpeedStep       time.Duration // Interval reduction per speed-up
	MinInterval     time.Duration // Interval floor
	SpeedEvery      int           // Speed up each time score crosses a multiple of this
}

// DefaultRules returns the standard ruleset.
func DefaultRules() Rules {
	return Rules{
		BoardSize:       400,
		CellSize:        20,
		InitialInterval: 150 * time.Millisecond,
		SpeedStep:       10 * time.Millisecond,
		MinInterval:     50 * time.Millisecond,
		SpeedEvery:      5,
	}
}

// Run owns all mutable state of a single game run: the snake body, the pending
// direction, the food cell, score, and the current tick interval. A Run is
// created at game start and discarded at game end; it is driven by exactly one
// caller and needs no locking.
type Run struct {
	rules Rules
	grid  Grid
	rng   *rand.Rand

	tick     uint64
	phase    Phase
	body     []Cell // Head at index 0
	dir      Direction
	pending  Direction // Buffered direction for the next step
	food     Cell
	score    int
	interval time.Duration

	finalScore int
	ended      bool // End already processed for this run
}

// NewRun creates a run in the idle phase. The seed makes food placement
// deterministic for a given input sequence.
func NewRun(rules Rules, seed int64) *Run {
	return &Run{
		rules: rules,
		grid:  Grid{BoardSize: rules.BoardSize, CellSize: rules.CellSize},
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Start transitions idle -> running and resets all run-scoped state: a single
// cell at the origin heading right, score 0, the initial tick interval, and a
// freshly placed food cell. Returns the interval the first tick should use.
func (r *Run) Start() time.Duration {
	r.tick = 0
	r.phase = PhaseRunning
	r.body = []Cell{{X: 0, Y: 0}}
	r.dir = DirRight
	r.pending = DirRight
	r.score = 0
	r.interval = r.rules.InitialInterval
	r.finalScore = 0
	r.ended = false
	r.food = r.placeFood()
	return r.interval
}

// SetDirection requests a heading change for the next step. The request is
// accepted only when the current direction's component along the requested
// axis is zero, which rejects both 180-degree reversals and same-axis no-ops.
func (r *Run) SetDirection(req Direction) {
	if req.DX != 0 && r.dir.DX == 0 {
		r.pending = req
		return
	}
	if req.DY != 0 && r.dir.DY == 0 {
		r.pending = req
	}
}

// StepResult reports what happened during one tick.
type StepResult struct {
	Collided bool          // Run ended on this step
	Ate      bool          // Head landed on food
	SpedUp   bool          // Interval shortened; caller must re-arm its timer
	Interval time.Duration // Interval for the next tick
}

// Step advances the head by one cell in the pending direction. On collision
// the run transitions to idle and no further state is mutated. On eating, the
// tail is kept (net growth of one), the score increments, food respawns, and
// the interval may shorten. Otherwise the tail cell is removed.
func (r *Run) Step() StepResult {
	if r.phase != PhaseRunning {
		return StepResult{Interval: r.interval}
	}

	r.tick++
	r.dir = r.pending

	head := r.body[0]
	newHead := Cell{
		X: head.X + r.dir.DX*r.rules.CellSize,
		Y: head.Y + r.dir.DY*r.rules.CellSize,
	}

	if r.Collides(newHead) {
		r.End()
		return StepResult{Collided: true, Interval: r.interval}
	}

	r.body = append([]Cell{newHead}, r.body...)

	res := StepResult{Interval: r.interval}
	if newHead == r.food {
		r.score++
		r.food = r.placeFood()
		if next := r.intervalForScore(r.score); next != r.interval {
			r.interval = next
			res.SpedUp = true
			res.Interval = next
		}
		res.Ate = true
	} else {
		r.body = r.body[:len(r.body)-1]
	}
	return res
}

// Collides reports whether a candidate head position ends the run: outside the
// board bounds, or equal to any body cell at index >= 1 (index 0 is the old
// head, which the new head can never equal). Pure predicate, no side effects.
func (r *Run) Collides(head Cell) bool {
	if !r.grid.Contains(head) {
		return true
	}
	for _, seg := range r.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// End transitions running -> idle and captures the final score. Safe to call
// multiple times; only the first call after Start reports true, so callers can
// gate one-shot work (score submission) on the return value.
func (r *Run) End() bool {
	if r.ended {
		return false
	}
	r.ended = true
	r.phase = PhaseIdle
	r.finalScore = r.score
	return true
}

// placeFood samples random lattice cells until it finds one not occupied by
// the snake. The snake occupies a strict subset of the board in any reachable
// state, so the loop terminates.
func (r *Run) placeFood() Cell {
	for {
		c := r.grid.RandomCell(r.rng)
		if !r.occupies(c) {
			return c
		}
	}
}

// occupies reports whether any snake segment sits on c.
func (r *Run) occupies(c Cell) bool {
	for _, seg := range r.body {
		if seg == c {
			return true
		}
	}
	return false
}

// intervalForScore returns the tick interval for a score: the initial interval
// shortened by one step per completed multiple of SpeedEvery, floored.
func (r *Run) intervalForScore(score int) time.Duration {
	d := r.rules.InitialInterval - time.Duration(score/r.rules.SpeedEvery)*r.rules.SpeedStep
	if d < r.rules.MinInterval {
		return r.rules.MinInterval
	}
	return d
}

// Phase returns the current state machine phase.
func (r *Run) Phase() Phase { return r.phase }

// Score returns the current score.
func (r *Run) Score() int { return r.score }

// FinalScore returns the score captured when the run ended.
func (r *Run) FinalScore() int { return r.finalScore }

// Interval returns the current tick interval.
func (r *Run) Interval() time.Duration { return r.interval }

// Head returns the snake's head cell.
func (r *Run) Head() Cell { return r.body[0] }

// Body returns the snake cells, head first. The slice is shared; callers must
// treat it as read-only.
func (r *Run) Body() []Cell { return r.body }

// Food returns the current food cell.
func (r *Run) Food() Cell { return r.food }

// Direction returns the heading applied on the last step.
func (r *Run) Direction() Direction { return r.dir }

// Grid returns the board geometry.
func (r *Run) Grid() Grid { return r.grid }
