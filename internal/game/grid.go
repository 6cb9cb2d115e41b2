// Package game implements the Snake simulation: the grid model, snake state,
// collision rules, food placement, and the run state machine that drives ticks.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package game

import "math/rand"

// Cell is a board position in pixel units. Coordinates are always exact
// multiples of the grid cell size; movement and placement snap to this lattice.
type Cell struct {
	X, Y int
}

// Direction is a unit pixel-delta pair. Exactly one component is non-zero.
type Direction struct {
	DX, DY int
}

// The four movement directions.
var (
	DirLeft  = Direction{DX: -1, DY: 0}
	DirUp    = Direction{DX: 0, DY: -1}
	DirRight = Direction{DX: 1, DY: 0}
	DirDown  = Direction{DX: 0, DY: 1}
)

// Opposite returns the 180-degree reversal of d.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Grid is a fixed-size square board. BoardSize and CellSize are pixel units;
// BoardSize must be a multiple of CellSize.
type Grid struct {
	BoardSize int
	CellSize  int
}

// Cells returns the number of cells along one axis.
func (g Grid) Cells() int {
	return g.BoardSize / g.CellSize
}

// Contains reports whether c lies inside the board bounds.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.BoardSize && c.Y >= 0 && c.Y < g.BoardSize
}

// CellIndex converts a pixel position to cell coordinates.
func (g Grid) CellIndex(c Cell) (int, int) {
	return c.X / g.CellSize, c.Y / g.CellSize
}

// RandomCell returns a uniformly random lattice cell inside the board.
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	n := g.Cells()
	return Cell{
		X: rng.Intn(n) * g.CellSize,
		Y: rng.Intn(n) * g.CellSize,
	}
}
