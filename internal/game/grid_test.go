package game

import (
	"math/rand"
	"testing"
)

func TestGridCells(t *testing.T) {
	g := Grid{BoardSize: 400, CellSize: 20}
	if g.Cells() != 20 {
		t.Errorf("Cells() = %d, expected 20", g.Cells())
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{BoardSize: 400, CellSize: 20}

	tests := []struct {
		name     string
		c        Cell
		expected bool
	}{
		{"origin", Cell{X: 0, Y: 0}, true},
		{"last cell", Cell{X: 380, Y: 380}, true},
		{"past right edge", Cell{X: 400, Y: 0}, false},
		{"past bottom edge", Cell{X: 0, Y: 400}, false},
		{"negative x", Cell{X: -20, Y: 0}, false},
		{"negative y", Cell{X: 0, Y: -20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Contains(tc.c); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestGridCellIndex(t *testing.T) {
	g := Grid{BoardSize: 400, CellSize: 20}
	cx, cy := g.CellIndex(Cell{X: 60, Y: 380})
	if cx != 3 || cy != 19 {
		t.Errorf("CellIndex(60, 380) = (%d, %d), expected (3, 19)", cx, cy)
	}
}

func TestGridRandomCellOnLattice(t *testing.T) {
	g := Grid{BoardSize: 400, CellSize: 20}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		c := g.RandomCell(rng)
		if !g.Contains(c) {
			t.Fatalf("RandomCell out of bounds: (%d, %d)", c.X, c.Y)
		}
		if c.X%g.CellSize != 0 || c.Y%g.CellSize != 0 {
			t.Fatalf("RandomCell off the lattice: (%d, %d)", c.X, c.Y)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirLeft: DirRight,
		DirUp:   DirDown,
	}
	for d, opp := range pairs {
		if d.Opposite() != opp {
			t.Errorf("%v.Opposite() = %v, expected %v", d, d.Opposite(), opp)
		}
		if opp.Opposite() != d {
			t.Errorf("%v.Opposite() = %v, expected %v", opp, opp.Opposite(), d)
		}
	}
}
