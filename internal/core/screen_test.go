package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	// Out-of-bounds writes are ignored, reads yield space.
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, '#')

	s.Clear()
	if s.Get(1, 1) != ' ' {
		t.Error("Clear should reset cells to spaces")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place runes")
	}

	// Clipped at the right edge without panicking.
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Error("DrawText should clip at screen bounds")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")

	if s.Get(4, 0) != 'a' || s.Get(5, 0) != 'b' || s.Get(6, 0) != 'c' {
		t.Errorf("Centered text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 6, 4)

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("Box corners missing")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("Box edges missing")
	}
	if s.Get(2, 2) != ' ' {
		t.Error("Box interior should stay empty")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Resize(8, 2)

	if s.Width() != 8 || s.Height() != 2 {
		t.Errorf("Resize -> (%d, %d), expected (8, 2)", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.String(), strings.Repeat(" ", 8)) {
		t.Error("Resized screen should start cleared")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}
