package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 {
		t.Errorf("Width() = %d, expected 40", s.Width())
	}
	if s.Height() != 12 {
		t.Errorf("Height() = %d, expected 12", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, '@', ColorApple)
	cell := s.GetCell(5, 5)
	if cell.Rune != '@' || cell.Color != ColorApple {
		t.Errorf("GetCell(5, 5) = %+v, expected '@' in apple colour", cell)
	}

	// Out of bounds writes are dropped
	s.SetCell(-1, 0, 'A', ColorText)
	s.SetCell(100, 0, 'A', ColorText)
	s.SetCell(0, -1, 'A', ColorText)
	s.SetCell(0, 100, 'A', ColorText)

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.FillRect(NewRect(0, 0, 6, 3), 'X', ColorSnakeBody)
	s.Clear()

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("After Clear the screen should be blank, got %q", s.String())
	}
	if s.GetCell(2, 2).Color != ColorDefault {
		t.Error("Clear should reset colours")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'o')
	s.Resize(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("Resize gave %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear the buffer")
	}

	s.Resize(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Error("Negative sizes should clamp to zero")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "score", ColorText)

	if got := s.Row(1)[2:7]; got != "score" {
		t.Errorf("DrawText wrote %q, expected %q", got, "score")
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello", ColorText)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorText)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Error("DrawTextCentered did not center the text")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorBorder)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for at, want := range corners {
		if got := s.Get(at[0], at[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", at, got, want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorBorder {
		t.Error("box should be drawn in the border colour")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}
}
