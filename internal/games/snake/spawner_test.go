package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestSpawnAvoidsSnake(t *testing.T) {
	grid := core.NewGrid(6, 6)
	s := NewSnake(core.Pos(4, 2), 4, core.Right)
	sp := NewSpawner(rand.New(rand.NewSource(1)), 0)

	for i := 0; i < 200; i++ {
		p, err := sp.Spawn(grid, s)
		if err != nil {
			t.Fatalf("Spawn() failed: %v", err)
		}
		if !grid.Contains(p) {
			t.Fatalf("Spawn() = %s, off the board", p)
		}
		if s.Contains(p) {
			t.Fatalf("Spawn() = %s, on the snake", p)
		}
	}
}

func TestSpawnSingleFreeCell(t *testing.T) {
	grid := core.NewGrid(3, 1)
	s, err := NewSnakeFromBody([]core.Position{core.Pos(2, 0), core.Pos(1, 0)}, core.Right)
	if err != nil {
		t.Fatalf("NewSnakeFromBody() failed: %v", err)
	}

	// One attempt forces the fallback scan most of the time.
	for _, attempts := range []int{1, DefaultSpawnAttempts} {
		sp := NewSpawner(rand.New(rand.NewSource(5)), attempts)
		for i := 0; i < 50; i++ {
			p, err := sp.Spawn(grid, s)
			if err != nil {
				t.Fatalf("Spawn() failed: %v", err)
			}
			if p != core.Pos(0, 0) {
				t.Fatalf("Spawn() = %s, expected the only free cell (0,0)", p)
			}
		}
	}
}

func TestSpawnBoardFull(t *testing.T) {
	grid := core.NewGrid(2, 2)
	s, err := NewSnakeFromBody([]core.Position{core.Pos(0, 0), core.Pos(1, 0), core.Pos(1, 1), core.Pos(0, 1)}, core.Up)
	if err != nil {
		t.Fatalf("NewSnakeFromBody() failed: %v", err)
	}
	sp := NewSpawner(rand.New(rand.NewSource(1)), 0)

	if _, err := sp.Spawn(grid, s); !errors.Is(err, ErrBoardFull) {
		t.Errorf("Spawn() on a full board = %v, expected ErrBoardFull", err)
	}
}

func TestSpawnFallbackReachesEveryFreeCell(t *testing.T) {
	grid := core.NewGrid(3, 3)
	s := NewSnake(core.Pos(2, 1), 3, core.Right)
	sp := NewSpawner(rand.New(rand.NewSource(11)), 1)

	seen := make(map[core.Position]bool)
	for i := 0; i < 500; i++ {
		p, err := sp.Spawn(grid, s)
		if err != nil {
			t.Fatalf("Spawn() failed: %v", err)
		}
		seen[p] = true
	}
	if len(seen) != grid.Area()-s.Len() {
		t.Errorf("saw %d distinct cells, expected all %d free cells", len(seen), grid.Area()-s.Len())
	}
}
