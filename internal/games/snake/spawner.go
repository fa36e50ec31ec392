package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultSpawnAttempts is how many random samples the spawner tries before
// falling back to an exhaustive scan of free cells.
const DefaultSpawnAttempts = 64

// Occupancy is the part of the snake the spawner needs.
type Occupancy interface {
	Contains(p core.Position) bool
	Len() int
}

// Spawner places apples on free cells.
type Spawner struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewSpawner creates a spawner drawing from rng. maxAttempts <= 0 selects
// DefaultSpawnAttempts.
func NewSpawner(rng *rand.Rand, maxAttempts int) *Spawner {
	if maxAttempts <= 0 {
		maxAttempts = DefaultSpawnAttempts
	}
	return &Spawner{rng: rng, maxAttempts: maxAttempts}
}

// Spawn returns a uniformly chosen cell of grid not covered by body. It
// returns ErrBoardFull when there is none. The call always terminates: random
// sampling is bounded and followed by a scan of the remaining free cells.
func (s *Spawner) Spawn(grid core.Grid, body Occupancy) (core.Position, error) {
	free := grid.Area() - body.Len()
	if free <= 0 {
		return core.Position{}, ErrBoardFull
	}

	for i := 0; i < s.maxAttempts; i++ {
		p := core.Pos(s.rng.Intn(grid.Width()), s.rng.Intn(grid.Height()))
		if !body.Contains(p) {
			return p, nil
		}
	}

	// Crowded board: pick the k-th free cell in row-major order.
	k := s.rng.Intn(free)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := core.Pos(x, y)
			if body.Contains(p) {
				continue
			}
			if k == 0 {
				return p, nil
			}
			k--
		}
	}
	return core.Position{}, ErrBoardFull
}
