package robots

import (
	"math/rand"

	"github.com/vovakirdan/tui-robots/internal/core"
)

// Source is the engine's private pseudo-random stream.
// Each engine owns one, so parallel engines never perturb each other.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a deterministic source from seed.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform integer in [lo, hi). It returns lo when hi <= lo.
func (s *Source) Intn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo)
}

// Point returns a uniform cell of a w×h grid, drawing x before y.
func (s *Source) Point(w, h int) core.Point {
	x := s.Intn(0, w)
	y := s.Intn(0, h)
	return core.Pt(x, y)
}
