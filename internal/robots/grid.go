package robots

import "github.com/vovakirdan/tui-robots/internal/core"

// CellState is the occupancy of a grid cell.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellObstacle
)

// Grid is a fixed-size cell array recording debris. Its size never changes.
type Grid struct {
	width  int
	height int
	cells  []CellState
	count  int
}

// NewGrid allocates an empty w×h grid.
func NewGrid(w, h int) *Grid {
	return &Grid{
		width:  w,
		height: h,
		cells:  make([]CellState, w*h),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// In reports whether p lies on the grid.
func (g *Grid) In(p core.Point) bool {
	return p.In(g.width, g.height)
}

// At returns the state of p. Off-grid cells read as empty.
func (g *Grid) At(p core.Point) CellState {
	if !g.In(p) {
		return CellEmpty
	}
	return g.cells[p.Y*g.width+p.X]
}

// IsObstacle reports whether p holds debris.
func (g *Grid) IsObstacle(p core.Point) bool {
	return g.At(p) == CellObstacle
}

// ObstacleCount returns the number of debris cells.
func (g *Grid) ObstacleCount() int {
	return g.count
}

// Obstacles lists debris cells in row-major order.
func (g *Grid) Obstacles() []core.Point {
	out := make([]core.Point, 0, g.count)
	for i, c := range g.cells {
		if c == CellObstacle {
			out = append(out, core.Pt(i%g.width, i/g.width))
		}
	}
	return out
}

// place marks p as debris. Returns false if p was already debris or off-grid.
func (g *Grid) place(p core.Point) bool {
	if !g.In(p) {
		return false
	}
	i := p.Y*g.width + p.X
	if g.cells[i] == CellObstacle {
		return false
	}
	g.cells[i] = CellObstacle
	g.count++
	return true
}

func (g *Grid) reset() {
	clear(g.cells)
	g.count = 0
}
