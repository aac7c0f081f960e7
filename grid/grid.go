package grid

import "github.com/tessforge/gridfit/mask"

// Grid is an immutable H×W matrix of Cells. Mutation happens only through
// Place, which returns a new Grid on success and leaves the receiver
// observably unchanged either way (copy-on-write).
type Grid struct {
	Settings Settings
	cells    []Cell
}

// New builds an empty Grid per settings. If Settings.HasOOB, the four corner
// cells start Forbidden; every other cell starts Empty.
//
// Complexity: O(H×W).
func New(settings Settings) *Grid {
	cells := make([]Cell, settings.Height*settings.Width)

	g := &Grid{Settings: settings, cells: cells}
	if settings.HasOOB && settings.Height > 0 && settings.Width > 0 {
		g.setState(0, 0, Cell{State: Forbidden})
		g.setState(settings.Width-1, 0, Cell{State: Forbidden})
		g.setState(0, settings.Height-1, Cell{State: Forbidden})
		g.setState(settings.Width-1, settings.Height-1, Cell{State: Forbidden})
	}

	return g
}

func (g *Grid) index(x, y int) int { return y*g.Settings.Width + x }

func (g *Grid) setState(x, y int, c Cell) { g.cells[g.index(x, y)] = c }

// At returns the cell at (x, y). x and y must be in bounds.
func (g *Grid) At(x, y int) Cell { return g.cells[g.index(x, y)] }

// Row reports whether any cell in row y satisfies pred.
func (g *Grid) Row(y int, pred func(Cell) bool) bool {
	for x := 0; x < g.Settings.Width; x++ {
		if pred(g.At(x, y)) {
			return true
		}
	}

	return false
}

// Column reports whether any cell in column x satisfies pred.
func (g *Grid) Column(x int, pred func(Cell) bool) bool {
	for y := 0; y < g.Settings.Height; y++ {
		if pred(g.At(x, y)) {
			return true
		}
	}

	return false
}

// Interior reports whether any cell strictly inside the outer ring
// ([1,H-1)×[1,W-1)) satisfies pred.
func (g *Grid) Interior(pred func(Cell) bool) bool {
	for y := 1; y < g.Settings.Height-1; y++ {
		for x := 1; x < g.Settings.Width-1; x++ {
			if pred(g.At(x, y)) {
				return true
			}
		}
	}

	return false
}

// Neighbor4 returns the four orthogonal neighbors of (x, y) that lie in
// bounds. Out-of-bounds neighbors are simply omitted (saturating lookup).
func (g *Grid) Neighbor4(x, y int) []Cell {
	out := make([]Cell, 0, 4)
	if x > 0 {
		out = append(out, g.At(x-1, y))
	}
	if x < g.Settings.Width-1 {
		out = append(out, g.At(x+1, y))
	}
	if y > 0 {
		out = append(out, g.At(x, y-1))
	}
	if y < g.Settings.Height-1 {
		out = append(out, g.At(x, y+1))
	}

	return out
}

// Place attempts to stamp mask m at pos for requirement index reqIdx.
//
// Algorithm: every set cell of m must land inside the grid
// (a clipped set cell is a hard failure; clipped empty margin is fine), and
// every grid cell under a set mask cell must be Empty beforehand. On any
// failure Place returns (nil, false) and g is left untouched — validation
// runs to completion before anything is cloned, so there is never a partial
// write to observe.
//
// Complexity: O(mh×mw).
func (g *Grid) Place(m mask.Mask, pos Position, reqIdx int) (*Grid, bool) {
	h, w := g.Settings.Height, g.Settings.Width

	srcX, dstX := 0, pos.X
	if pos.X < 0 {
		srcX, dstX = -pos.X, 0
	}
	srcY, dstY := 0, pos.Y
	if pos.Y < 0 {
		srcY, dstY = -pos.Y, 0
	}

	// Step 1: reject any set mask cell that would be clipped by the grid edge.
	for my := 0; my < m.Height; my++ {
		for mx := 0; mx < m.Width; mx++ {
			if mx >= srcX && my >= srcY && mx < w-dstX && my < h-dstY {
				continue
			}
			if m.At(mx, my) {
				return nil, false
			}
		}
	}

	// Step 2: reject any set mask cell landing on a non-Empty grid cell.
	for my := srcY; my < m.Height; my++ {
		gy := dstY + (my - srcY)
		for mx := srcX; mx < m.Width; mx++ {
			if !m.At(mx, my) {
				continue
			}
			gx := dstX + (mx - srcX)
			if g.At(gx, gy).State != Empty {
				return nil, false
			}
		}
	}

	// Both checks passed: clone and stamp.
	out := &Grid{Settings: g.Settings, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	for my := srcY; my < m.Height; my++ {
		gy := dstY + (my - srcY)
		for mx := srcX; mx < m.Width; mx++ {
			if !m.At(mx, my) {
				continue
			}
			gx := dstX + (mx - srcX)
			out.setState(gx, gy, Cell{State: Placed, RequirementIndex: reqIdx})
		}
	}

	return out, true
}
