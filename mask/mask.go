// Package mask implements the shape algebra for rigid polyomino footprints:
// construction, 90° rotation, and trimming to the bounding box of set cells.
// A Mask is immutable once built; every transformation returns a new value.
package mask

import "fmt"

// Mask is a rectangular binary image stored row-major: Cells[y*Width+x].
type Mask struct {
	Height int
	Width  int
	Cells  []bool
}

// New builds a Mask from row-major cells, panicking if len(cells) != height*width.
// Malformed shapes are rejected at the host boundary, not here; callers
// crossing that boundary validate before construction.
func New(height, width int, cells []bool) Mask {
	if len(cells) != height*width {
		panic(fmt.Sprintf("mask: len(cells)=%d does not match height*width=%d", len(cells), height*width))
	}

	return Mask{Height: height, Width: width, Cells: cells}
}

// At reports the cell value at (x, y). x and y must be in bounds.
func (m Mask) At(x, y int) bool {
	return m.Cells[y*m.Width+x]
}

// Equal reports structural equality: same dimensions and identical cell sequence.
func (m Mask) Equal(o Mask) bool {
	if m.Height != o.Height || m.Width != o.Width {
		return false
	}
	for i, v := range m.Cells {
		if v != o.Cells[i] {
			return false
		}
	}

	return true
}

// Rotate90 returns the 90° clockwise rotation of m: transpose, then reverse
// each resulting row. Dimensions swap: (H, W) becomes (W, H).
func (m Mask) Rotate90() Mask {
	out := make([]bool, len(m.Cells))
	// out has dimensions (width, height); out[y'][x'] = m[height-1-x'][y']
	for y := 0; y < m.Width; y++ {
		for x := 0; x < m.Height; x++ {
			out[y*m.Height+x] = m.At(y, m.Height-1-x)
		}
	}

	return Mask{Height: m.Width, Width: m.Height, Cells: out}
}

// Rotate returns m rotated 90° clockwise k times. k is expected in [0,3];
// the rotation is applied literally k times regardless (it is periodic mod 4).
func (m Mask) Rotate(k int) Mask {
	out := m
	for i := 0; i < k; i++ {
		out = out.Rotate90()
	}

	return out
}

// Trimmed returns the minimal sub-rectangle of m containing every set cell.
// If m has no set cell, Trimmed returns m itself unchanged rather than an
// empty mask.
func (m Mask) Trimmed() Mask {
	left, top := -1, -1
	right, bottom := m.Width, m.Height

	for x := 0; x < m.Width; x++ {
		if columnHasSet(m, x) {
			left = x
			break
		}
	}
	if left == -1 {
		return m
	}

	for y := 0; y < m.Height; y++ {
		if rowHasSet(m, y) {
			top = y
			break
		}
	}

	for x := m.Width - 1; x >= 0; x-- {
		if columnHasSet(m, x) {
			right = x + 1
			break
		}
	}

	for y := m.Height - 1; y >= 0; y-- {
		if rowHasSet(m, y) {
			bottom = y + 1
			break
		}
	}

	height := bottom - top
	width := right - left
	cells := make([]bool, 0, height*width)
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			cells = append(cells, m.At(x, y))
		}
	}

	return Mask{Height: height, Width: width, Cells: cells}
}

func columnHasSet(m Mask, x int) bool {
	for y := 0; y < m.Height; y++ {
		if m.At(x, y) {
			return true
		}
	}

	return false
}

func rowHasSet(m Mask, y int) bool {
	for x := 0; x < m.Width; x++ {
		if m.At(x, y) {
			return true
		}
	}

	return false
}
