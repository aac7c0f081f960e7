// Package admiss implements the two admissibility predicates: one checked
// after every candidate placement during search (Placement), and one
// checked once over the fully filled grid before a solution is emitted
// (Solution).
package admiss

import (
	"github.com/tessforge/gridfit/grid"
	"github.com/tessforge/gridfit/piece"
)

func isReq(c grid.Cell, reqIdx int) bool {
	return c.State == grid.Placed && c.RequirementIndex == reqIdx
}

// Placement reports whether the candidate just stamped for requirementIndex
// is still legal for its requirement's constraints.
//
// g must already contain the candidate's stamped cells.
func Placement(g *grid.Grid, partIsSolid bool, requirementIndex int, onCommandLine, bugged *bool) bool {
	h, w := g.Settings.Height, g.Settings.Width

	// P1: with OOB enabled, the placement cannot live entirely in the
	// corner ring — at least one placed cell must be interior.
	if g.Settings.HasOOB {
		hasInterior := g.Interior(func(c grid.Cell) bool { return isReq(c, requirementIndex) })
		if !hasInterior {
			return false
		}
	}

	// P2: out-of-bounds flag.
	outOfBounds := false
	if g.Settings.HasOOB {
		pred := func(c grid.Cell) bool { return isReq(c, requirementIndex) }
		outOfBounds = g.Row(0, pred) || g.Column(0, pred) || g.Row(h-1, pred) || g.Column(w-1, pred)
	}

	// P3: on-command-line flag.
	placedOnCommandLine := g.Row(g.Settings.CommandLineRow, func(c grid.Cell) bool {
		return isReq(c, requirementIndex)
	})

	// P4.
	if onCommandLine != nil && *onCommandLine != placedOnCommandLine {
		return false
	}

	// P5: "not bugged" can be pre-checked; "bugged" cannot (adjacency is
	// only known once the whole grid is filled).
	placementIsBugged := outOfBounds || (partIsSolid == !placedOnCommandLine)
	if bugged != nil && !*bugged && placementIsBugged {
		return false
	}

	return true
}

type placementDetail struct {
	outOfBounds       bool
	onCommandLine     bool
	touchingSameColor bool
}

// Solution reports whether every requirement's constraint.Bugged (if set)
// matches the fully computed "bugged" predicate over the finished grid g.
//
// Note: the out-of-bounds test below is "x==0 || x==w-1 || y==h-1 ||
// x==w-1" verbatim, including the missing "y==0" arm. This asymmetry is
// intentional and preserved rather than corrected.
func Solution(parts []piece.Part, requirements []piece.Requirement, g *grid.Grid) bool {
	h, w := g.Settings.Height, g.Settings.Width
	details := make([]placementDetail, len(requirements))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := g.At(x, y)
			if cell.State != grid.Placed {
				continue
			}
			reqIdx := cell.RequirementIndex
			req := requirements[reqIdx]
			part := parts[req.PartIndex]
			d := &details[reqIdx]

			if g.Settings.HasOOB && (x == 0 || x == w-1 || y == h-1 || x == w-1) {
				d.outOfBounds = true
			}

			if y == g.Settings.CommandLineRow {
				d.onCommandLine = true
			}

			for _, n := range g.Neighbor4(x, y) {
				if n.State != grid.Placed || n.RequirementIndex == reqIdx {
					continue
				}
				neighborPart := parts[requirements[n.RequirementIndex].PartIndex]
				if neighborPart.Color == part.Color {
					d.touchingSameColor = true
					break
				}
			}
		}
	}

	for i, req := range requirements {
		part := parts[req.PartIndex]
		d := details[i]
		placementIsBugged := d.outOfBounds || (part.IsSolid == !d.onCommandLine) || d.touchingSameColor

		if req.Constraint.Bugged != nil && *req.Constraint.Bugged != placementIsBugged {
			return false
		}
	}

	return true
}
