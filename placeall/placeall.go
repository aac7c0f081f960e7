// Package placeall replays a completed Solution onto a fresh grid,
// independent of the search that produced it.
package placeall

import (
	"github.com/tessforge/gridfit/grid"
	"github.com/tessforge/gridfit/piece"
)

// PlaceAll replays placements (one per requirement, in requirement order)
// onto a fresh grid built from settings. On the first placement that fails
// to land (clipped or colliding), it returns (nil, false) immediately. On
// full success it returns a row-major H*W slice where occupied[y*W+x] is
// nil for Empty/Forbidden cells or a pointer to the occupying requirement
// index.
//
// PlaceAll never calls into the solver; it is a pure function of its
// arguments and is safe to run against any Solution a Cursor has emitted,
// independently and after the fact.
func PlaceAll(parts []piece.Part, requirements []piece.Requirement, placements piece.Solution, settings grid.Settings) ([]*int, bool) {
	g := grid.New(settings)

	for i, placement := range placements {
		part := parts[requirements[i].PartIndex]

		base := part.CompressedMask
		if !placement.Compressed {
			base = part.UncompressedMask
		}
		m := base.Rotate(placement.Loc.Rotation)

		next, ok := g.Place(m, placement.Loc.Position, i)
		if !ok {
			return nil, false
		}
		g = next
	}

	out := make([]*int, settings.Height*settings.Width)
	for y := 0; y < settings.Height; y++ {
		for x := 0; x < settings.Width; x++ {
			cell := g.At(x, y)
			if cell.State != grid.Placed {
				continue
			}
			idx := cell.RequirementIndex
			out[y*settings.Width+x] = &idx
		}
	}

	return out, true
}
