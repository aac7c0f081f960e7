// Package candidates enumerates, for a single requirement, every legal
// (location, oriented mask, compressed-flag) tuple on an empty grid.
package candidates

import (
	"github.com/tessforge/gridfit/admiss"
	"github.com/tessforge/gridfit/grid"
	"github.com/tessforge/gridfit/mask"
	"github.com/tessforge/gridfit/piece"
)

// Candidate is one legal way to place a part for some requirement: a fully
// resolved Placement (location + compressed flag) paired with the exact
// mask that Placement.Loc.Rotation produces.
type Candidate struct {
	Placement piece.Placement
	Mask      mask.Mask
}

// LocMask pairs a Location with the (possibly rotated) mask it was derived
// from, ahead of the compressed/uncompressed tagging ForPart applies.
type LocMask struct {
	Loc  grid.Location
	Mask mask.Mask
}

// Positions enumerates every Position at which m can be legally placed:
// x in [-W+1, W), y in [-H+1, H), in lexicographic y-then-x order,
// restricted to positions that both place without clipping/collision and
// pass the per-placement admissibility predicate for requirement 0.
func Positions(m mask.Mask, isSolid bool, settings grid.Settings, onCommandLine, bugged *bool) []grid.Position {
	var out []grid.Position

	w, h := settings.Width, settings.Height
	for y := -h + 1; y < h; y++ {
		for x := -w + 1; x < w; x++ {
			pos := grid.Position{X: x, Y: y}
			g, ok := grid.New(settings).Place(m, pos, 0)
			if !ok {
				continue
			}
			if !admiss.Placement(g, isSolid, 0, onCommandLine, bugged) {
				continue
			}
			out = append(out, pos)
		}
	}

	return out
}

// LocationsAndMasks starts with rotation 0 over m, then — if spinnable — adds
// rotations 1..3, stopping as soon as a rotation's trimmed form repeats an
// already-seen trimmed rotation.
func LocationsAndMasks(m mask.Mask, isSolid bool, settings grid.Settings, onCommandLine, bugged *bool, spinnable bool) []LocMask {
	var out []LocMask

	for _, pos := range Positions(m, isSolid, settings, onCommandLine, bugged) {
		out = append(out, LocMask{Loc: grid.Location{Position: pos, Rotation: 0}, Mask: m})
	}

	if !spinnable {
		return out
	}

	seen := []mask.Mask{m.Trimmed()}
	current := m
	for i := 1; i < 4; i++ {
		current = current.Rotate90()
		trimmed := current.Trimmed()

		repeated := false
		for _, s := range seen {
			if s.Equal(trimmed) {
				repeated = true
				break
			}
		}
		if repeated {
			break
		}
		seen = append(seen, trimmed)

		for _, pos := range Positions(current, isSolid, settings, onCommandLine, bugged) {
			out = append(out, LocMask{Loc: grid.Location{Position: pos, Rotation: i}, Mask: current})
		}
	}

	return out
}

// ForPart dispatches on constraint.Compressed to build the full candidate
// list for one requirement against one part.
//
// When constraint.Compressed is explicitly false, positions are still
// enumerated over the COMPRESSED mask while the emitted Placement is tagged
// Compressed = false; this mismatch is intentional and reproduced verbatim
// rather than "corrected" to the uncompressed mask.
func ForPart(part piece.Part, settings grid.Settings, constraint piece.Constraint, spinnable bool) []Candidate {
	wrap := func(lm []LocMask, compressed bool) []Candidate {
		out := make([]Candidate, 0, len(lm))
		for _, e := range lm {
			out = append(out, Candidate{
				Placement: piece.Placement{Loc: e.Loc, Compressed: compressed},
				Mask:      e.Mask,
			})
		}

		return out
	}

	switch {
	case constraint.Compressed != nil && *constraint.Compressed:
		lm := LocationsAndMasks(part.CompressedMask, part.IsSolid, settings, constraint.OnCommandLine, constraint.Bugged, spinnable)
		return wrap(lm, true)

	case constraint.Compressed != nil && !*constraint.Compressed:
		lm := LocationsAndMasks(part.CompressedMask, part.IsSolid, settings, constraint.OnCommandLine, constraint.Bugged, spinnable)
		return wrap(lm, false)

	case part.CompressedMask.Equal(part.UncompressedMask):
		lm := LocationsAndMasks(part.CompressedMask, part.IsSolid, settings, constraint.OnCommandLine, constraint.Bugged, spinnable)
		return wrap(lm, true)

	default:
		compressed := wrap(LocationsAndMasks(part.CompressedMask, part.IsSolid, settings, constraint.OnCommandLine, constraint.Bugged, spinnable), true)
		uncompressed := wrap(LocationsAndMasks(part.UncompressedMask, part.IsSolid, settings, constraint.OnCommandLine, constraint.Bugged, spinnable), false)

		return append(compressed, uncompressed...)
	}
}
