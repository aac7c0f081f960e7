// Package piece defines the puzzle's domain vocabulary: parts, the
// constraints a requirement may impose on where its part lands, and the
// placements/solutions the solver produces.
package piece

import (
	"github.com/tessforge/gridfit/grid"
	"github.com/tessforge/gridfit/mask"
)

// Part is a rigid game piece: a color, a solidity flag, and two mask
// variants. The two masks may be structurally equal, in which case the
// part has no distinct "expansion" option (see candidates package).
type Part struct {
	IsSolid           bool
	Color             int
	CompressedMask    mask.Mask
	UncompressedMask  mask.Mask
}

// Constraint holds three independent optional booleans; a nil pointer
// means "don't care".
type Constraint struct {
	Compressed    *bool
	OnCommandLine *bool
	Bugged        *bool
}

// Requirement names a part plus the constraints its placement must satisfy.
type Requirement struct {
	PartIndex  int
	Constraint Constraint
}

// Placement records where and how a part was placed: the rotated mask
// actually stamped is Rotate(part.{Compressed|Uncompressed}Mask, Loc.Rotation).
type Placement struct {
	Loc        grid.Location
	Compressed bool
}

// Solution is one placement per requirement, indexed to match the
// original requirements slice (Solution[i] satisfies Requirements[i]).
type Solution []Placement

// BoolPtr is a small constructor helper for building *bool constraint
// fields without an intermediate variable.
func BoolPtr(v bool) *bool { return &v }
