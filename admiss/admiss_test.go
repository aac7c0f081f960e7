package admiss_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessforge/gridfit/admiss"
	"github.com/tessforge/gridfit/grid"
	"github.com/tessforge/gridfit/mask"
	"github.com/tessforge/gridfit/piece"
)

func TestPlacement_OOBOnlyInteriorRejectsCornerOnlyPlacement(t *testing.T) {
	settings := grid.Settings{Height: 5, Width: 5, HasOOB: true, CommandLineRow: 2}
	g := grid.New(settings)
	// A single cell placed at (1,0) lies on the outer ring but has no
	// interior cell at all, so P1 must reject it.
	out, ok := g.Place(mask.New(1, 1, []bool{true}), grid.Position{X: 1, Y: 0}, 0)
	require.True(t, ok)

	assert.False(t, admiss.Placement(out, true, 0, nil, nil))
}

func TestPlacement_InteriorPlacementWithOOBPasses(t *testing.T) {
	settings := grid.Settings{Height: 5, Width: 5, HasOOB: true, CommandLineRow: 2}
	g := grid.New(settings)
	out, ok := g.Place(mask.New(1, 1, []bool{true}), grid.Position{X: 2, Y: 2}, 0)
	require.True(t, ok)

	assert.True(t, admiss.Placement(out, true, 0, nil, nil))
}

func TestPlacement_OnCommandLineConstraintMismatchFails(t *testing.T) {
	settings := grid.Settings{Height: 5, Width: 5, HasOOB: false, CommandLineRow: 2}
	g := grid.New(settings)
	out, ok := g.Place(mask.New(1, 1, []bool{true}), grid.Position{X: 0, Y: 0}, 0)
	require.True(t, ok)

	assert.False(t, admiss.Placement(out, true, 0, piece.BoolPtr(true), nil))
	assert.True(t, admiss.Placement(out, true, 0, piece.BoolPtr(false), nil))
}

func TestPlacement_NotBuggedRejectsOutOfBoundsPlacement(t *testing.T) {
	settings := grid.Settings{Height: 5, Width: 5, HasOOB: true, CommandLineRow: 2}
	g := grid.New(settings)
	// Two cells: one interior, one on the outer ring, so P1 passes but the
	// "out of bounds" flag is still true.
	out, ok := g.Place(mask.New(2, 1, []bool{true, true}), grid.Position{X: 1, Y: 0}, 0)
	require.True(t, ok)

	assert.False(t, admiss.Placement(out, true, 0, nil, piece.BoolPtr(false)))
}

func TestSolution_BuggedConstraintMatchesAdjacency(t *testing.T) {
	shape := mask.New(1, 1, []bool{true})
	partA := piece.Part{IsSolid: true, Color: 0, CompressedMask: shape, UncompressedMask: shape}
	partB := piece.Part{IsSolid: true, Color: 0, CompressedMask: shape, UncompressedMask: shape}
	parts := []piece.Part{partA, partB}
	requirements := []piece.Requirement{
		{PartIndex: 0, Constraint: piece.Constraint{Bugged: piece.BoolPtr(true)}},
		{PartIndex: 1, Constraint: piece.Constraint{Bugged: piece.BoolPtr(true)}},
	}
	settings := grid.Settings{Height: 3, Width: 3, HasOOB: false, CommandLineRow: 0}

	// Both solid cells sit on the command line with OOB off, so only the
	// same-color adjacency makes them bugged.
	g := grid.New(settings)
	g, ok := g.Place(shape, grid.Position{X: 0, Y: 0}, 0)
	require.True(t, ok)
	g, ok = g.Place(shape, grid.Position{X: 1, Y: 0}, 1)
	require.True(t, ok)

	assert.True(t, admiss.Solution(parts, requirements, g))
}

func TestSolution_BuggedConstraintFailsWhenNotTouching(t *testing.T) {
	shape := mask.New(1, 1, []bool{true})
	partA := piece.Part{IsSolid: true, Color: 0, CompressedMask: shape, UncompressedMask: shape}
	partB := piece.Part{IsSolid: true, Color: 0, CompressedMask: shape, UncompressedMask: shape}
	parts := []piece.Part{partA, partB}
	requirements := []piece.Requirement{
		{PartIndex: 0, Constraint: piece.Constraint{Bugged: piece.BoolPtr(true)}},
		{PartIndex: 1, Constraint: piece.Constraint{Bugged: piece.BoolPtr(true)}},
	}
	settings := grid.Settings{Height: 3, Width: 3, HasOOB: false, CommandLineRow: 0}

	g := grid.New(settings)
	g, ok := g.Place(shape, grid.Position{X: 0, Y: 0}, 0)
	require.True(t, ok)
	g, ok = g.Place(shape, grid.Position{X: 2, Y: 2}, 1)
	require.True(t, ok)

	assert.False(t, admiss.Solution(parts, requirements, g))
}

func TestSolution_MissingYZeroArmIsReproducedVerbatim(t *testing.T) {
	// A single cell at row 0 (y==0) is, by the documented rectangle test,
	// NOT flagged out-of-bounds, because the y==0 arm is absent from the
	// whole-solution test. Pinning "not bugged" here would fail if the
	// missing arm were ever "corrected". The part is non-solid and off the
	// command line, so solidity does not make it bugged either.
	shape := mask.New(1, 1, []bool{true})
	part := piece.Part{IsSolid: false, Color: 0, CompressedMask: shape, UncompressedMask: shape}
	parts := []piece.Part{part}
	requirements := []piece.Requirement{
		{PartIndex: 0, Constraint: piece.Constraint{Bugged: piece.BoolPtr(false)}},
	}
	settings := grid.Settings{Height: 5, Width: 5, HasOOB: true, CommandLineRow: 2}

	g := grid.New(settings)
	g, ok := g.Place(shape, grid.Position{X: 2, Y: 0}, 0)
	require.True(t, ok)

	assert.True(t, admiss.Solution(parts, requirements, g))
}
