package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessforge/gridfit/grid"
	"github.com/tessforge/gridfit/mask"
	"github.com/tessforge/gridfit/piece"
	"github.com/tessforge/gridfit/solver"
)

func superArmor3x3() mask.Mask {
	return mask.New(3, 3, []bool{
		true, false, false,
		true, true, false,
		true, false, false,
	})
}

func drainAll(c *solver.Cursor) []piece.Solution {
	var out []piece.Solution
	for {
		sol, ok := c.Next()
		if !ok {
			break
		}
		out = append(out, sol)
	}

	return out
}

func TestSolve_SingleSpinnablePartYieldsEightSolutions(t *testing.T) {
	shape := superArmor3x3()
	parts := []piece.Part{
		{IsSolid: true, Color: 0, CompressedMask: shape, UncompressedMask: shape},
	}
	requirements := []piece.Requirement{
		{PartIndex: 0, Constraint: piece.Constraint{
			Compressed:    piece.BoolPtr(true),
			OnCommandLine: piece.BoolPtr(true),
			Bugged:        piece.BoolPtr(false),
		}},
	}
	settings := grid.Settings{Height: 3, Width: 3, HasOOB: false, CommandLineRow: 1}

	c := solver.Solve(parts, requirements, settings, []bool{true})
	solutions := drainAll(c)

	assert.Len(t, solutions, 8)
	for _, s := range solutions {
		require.Len(t, s, 1)
	}
}

func TestSolve_NoRequirementsYieldsOneEmptySolution(t *testing.T) {
	settings := grid.Settings{Height: 3, Width: 3, HasOOB: false, CommandLineRow: 0}

	c := solver.Solve(nil, nil, settings, nil)
	solutions := drainAll(c)

	require.Len(t, solutions, 1)
	assert.Empty(t, solutions[0])
}

func TestSolve_CommandLineRowOutsideGridIsInfeasible(t *testing.T) {
	settings := grid.Settings{Height: 3, Width: 3, HasOOB: false, CommandLineRow: 5}

	c := solver.Solve(nil, []piece.Requirement{{PartIndex: 0}}, settings, nil)
	_, ok := c.Next()
	assert.False(t, ok)
}

func TestSolve_TooManyOnCommandLineRequirementsIsInfeasible(t *testing.T) {
	shape := mask.New(1, 1, []bool{true})
	part := piece.Part{IsSolid: true, Color: 0, CompressedMask: shape, UncompressedMask: shape}
	parts := []piece.Part{part}

	requirements := make([]piece.Requirement, 5)
	for i := range requirements {
		requirements[i] = piece.Requirement{PartIndex: 0, Constraint: piece.Constraint{OnCommandLine: piece.BoolPtr(true)}}
	}
	settings := grid.Settings{Height: 3, Width: 3, HasOOB: false, CommandLineRow: 0}

	c := solver.Solve(parts, requirements, settings, nil)
	_, ok := c.Next()
	assert.False(t, ok)
}

func TestSolve_RequirementsExceedingGridCapacityIsInfeasible(t *testing.T) {
	shape := mask.New(3, 3, []bool{
		true, true, true,
		true, true, true,
		true, true, true,
	})
	part := piece.Part{IsSolid: true, Color: 0, CompressedMask: shape, UncompressedMask: shape}
	parts := []piece.Part{part, part}
	requirements := []piece.Requirement{{PartIndex: 0}, {PartIndex: 1}}
	settings := grid.Settings{Height: 3, Width: 3, HasOOB: false, CommandLineRow: 0}

	c := solver.Solve(parts, requirements, settings, nil)
	_, ok := c.Next()
	assert.False(t, ok)
}

func TestSolve_HardestRequirementSearchedFirst(t *testing.T) {
	// Two parts: a 1x1 dot (many candidate positions) and a shape that fits
	// in exactly one spot once oriented, forcing the sort to put the dot's
	// requirement second despite appearing first in requirements.
	dot := mask.New(1, 1, []bool{true})
	full := mask.New(3, 3, []bool{
		true, true, true,
		true, true, true,
		true, true, false,
	})
	parts := []piece.Part{
		{IsSolid: true, Color: 0, CompressedMask: dot, UncompressedMask: dot},
		{IsSolid: true, Color: 1, CompressedMask: full, UncompressedMask: full},
	}
	requirements := []piece.Requirement{
		{PartIndex: 0},
		{PartIndex: 1},
	}
	settings := grid.Settings{Height: 3, Width: 3, HasOOB: false, CommandLineRow: 0}

	c := solver.Solve(parts, requirements, settings, nil)
	solutions := drainAll(c)

	require.NotEmpty(t, solutions)
	for _, s := range solutions {
		require.Len(t, s, 2)
	}
}
