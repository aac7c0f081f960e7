// Package solver implements the depth-first backtracking search: given
// parts, requirements, grid settings, and spinnable colors, it lazily
// yields every distinct Solution, de-duplicated by part-topology.
package solver

import (
	"sort"

	"github.com/tessforge/gridfit/candidates"
	"github.com/tessforge/gridfit/admiss"
	"github.com/tessforge/gridfit/grid"
	"github.com/tessforge/gridfit/piece"
)

// Cursor is a stateful, pull-based, restartable-once solution stream. Call
// Next repeatedly; it returns (solution, true) for each match and
// (nil, false) once the search is exhausted. Computing the next solution
// performs work synchronously until the next yield.
type Cursor struct {
	parts        []piece.Part
	requirements []piece.Requirement
	settings     grid.Settings

	// reqIdxAtDepth[d] is the original requirement index assigned to
	// search depth d, after the hardest-first sort.
	reqIdxAtDepth []int
	candAtDepth   [][]candidates.Candidate

	stack   []frame
	chosen  []piece.Placement // indexed by original requirement index
	visited *visitedSet

	// Handles the zero-requirements edge case: solve() over no
	// requirements yields exactly one (empty) solution, then is done.
	noRequirements    bool
	emittedEmptyOnce  bool
	infeasible        bool
}

type frame struct {
	grid *grid.Grid
	idx  int
}

// Solve builds a Cursor over every legal complete placement of
// requirements (in original order) onto a grid built from settings.
// spinnableColors[c] enables all four rotations for parts of color c;
// missing tail entries default to false.
//
// Pre-checks that make the search immediately infeasible result in a
// Cursor whose first Next() call returns (nil, false).
func Solve(parts []piece.Part, requirements []piece.Requirement, settings grid.Settings, spinnableColors []bool) *Cursor {
	c := &Cursor{
		parts:        parts,
		requirements: requirements,
		settings:     settings,
		chosen:       make([]piece.Placement, len(requirements)),
		visited:      newVisitedSet(),
	}

	if settings.CommandLineRow >= settings.Height {
		c.infeasible = true
		return c
	}

	if !requirementsAreAdmissible(parts, requirements, settings) {
		c.infeasible = true
		return c
	}

	if len(requirements) == 0 {
		c.noRequirements = true
		return c
	}

	type indexed struct {
		idx   int
		cands []candidates.Candidate
	}
	ordered := make([]indexed, len(requirements))
	for i, req := range requirements {
		part := parts[req.PartIndex]
		spinnable := part.Color < len(spinnableColors) && spinnableColors[part.Color]
		ordered[i] = indexed{idx: i, cands: candidates.ForPart(part, settings, req.Constraint, spinnable)}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].cands) < len(ordered[j].cands)
	})

	c.reqIdxAtDepth = make([]int, len(ordered))
	c.candAtDepth = make([][]candidates.Candidate, len(ordered))
	for d, e := range ordered {
		c.reqIdxAtDepth[d] = e.idx
		c.candAtDepth[d] = e.cands
	}

	c.stack = []frame{{grid: grid.New(settings), idx: 0}}

	return c
}

// Next advances the search and returns the next Solution, or (nil, false)
// once every candidate has been explored. Placements in the returned
// Solution are restored to original requirement order.
func (c *Cursor) Next() (piece.Solution, bool) {
	if c.infeasible {
		return nil, false
	}

	if c.noRequirements {
		if c.emittedEmptyOnce {
			return nil, false
		}
		c.emittedEmptyOnce = true

		return piece.Solution{}, true
	}

	numReq := len(c.requirements)

	for len(c.stack) > 0 {
		depth := len(c.stack) - 1
		top := &c.stack[depth]
		cands := c.candAtDepth[depth]

		if top.idx >= len(cands) {
			c.stack = c.stack[:depth]
			continue
		}

		cand := cands[top.idx]
		top.idx++

		reqIdx := c.reqIdxAtDepth[depth]
		req := c.requirements[reqIdx]
		part := c.parts[req.PartIndex]

		nextGrid, ok := top.grid.Place(cand.Mask, cand.Placement.Loc.Position, reqIdx)
		if !ok {
			continue
		}

		if !admiss.Placement(nextGrid, part.IsSolid, reqIdx, req.Constraint.OnCommandLine, req.Constraint.Bugged) {
			continue
		}

		topo := topology(nextGrid, c.requirements)
		if c.visited.observe(topo) {
			continue
		}

		c.chosen[reqIdx] = cand.Placement

		if depth+1 == numReq {
			if !admiss.Solution(c.parts, c.requirements, nextGrid) {
				continue
			}

			return c.emit(), true
		}

		c.stack = append(c.stack, frame{grid: nextGrid, idx: 0})
	}

	return nil, false
}

func (c *Cursor) emit() piece.Solution {
	out := make(piece.Solution, len(c.chosen))
	copy(out, c.chosen)

	return out
}

// requirementsAreAdmissible runs the two cheap whole-problem feasibility
// checks before any search begins.
func requirementsAreAdmissible(parts []piece.Part, requirements []piece.Requirement, settings grid.Settings) bool {
	onCommandLineCount := 0
	totalCells := 0

	for _, req := range requirements {
		if req.Constraint.OnCommandLine != nil && *req.Constraint.OnCommandLine {
			onCommandLineCount++
		}

		part := parts[req.PartIndex]
		m := part.CompressedMask
		if req.Constraint.Compressed != nil && !*req.Constraint.Compressed {
			m = part.UncompressedMask
		}
		for _, v := range m.Cells {
			if v {
				totalCells++
			}
		}
	}

	if onCommandLineCount > settings.Width {
		return false
	}

	capacity := settings.Width * settings.Height
	if settings.HasOOB {
		capacity -= 4
	}

	return totalCells <= capacity
}
