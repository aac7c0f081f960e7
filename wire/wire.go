// Package wire defines the JSON-taggable mirror of the puzzle types
// exchanged across the host boundary (file I/O, CLI, future RPC) and the
// validating converters between it and the internal domain types in
// mask, grid, piece. Internal packages never carry marshalling tags;
// every encoding concern lives here.
package wire

import (
	"errors"
	"fmt"

	"github.com/tessforge/gridfit/grid"
	"github.com/tessforge/gridfit/mask"
	"github.com/tessforge/gridfit/piece"
)

// Sentinel errors returned by FromWire, always wrapped with fmt.Errorf so
// callers get field/index context while still being able to errors.Is
// against the sentinel.
var (
	ErrMaskShape      = errors.New("wire: mask cell count does not match height*width")
	ErrPartIndex      = errors.New("wire: requirement references an out-of-range part index")
	ErrCommandLineRow = errors.New("wire: command line row is outside the grid")
	ErrDimensions     = errors.New("wire: height and width must be positive")
)

// Mask mirrors mask.Mask for JSON exchange.
type Mask struct {
	Height int    `json:"height"`
	Width  int    `json:"width"`
	Cells  []bool `json:"cells"`
}

// Part mirrors piece.Part.
type Part struct {
	IsSolid          bool `json:"is_solid"`
	Color            int  `json:"color"`
	CompressedMask   Mask `json:"compressed_mask"`
	UncompressedMask Mask `json:"uncompressed_mask"`
}

// Constraint mirrors piece.Constraint; all three fields are optional.
type Constraint struct {
	Compressed    *bool `json:"compressed,omitempty"`
	OnCommandLine *bool `json:"on_command_line,omitempty"`
	Bugged        *bool `json:"bugged,omitempty"`
}

// Requirement mirrors piece.Requirement.
type Requirement struct {
	PartIndex  int        `json:"part_index"`
	Constraint Constraint `json:"constraint"`
}

// Settings mirrors grid.Settings.
type Settings struct {
	Height         int  `json:"height"`
	Width          int  `json:"width"`
	HasOOB         bool `json:"has_oob"`
	CommandLineRow int  `json:"command_line_row"`
}

// Position mirrors grid.Position.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Placement mirrors piece.Placement.
type Placement struct {
	Position   Position `json:"position"`
	Rotation   int      `json:"rotation"`
	Compressed bool     `json:"compressed"`
}

// Solution mirrors piece.Solution.
type Solution []Placement

// Puzzle is the complete input document: everything Solve needs.
type Puzzle struct {
	Parts           []Part        `json:"parts"`
	Requirements    []Requirement `json:"requirements"`
	Settings        Settings      `json:"settings"`
	SpinnableColors []bool        `json:"spinnable_colors"`
}

func maskFromWire(m Mask) (mask.Mask, error) {
	if len(m.Cells) != m.Height*m.Width {
		return mask.Mask{}, fmt.Errorf("%w: got %d cells for %dx%d", ErrMaskShape, len(m.Cells), m.Height, m.Width)
	}

	return mask.New(m.Height, m.Width, m.Cells), nil
}

func maskToWire(m mask.Mask) Mask {
	return Mask{Height: m.Height, Width: m.Width, Cells: m.Cells}
}

// FromWire validates and converts a Puzzle into the internal types
// accepted by solver.Solve.
func FromWire(p Puzzle) ([]piece.Part, []piece.Requirement, grid.Settings, []bool, error) {
	if p.Settings.Height <= 0 || p.Settings.Width <= 0 {
		return nil, nil, grid.Settings{}, nil, fmt.Errorf("%w: height=%d width=%d", ErrDimensions, p.Settings.Height, p.Settings.Width)
	}
	if p.Settings.CommandLineRow < 0 || p.Settings.CommandLineRow >= p.Settings.Height {
		return nil, nil, grid.Settings{}, nil, fmt.Errorf("%w: row=%d height=%d", ErrCommandLineRow, p.Settings.CommandLineRow, p.Settings.Height)
	}

	parts := make([]piece.Part, len(p.Parts))
	for i, wp := range p.Parts {
		compressed, err := maskFromWire(wp.CompressedMask)
		if err != nil {
			return nil, nil, grid.Settings{}, nil, fmt.Errorf("wire: part %d compressed mask: %w", i, err)
		}
		uncompressed, err := maskFromWire(wp.UncompressedMask)
		if err != nil {
			return nil, nil, grid.Settings{}, nil, fmt.Errorf("wire: part %d uncompressed mask: %w", i, err)
		}
		parts[i] = piece.Part{
			IsSolid:          wp.IsSolid,
			Color:            wp.Color,
			CompressedMask:   compressed,
			UncompressedMask: uncompressed,
		}
	}

	requirements := make([]piece.Requirement, len(p.Requirements))
	for i, wr := range p.Requirements {
		if wr.PartIndex < 0 || wr.PartIndex >= len(parts) {
			return nil, nil, grid.Settings{}, nil, fmt.Errorf("%w: requirement %d references part %d (have %d parts)", ErrPartIndex, i, wr.PartIndex, len(parts))
		}
		requirements[i] = piece.Requirement{
			PartIndex: wr.PartIndex,
			Constraint: piece.Constraint{
				Compressed:    wr.Constraint.Compressed,
				OnCommandLine: wr.Constraint.OnCommandLine,
				Bugged:        wr.Constraint.Bugged,
			},
		}
	}

	settings := grid.Settings{
		Height:         p.Settings.Height,
		Width:          p.Settings.Width,
		HasOOB:         p.Settings.HasOOB,
		CommandLineRow: p.Settings.CommandLineRow,
	}

	return parts, requirements, settings, p.SpinnableColors, nil
}

// ToWire converts one internal Solution to its JSON-taggable mirror.
func ToWire(s piece.Solution) Solution {
	out := make(Solution, len(s))
	for i, p := range s {
		out[i] = Placement{
			Position:   Position{X: p.Loc.Position.X, Y: p.Loc.Position.Y},
			Rotation:   p.Loc.Rotation,
			Compressed: p.Compressed,
		}
	}

	return out
}

// PartToWire converts one internal Part back to its JSON-taggable mirror,
// useful when a caller needs to echo input alongside solver output.
func PartToWire(p piece.Part) Part {
	return Part{
		IsSolid:          p.IsSolid,
		Color:            p.Color,
		CompressedMask:   maskToWire(p.CompressedMask),
		UncompressedMask: maskToWire(p.UncompressedMask),
	}
}
