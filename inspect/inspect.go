// Package inspect drives an interactive, full-screen terminal view over a
// solver.Cursor: press n to pull the next solution, q or Ctrl-C to quit.
// It performs no search logic of its own — pulling the cursor is its only
// interaction with the core.
package inspect

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tessforge/gridfit/grid"
	"github.com/tessforge/gridfit/piece"
	"github.com/tessforge/gridfit/placeall"
	"github.com/tessforge/gridfit/solver"
)

// Run opens a terminal screen and drives it until the user quits. It
// returns nil on a clean quit, or the first screen/search error hit.
func Run(cursor *solver.Cursor, parts []piece.Part, requirements []piece.Requirement, settings grid.Settings) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	defer screen.Fini()

	current, ok := cursor.Next()
	exhausted := !ok
	index := 0
	if ok {
		index = 1
	}

	render(screen, parts, requirements, settings, current, exhausted, index)

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			render(screen, parts, requirements, settings, current, exhausted, index)

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'n':
				if exhausted {
					continue
				}
				current, ok = cursor.Next()
				if !ok {
					exhausted = true
				} else {
					index++
				}
				render(screen, parts, requirements, settings, current, exhausted, index)
			}
		}
	}
}

func render(screen tcell.Screen, parts []piece.Part, requirements []piece.Requirement, settings grid.Settings, solution piece.Solution, exhausted bool, index int) {
	screen.Clear()

	header := fmt.Sprintf("solution %d  (n: next, q: quit)", index)
	if exhausted {
		header = "search exhausted (q: quit)"
	}
	drawText(screen, 0, 0, tcell.StyleDefault, header)

	if solution == nil && !exhausted {
		screen.Show()
		return
	}

	occupied, ok := placeall.PlaceAll(parts, requirements, solution, settings)
	if !ok {
		drawText(screen, 0, 2, tcell.StyleDefault.Foreground(tcell.ColorRed), "solution failed to replay")
		screen.Show()
		return
	}

	distinctColors := map[int]bool{}
	for _, p := range parts {
		distinctColors[p.Color] = true
	}
	colorRank := make(map[int]int, len(distinctColors))
	for c := range distinctColors {
		for o := range distinctColors {
			if o < c {
				colorRank[c]++
			}
		}
	}

	for y := 0; y < settings.Height; y++ {
		for x := 0; x < settings.Width; x++ {
			reqIdx := occupied[y*settings.Width+x]
			style := tcell.StyleDefault
			ch := '.'
			if reqIdx != nil {
				part := parts[requirements[*reqIdx].PartIndex]
				style = style.Foreground(terminalColor(colorRank[part.Color], len(distinctColors)))
				ch = '#'
			}
			screen.SetContent(x, y+2, ch, nil, style)
		}
	}

	screen.Show()
}

func terminalColor(colorIndex, total int) tcell.Color {
	if total <= 0 {
		total = 1
	}
	hue := 360.0 * float64(colorIndex%total) / float64(total)
	c := colorful.Hsv(hue, 0.65, 0.9)

	return tcell.NewRGBColor(int32(c.R*255), int32(c.G*255), int32(c.B*255))
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
