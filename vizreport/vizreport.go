// Package vizreport renders one solution as a self-contained HTML page
// holding a heat-map-style grid of part colors, and maps part colors to hex
// colors for callers that draw their own legend. It is a pure function of
// its arguments and never calls into the solver.
package vizreport

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tessforge/gridfit/grid"
	"github.com/tessforge/gridfit/piece"
	"github.com/tessforge/gridfit/placeall"
)

// colorForIndex spaces distinct part colors evenly around the HSV hue
// ring so that adjacent colors never alias, regardless of how many
// distinct colors a puzzle uses.
func colorForIndex(i, total int) string {
	if total <= 0 {
		total = 1
	}
	hue := 360.0 * float64(i%total) / float64(total)
	c := colorful.Hsv(hue, 0.65, 0.9)

	return c.Hex()
}

// Write renders solution as an HTML page into w: a grid heat-map with one
// data point per cell whose value is the color index of the part occupying
// it, or -1 for an Empty or Forbidden cell; the chart's piecewise visual map
// picks the displayed colors. The page holds only this chart: it has no
// legend table and does not use the hue-ring colors that Legend reports.
func Write(w io.Writer, parts []piece.Part, requirements []piece.Requirement, settings grid.Settings, solution piece.Solution) error {
	occupied, ok := placeall.PlaceAll(parts, requirements, solution, settings)
	if !ok {
		return fmt.Errorf("vizreport: solution does not replay onto a fresh grid")
	}

	xAxis := make([]string, settings.Width)
	for x := 0; x < settings.Width; x++ {
		xAxis[x] = fmt.Sprintf("%d", x)
	}
	yAxis := make([]string, settings.Height)
	for y := 0; y < settings.Height; y++ {
		yAxis[y] = fmt.Sprintf("%d", y)
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Placement solution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xAxis, SplitArea: &opts.SplitArea{Show: opts.Bool(true)}}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: yAxis, SplitArea: &opts.SplitArea{Show: opts.Bool(true)}}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:       "piecewise",
			Calculable: opts.Bool(true),
		}),
	)

	data := make([]opts.HeatMapData, 0, settings.Height*settings.Width)
	for y := 0; y < settings.Height; y++ {
		for x := 0; x < settings.Width; x++ {
			reqIdx := occupied[y*settings.Width+x]
			value := -1
			if reqIdx != nil {
				value = parts[requirements[*reqIdx].PartIndex].Color
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{x, y, value}})
		}
	}
	hm.AddSeries("occupancy", data)

	legend := components.NewPage().SetPageTitle("gridfit solution report")
	legend.AddCharts(hm)

	return legend.Render(w)
}

// Legend reports the hex color assigned to each color index used by parts
// — useful for a caller rendering its own legend alongside the HTML report.
// Hues are handed out in ascending color order, evenly spaced around the
// ring, so distinct part colors always get distinct hex colors.
func Legend(parts []piece.Part) map[int]string {
	distinct := map[int]bool{}
	for _, p := range parts {
		distinct[p.Color] = true
	}

	out := make(map[int]string, len(distinct))
	for c := range distinct {
		rank := 0
		for o := range distinct {
			if o < c {
				rank++
			}
		}
		out[c] = colorForIndex(rank, len(distinct))
	}

	return out
}
