package report

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Bars run young to old left to right; the fill darkens with the team's
// unweighted roster age, so a dark bar on the left marks a team whose bench
// is older than its minutes leaders.
var (
	rampLow  = drawing.Color{R: 0x9e, G: 0xca, B: 0xe1, A: 0xff}
	rampHigh = drawing.Color{R: 0x08, G: 0x51, B: 0x9c, A: 0xff}
)

// ChartRenderer draws the weighted team ages as a bar chart PNG.
type ChartRenderer struct {
	Width    int
	Height   int
	BarWidth int
}

// NewChartRenderer creates a ChartRenderer with defaults sized for a full
// thirty-team league.
func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{
		Width:    1280,
		Height:   720,
		BarWidth: 28,
	}
}

func (r *ChartRenderer) Name() string {
	return "team_age_chart.png"
}

// Render draws one bar per team, ascending by weighted mean age. Teams
// without a weighted mean are left out of the chart; the tables still carry
// them.
func (r *ChartRenderer) Render(rep *Report) ([]byte, error) {
	groups := rep.Summary.SortedByWeightedMean()

	minWeighted, maxWeighted := math.Inf(1), math.Inf(-1)
	minRoster, maxRoster := math.Inf(1), math.Inf(-1)
	charted := 0
	for _, g := range groups {
		if !g.HasWeightedMean {
			continue
		}
		charted++
		minWeighted = math.Min(minWeighted, g.WeightedMean)
		maxWeighted = math.Max(maxWeighted, g.WeightedMean)
		minRoster = math.Min(minRoster, g.Mean)
		maxRoster = math.Max(maxRoster, g.Mean)
	}
	if charted == 0 {
		return nil, fmt.Errorf("no teams with a weighted mean age to chart")
	}

	bars := make([]chart.Value, 0, charted)
	for _, g := range groups {
		if !g.HasWeightedMean {
			continue
		}
		fill := rampColor(unitPosition(g.Mean, minRoster, maxRoster))
		bars = append(bars, chart.Value{
			Label: g.Key,
			Value: g.WeightedMean,
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill,
				StrokeWidth: 0,
			},
		})
	}

	// Zoom the value axis onto the occupied range; from zero every NBA
	// roster looks the same age.
	floor := math.Floor(minWeighted) - 1
	ceiling := math.Ceil(maxWeighted)
	if ceiling <= maxWeighted {
		ceiling++
	}

	graph := chart.BarChart{
		Title: fmt.Sprintf("Average Age of NBA Teams, %s Season", SeasonLabel(rep.Season)),
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Width:        r.Width,
		Height:       r.Height,
		BarWidth:     r.BarWidth,
		UseBaseValue: true,
		BaseValue:    floor,
		Bars:         bars,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: floor, Max: ceiling},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	return buf.Bytes(), nil
}

// unitPosition maps v into [0, 1] within [lo, hi], using the midpoint when
// the range collapses.
func unitPosition(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

func rampColor(t float64) drawing.Color {
	blend := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return drawing.Color{
		R: blend(rampLow.R, rampHigh.R),
		G: blend(rampLow.G, rampHigh.G),
		B: blend(rampLow.B, rampHigh.B),
		A: 0xff,
	}
}
