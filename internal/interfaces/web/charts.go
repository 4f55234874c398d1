package web

import (
	"bytes"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/clubstats/statsboard/internal/domain/teamstats"
)

var chartPalette = []drawing.Color{
	drawing.ColorFromHex("4da3ff"),
	drawing.ColorFromHex("101826"),
}

// renderPossessionChart draws the possession split of one match as a donut.
func renderPossessionChart(stats []teamstats.MatchStats) ([]byte, error) {
	if len(stats) == 0 {
		return renderChartPlaceholder("No data for this selection.")
	}

	values := make([]chart.Value, 0, len(stats))
	for i, s := range stats {
		values = append(values, chart.Value{
			Value: s.PossessionPct,
			Label: s.TeamName + " " + strconv.FormatFloat(s.PossessionPct, 'f', 0, 64) + "%",
			Style: chart.Style{FillColor: chartPalette[i%len(chartPalette)]},
		})
	}

	graph := chart.DonutChart{
		Width:  480,
		Height: 360,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderGoalsChart draws one team's goals per match chronologically.
func renderGoalsChart(points []teamstats.GoalsByMatch) ([]byte, error) {
	if len(points) == 0 {
		return renderChartPlaceholder("No data for this selection.")
	}

	bars := make([]chart.Value, 0, len(points))
	for _, p := range points {
		bars = append(bars, chart.Value{
			Value: float64(p.GoalsScored),
			Label: "M" + strconv.Itoa(p.MatchNumber),
			Style: chart.Style{FillColor: chartPalette[0]},
		})
	}

	graph := chart.BarChart{
		Width:    640,
		Height:   360,
		BarWidth: 40,
		Bars:     bars,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxGoals(points) + 1},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderChartPlaceholder(msg string) ([]byte, error) {
	graph := chart.Chart{
		Width:  480,
		Height: 200,
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, _ chart.Style) {
				r.SetFontColor(drawing.ColorFromHex("5c6b80"))
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func maxGoals(points []teamstats.GoalsByMatch) float64 {
	max := 0
	for _, p := range points {
		if p.GoalsScored > max {
			max = p.GoalsScored
		}
	}
	return float64(max)
}
