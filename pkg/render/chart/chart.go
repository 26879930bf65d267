// Package chart renders report series as PNG images for embedding in the PDF
// document.
package chart

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	width  = 900
	height = 450
)

// Bar renders a labeled bar chart as PNG bytes.
func Bar(title string, labels []string, values []float64) ([]byte, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("bar chart %q: empty series", title)
	}
	if len(labels) != len(values) {
		return nil, fmt.Errorf("bar chart %q: %d labels for %d values", title, len(labels), len(values))
	}

	bars := make([]chart.Value, 0, len(values))
	for i, v := range values {
		bars = append(bars, chart.Value{Label: labels[i], Value: v})
	}

	graph := chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     height,
		BarWidth:   60,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Bars:       bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bar chart %q: %w", title, err)
	}
	return buf.Bytes(), nil
}

// Line renders a labeled line chart as PNG bytes. Points are plotted at
// 1-based x positions with one tick per label.
func Line(title string, labels []string, values []float64) ([]byte, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("line chart %q: empty series", title)
	}
	if len(labels) != len(values) {
		return nil, fmt.Errorf("line chart %q: %d labels for %d values", title, len(labels), len(values))
	}

	xs := make([]float64, len(values))
	ticks := make([]chart.Tick, 0, len(values))
	for i := range values {
		xs[i] = float64(i + 1)
		ticks = append(ticks, chart.Tick{Value: float64(i + 1), Label: labels[i]})
	}

	graph := chart.Chart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		XAxis:      chart.XAxis{Ticks: ticks},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: values,
				Style:   chart.Style{StrokeWidth: 2, DotWidth: 4},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render line chart %q: %w", title, err)
	}
	return buf.Bytes(), nil
}
