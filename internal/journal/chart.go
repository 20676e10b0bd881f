package journal

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/ashureev/mood-sense/internal/domain"
)

// TrendWindow is the number of most recent entries plotted.
const TrendWindow = 7

// TrendSeries returns the scales of the most recent entries, oldest first.
// It is empty when fewer than two entries exist.
func TrendSeries(history domain.MoodHistory) []float64 {
	if history.Len() < 2 {
		return []float64{}
	}
	recent := history.Recent(TrendWindow)
	series := make([]float64, len(recent))
	for i, e := range recent {
		series[len(recent)-1-i] = float64(e.Scale)
	}
	return series
}

// RenderChart plots series on a fixed 1..5 axis. An empty series renders "".
func RenderChart(series []float64) string {
	if len(series) == 0 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Height(domain.MaxScale-domain.MinScale),
		asciigraph.LowerBound(domain.MinScale),
		asciigraph.UpperBound(domain.MaxScale),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("Mood trend (last %d)", len(series))),
	)
}
