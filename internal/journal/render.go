package journal

import (
	"fmt"
	"io"
	"time"

	"github.com/ashureev/mood-sense/internal/domain"
)

const dateLayout = "Jan 2, 2006"

// FormatEntry renders one history entry using the local date of its timestamp.
func FormatEntry(e domain.MoodEntry, loc *time.Location) string {
	date := e.Timestamp
	if t := e.Time(); !t.IsZero() {
		date = t.In(loc).Format(dateLayout)
	}

	line := fmt.Sprintf("%s  %d/%d  %s", date, e.Scale, domain.MaxScale, e.Description)
	if e.HasInsight() {
		line += "\n    " + e.Insight
	}
	return line
}

// RenderHistory writes the trend chart and every entry, newest first.
func RenderHistory(w io.Writer, history domain.MoodHistory, loc *time.Location) error {
	if history.Len() == 0 {
		_, err := fmt.Fprintln(w, "No entries yet.")
		return err
	}

	if chart := RenderChart(TrendSeries(history)); chart != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", chart); err != nil {
			return err
		}
	}
	for _, e := range history {
		if _, err := fmt.Fprintln(w, FormatEntry(e, loc)); err != nil {
			return err
		}
	}
	return nil
}
