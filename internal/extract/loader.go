package extract

import (
	"fmt"
	"time"

	"github.com/startwise/eventscribe/internal/model"
)

// LoadRows converts events into the pipeline's row table. An event is kept
// iff its start date falls within [start, end] (inclusive, by calendar
// date) and it has an organizer; everything else is silently skipped.
// Output order follows input order.
func LoadRows(events []model.Event, start, end time.Time) *model.Table {
	startDate := truncateToDate(start)
	endDate := truncateToDate(end)

	table := &model.Table{}
	for _, event := range events {
		date := truncateToDate(event.Start)
		if date.Before(startDate) || date.After(endDate) {
			continue
		}
		if !event.HasOrganizer() {
			continue
		}

		table.Rows = append(table.Rows, model.Row{
			Index:     len(table.Rows),
			SourceID:  event.UID,
			Title:     event.Title,
			Date:      date,
			Duration:  formatDuration(event.Duration),
			Organizer: event.Organizer,
			Guests:    len(event.Attendees),
			Extra:     event.Extra,
		})
	}
	return table
}

// formatDuration renders a duration as "{hours}:{minutes}" with no zero
// padding: 1h05m is "1:5". Whole hours, then whole minutes of the
// remainder, both floored.
func formatDuration(d time.Duration) string {
	seconds := int64(d.Seconds())
	hours := seconds / 3600
	mins := (seconds % 3600) / 60
	return fmt.Sprintf("%d:%d", hours, mins)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
