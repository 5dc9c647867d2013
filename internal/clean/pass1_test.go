package clean

import (
	"testing"
	"time"

	"github.com/startwise/eventscribe/internal/model"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func row(index int, title string, date time.Time, sourceURL string) model.Row {
	return model.Row{Index: index, Title: title, Date: date, SourceURL: sourceURL}
}

func TestPass1(t *testing.T) {
	table := &model.Table{Rows: []model.Row{
		row(0, "Late meeting", day(2024, 5, 1), "video/mp4:https://drive.g/a"),
		row(1, "No recording", day(2024, 1, 2), model.NoVideo),
		row(2, "Early meeting", day(2024, 1, 1), "video/mp4:https://drive.g/b"),
		row(3, "Early meeting", day(2024, 1, 1), "video/mp4:https://drive.g/b"), // duplicate of 2
		row(4, "Weekly Pod Sync", day(2024, 2, 1), "video/mp4:https://drive.g/c"),
	}}

	Pass1(table)

	if table.Len() != 2 {
		t.Fatalf("len = %d, want 2: %+v", table.Len(), table.Rows)
	}
	if table.Rows[0].Title != "Early meeting" || table.Rows[1].Title != "Late meeting" {
		t.Errorf("rows not sorted by date: %+v", table.Rows)
	}
}

func TestPass1Idempotent(t *testing.T) {
	table := &model.Table{Rows: []model.Row{
		row(0, "A", day(2024, 1, 1), "video/mp4:https://drive.g/a"),
		row(1, "B", day(2024, 2, 1), "video/mp4:https://drive.g/b"),
	}}

	Pass1(table)
	first := append([]model.Row{}, table.Rows...)
	Pass1(table)

	if table.Len() != len(first) {
		t.Fatalf("second pass changed row count: %d != %d", table.Len(), len(first))
	}
	for i := range first {
		if !first[i].Equal(table.Rows[i]) || first[i].Index != table.Rows[i].Index {
			t.Errorf("row %d changed on second pass", i)
		}
	}
}

func TestIsPodTitle(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Weekly Pod Sync", true},
		{"Standups", false},
		{"tripod-test", true}, // substring, not word-boundary
		{"Tripod session", true},
		{"PODCAST", false}, // neither "pod" nor "Pod" matches "POD"
		{"pod", true},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := isPodTitle(tt.title); got != tt.want {
				t.Errorf("isPodTitle(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestPass1TitleFilterLiteral(t *testing.T) {
	table := &model.Table{Rows: []model.Row{
		row(0, "Weekly Pod Sync", day(2024, 1, 1), "v"),
		row(1, "Standups", day(2024, 1, 2), "v"),
		row(2, "tripod-test", day(2024, 1, 3), "v"),
	}}

	Pass1(table)

	if table.Len() != 1 || table.Rows[0].Title != "Standups" {
		t.Errorf("rows = %+v, want only Standups", table.Rows)
	}
}
