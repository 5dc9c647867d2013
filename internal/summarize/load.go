package summarize

import (
	"fmt"
	"time"

	"github.com/startwise/eventscribe/internal/model"
	"github.com/startwise/eventscribe/internal/sheet"
)

// LoadExport reads a previously exported spreadsheet back into a row
// table. A Transcript column is required, since the summarization pipeline
// has nothing to do without it; its absence fails with ErrSchemaViolation.
// Unknown columns are ignored.
func LoadExport(path string) (*model.Table, error) {
	columns, records, err := sheet.Read(path)
	if err != nil {
		return nil, fmt.Errorf("load export: %w", err)
	}

	colIndex := make(map[string]int, len(columns))
	for i, col := range columns {
		colIndex[col] = i
	}
	if _, ok := colIndex["Transcript"]; !ok {
		return nil, fmt.Errorf("load export %s: no Transcript column: %w", path, model.ErrSchemaViolation)
	}

	cell := func(record []string, col string) string {
		if i, ok := colIndex[col]; ok {
			return record[i]
		}
		return ""
	}

	table := &model.Table{}
	for i, record := range records {
		row := model.Row{
			Index:         i,
			ID:            cell(record, "ID"),
			SourceID:      cell(record, "Source_ID"),
			Title:         cell(record, "Title"),
			Duration:      cell(record, "Duration (hh:mm)"),
			Organizer:     cell(record, "Organizer"),
			Topics:        cell(record, "Topics"),
			Type:          cell(record, "Type"),
			SubType:       cell(record, "Sub-Type"),
			Routing:       cell(record, "Routing"),
			Comments:      cell(record, "Comments"),
			VideoURL:      cell(record, "video_url"),
			ChatURL:       cell(record, "chat_url"),
			TranscriptURL: cell(record, "transcript_url"),
			Transcript:    cell(record, "Transcript"),
			Summary:       cell(record, "Summary"),
		}
		if dateStr := cell(record, "Date"); dateStr != "" {
			date, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return nil, fmt.Errorf("load export %s row %d: parse date %q: %w", path, i, dateStr, err)
			}
			row.Date = date
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
