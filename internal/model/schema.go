package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchemaViolation is returned when an export schema column has no
// producing row field. The schema is a validated contract: a column that
// nothing can populate fails fast instead of surfacing as a bad file.
var ErrSchemaViolation = errors.New("schema violation")

// ExportColumns is the canonical export schema, in file order. Sub-Type
// and Comments are declared always-empty columns reserved for downstream
// editors of the sheet.
var ExportColumns = []string{
	"ID",
	"Source_ID",
	"Title",
	"Date",
	"Duration (hh:mm)",
	"Organizer",
	"Topics",
	"Type",
	"Sub-Type",
	"Routing",
	"Comments",
	"video_url",
	"chat_url",
	"transcript_url",
	"Transcript",
	"Summary",
}

// SummaryColumns is the schema of the summarization pipeline's output:
// the export schema plus the chunk column.
var SummaryColumns = append(append([]string{}, ExportColumns...), "Chunks")

// ChunkJoin separates chunks within the persisted Chunks cell. The split
// carries no meaning downstream; it only keeps the cell readable.
const ChunkJoin = "\n\n"

// fieldRegistry maps schema column names to row field accessors.
var fieldRegistry = map[string]func(Row) string{
	"ID":               func(r Row) string { return r.ID },
	"Source_ID":        func(r Row) string { return r.SourceID },
	"Title":            func(r Row) string { return r.Title },
	"Date":             func(r Row) string { return r.Date.Format("2006-01-02") },
	"Duration (hh:mm)": func(r Row) string { return r.Duration },
	"Organizer":        func(r Row) string { return r.Organizer },
	"Topics":           func(r Row) string { return r.Topics },
	"Type":             func(r Row) string { return r.Type },
	"Sub-Type":         func(r Row) string { return r.SubType },
	"Routing":          func(r Row) string { return r.Routing },
	"Comments":         func(r Row) string { return r.Comments },
	"video_url":        func(r Row) string { return r.VideoURL },
	"chat_url":         func(r Row) string { return r.ChatURL },
	"transcript_url":   func(r Row) string { return r.TranscriptURL },
	"Transcript":       func(r Row) string { return r.Transcript },
	"Summary":          func(r Row) string { return r.Summary },
	"Chunks":           func(r Row) string { return strings.Join(r.Chunks, ChunkJoin) },
}

// ValidateSchema checks that every column resolves through the field
// registry, returning ErrSchemaViolation for the first that does not.
func ValidateSchema(columns []string) error {
	for _, col := range columns {
		if _, ok := fieldRegistry[col]; !ok {
			return fmt.Errorf("column %q has no producing field: %w", col, ErrSchemaViolation)
		}
	}
	return nil
}

// Records renders the table against the given schema, one string record
// per row, after validating the schema.
func (t *Table) Records(columns []string) ([][]string, error) {
	if err := ValidateSchema(columns); err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = fieldRegistry[col](r)
		}
		records = append(records, record)
	}
	return records, nil
}
