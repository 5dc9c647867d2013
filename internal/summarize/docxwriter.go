package summarize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"

	"github.com/startwise/eventscribe/internal/model"
)

const (
	reportFontName = "Times New Roman"
	reportFontSize = 13
	titleFontSize  = 16
)

// WriteReports writes one .docx per summarized row into dir: meeting
// title, date and organizer as a header, summary as body. Rows without a
// summary are skipped.
func WriteReports(dir string, table *model.Table) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	for _, row := range table.Rows {
		if row.Summary == "" {
			continue
		}
		if err := writeReport(dir, row); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(dir string, row model.Row) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("report for %s: %w", row.SourceID, err)
	}

	title := doc.AddParagraph("")
	title.AddText(row.Title).Font(reportFontName).Size(titleFontSize).Color("000000").Bold(true)

	meta := doc.AddParagraph("")
	meta.AddText(fmt.Sprintf("%s, %s", row.Date.Format("2006-01-02"), row.Organizer)).
		Font(reportFontName).Size(reportFontSize).Color("000000")

	doc.AddParagraph("")
	body := doc.AddParagraph("")
	body.AddText(row.Summary).Font(reportFontName).Size(reportFontSize).Color("000000")

	path := filepath.Join(dir, reportFilename(row))
	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save report %s: %w", path, err)
	}
	return nil
}

// reportFilename builds a filesystem-safe name from the row ID and title.
func reportFilename(row model.Row) string {
	title := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, row.Title)
	if title == "" {
		title = "meeting"
	}
	return fmt.Sprintf("%s-%s.docx", row.ID, title)
}
