package clean

import (
	"fmt"
	"strconv"

	"github.com/startwise/eventscribe/internal/model"
	"github.com/startwise/eventscribe/internal/sheet"
)

// Pass2 finalizes the table for export: working-only fields are cleared,
// each row gets its new sequential ID (0-based), and the table is written
// to path in the canonical column order. The schema is validated before
// any file is touched.
func Pass2(table *model.Table, path string) error {
	for i := range table.Rows {
		row := &table.Rows[i]
		row.Extra = ""
		row.Guests = 0
		row.SourceURL = ""
		row.SourceCURL = ""
		row.SourceTURL = ""
		row.ID = strconv.Itoa(i)
		row.Index = i
	}

	records, err := table.Records(model.ExportColumns)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := sheet.Write(path, model.ExportColumns, records); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
