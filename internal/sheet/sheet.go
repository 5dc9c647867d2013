// Package sheet reads and writes the pipeline's tabular .xlsx artifacts.
package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// Write creates an .xlsx file at path with a header row followed by one
// row per record. The write is all-or-nothing: the file only appears on
// success.
func Write(path string, columns []string, records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := setRow(f, 1, columns); err != nil {
		return err
	}
	for i, record := range records {
		if err := setRow(f, i+2, record); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("row %d: %w", rowNum, err)
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
		return fmt.Errorf("set row %d: %w", rowNum, err)
	}
	return nil
}

// Read loads an .xlsx file written by Write, returning the header row and
// the data records. Short rows are padded to the header width: excelize
// drops trailing empty cells, the callers expect rectangular data.
func Read(path string) (columns []string, records [][]string, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("read %s: no header row", path)
	}

	columns = rows[0]
	for _, row := range rows[1:] {
		for len(row) < len(columns) {
			row = append(row, "")
		}
		records = append(records, row[:len(columns)])
	}
	return columns, records, nil
}
