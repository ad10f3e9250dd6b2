package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Invoice Register"

// WriteWorkbook renders the register records as an XLSX workbook with a
// frozen header row. Monetary columns carry numeric cells so spreadsheet
// formulas work on them directly.
func WriteWorkbook(w io.Writer, records []Record) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("export.WriteWorkbook: %w", err)
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return fmt.Errorf("export.WriteWorkbook: header: %w", err)
		}
	}

	for r := range records {
		row := recordToRow(&records[r])
		for c, val := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheetName, cell, cellValue(c, val)); err != nil {
				return fmt.Errorf("export.WriteWorkbook: row %d: %w", r+1, err)
			}
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("export.WriteWorkbook: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.WriteWorkbook: %w", err)
	}
	return nil
}

// cellValue converts numeric columns to native numbers; everything else
// stays a string.
func cellValue(col int, val string) any {
	switch col {
	case 0, 6: // Invoice Number, Line Item Count
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	case 7, 8, 9, 10, 11, 12: // monetary columns
		if n, err := strconv.ParseFloat(val, 64); err == nil {
			return n
		}
	}
	return val
}
