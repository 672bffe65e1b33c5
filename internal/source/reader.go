package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Table is the raw cell grid of a workbook's first sheet. Rows may be shorter
// than Headers because readers trim trailing empty cells.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]string
}

// maxRows caps how many data rows are read from a legacy xls sheet.
const maxRows = 1 << 20

// ReadWorkbook parses workbook bytes into the first sheet's cell grid. Cell
// values arrive as the formatted strings the spreadsheet displays, so time
// cells read like "2:30:00" and dates like their display format.
func ReadWorkbook(data []byte, filename string) (*Table, error) {
	switch Detect(data, filename) {
	case FormatXLSX:
		return readXLSX(data)
	case FormatXLS:
		return readXLS(data)
	default:
		return nil, fmt.Errorf("unsupported workbook format: %s", filepath.Base(filename))
	}
}

// ReadFile reads a workbook from disk, for the boot-time preload.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	return ReadWorkbook(data, path)
}

func readXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return tableFromRows(sheets[0], rows)
}

func readXLS(data []byte) (*Table, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("xls has no sheets")
	}
	if sheet.MaxRow == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet.Name)
	}
	// ReadAllCells concatenates every sheet in the workbook; only the
	// first MaxRow+1 rows belong to the first sheet.
	rows := wb.ReadAllCells(maxRows)
	if n := int(sheet.MaxRow) + 1; len(rows) > n {
		rows = rows[:n]
	}
	return tableFromRows(sheet.Name, rows)
}

func tableFromRows(sheet string, rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}
	return &Table{Sheet: sheet, Headers: rows[0], Rows: rows[1:]}, nil
}
