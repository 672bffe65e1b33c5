package source

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bodegalabs/recuento/backend/internal/analytics"
	"github.com/bodegalabs/recuento/backend/internal/types"
)

func buildXLSX(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName: %v", err)
		}
		r := row
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		filename string
		want     Format
	}{
		{"zip magic", []byte{0x50, 0x4B, 0x03, 0x04, 0x00}, "upload.bin", FormatXLSX},
		{"ole magic", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00}, "upload.bin", FormatXLS},
		{"extension fallback xls", []byte("not a workbook"), "Tareas.XLS", FormatXLS},
		{"extension fallback xlsx", nil, "tareas.xlsx", FormatXLSX},
		{"unknown", []byte("plain text"), "tareas.txt", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.data, tt.filename); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestReadWorkbookXLSX(t *testing.T) {
	data := buildXLSX(t, [][]interface{}{
		{"Cliente", "Total Horas", "Contador"},
		{"Acme", "2:30:00", "ana"},
		{"Beta", "1:00:00", "luis"},
	})

	table, err := ReadWorkbook(data, "tareas.xlsx")
	if err != nil {
		t.Fatalf("ReadWorkbook() error = %v", err)
	}
	if table.Sheet != "Sheet1" {
		t.Errorf("Sheet = %q, want Sheet1", table.Sheet)
	}
	if len(table.Headers) != 3 || table.Headers[0] != "Cliente" {
		t.Errorf("Headers = %v", table.Headers)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(table.Rows))
	}
	if table.Rows[0][1] != "2:30:00" {
		t.Errorf("duration cell = %q, want the formatted string", table.Rows[0][1])
	}
}

func TestReadWorkbookUnsupported(t *testing.T) {
	if _, err := ReadWorkbook([]byte("plain text"), "notas.txt"); err == nil {
		t.Error("ReadWorkbook() accepted a non-workbook payload")
	}
}

func TestReadWorkbookEmptySheet(t *testing.T) {
	data := buildXLSX(t, nil)
	if _, err := ReadWorkbook(data, "tareas.xlsx"); err == nil {
		t.Error("ReadWorkbook() accepted a workbook with no header row")
	}
}

func TestReadWorkbookXLSFirstSheetOnly(t *testing.T) {
	// The fixture's first sheet is a 14-column task sheet with two data
	// rows; its second sheet carries summary rows that must not be read.
	data, err := os.ReadFile(filepath.Join("testdata", "tareas_dos_hojas.xls"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	table, err := ReadWorkbook(data, "tareas_dos_hojas.xls")
	if err != nil {
		t.Fatalf("ReadWorkbook() error = %v", err)
	}
	if table.Sheet != "tareas" {
		t.Errorf("Sheet = %q, want tareas", table.Sheet)
	}
	if len(table.Headers) != 14 || table.Headers[0] != "Fecha de Inicio" || table.Headers[13] != "Código Inventario" {
		t.Errorf("Headers = %v", table.Headers)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want only the first sheet's 2 rows", len(table.Rows))
	}
	for _, row := range table.Rows {
		if row[0] == "Total registros" {
			t.Fatalf("second sheet row leaked into the data rows: %v", row)
		}
	}
	if table.Rows[0][13] != "INV-1" || table.Rows[1][13] != "INV-2" {
		t.Errorf("inventory codes = %q, %q", table.Rows[0][13], table.Rows[1][13])
	}
	if table.Rows[0][2] != "2:30:00" {
		t.Errorf("duration cell = %q, want 2:30:00", table.Rows[0][2])
	}
}

func TestReadWorkbookXLSNoDataRows(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "tareas_sin_filas.xls"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	if _, err := ReadWorkbook(data, "tareas_sin_filas.xls"); err == nil {
		t.Error("ReadWorkbook() accepted a legacy workbook whose first sheet has no data rows")
	}
}

func TestWriteWorkbookRoundTrip(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []types.Record{
		{
			StartDate: &start, DurationRaw: "2:30:00", DurationHours: 2.5,
			Client: "Acme", Counter: "ana", InventoryType: "Anual",
			Status: "Completado", InventoryCode: "INV-1",
			ContainersAssigned: 100, ContainersCounted: 120,
		},
		{
			DurationRaw: "1:00:00", DurationHours: 1,
			Client: "Beta", Counter: "luis", InventoryType: "Parcial",
			Status: "En curso", InventoryCode: "INV-2",
		},
	}
	kpis := analytics.ComputeKPIs(records)

	data, err := WriteWorkbook(records, kpis)
	if err != nil {
		t.Fatalf("WriteWorkbook() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != SheetFiltered || sheets[1] != SheetSummary {
		t.Fatalf("sheets = %v, want [%s %s]", sheets, SheetFiltered, SheetSummary)
	}

	rows, err := f.GetRows(SheetFiltered)
	if err != nil {
		t.Fatalf("GetRows(%s) error = %v", SheetFiltered, err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want header + 2 records", len(rows))
	}
	if rows[0][0] != "start_date" || len(rows[0]) != len(types.ExportFields) {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[0][3] != string(types.FieldDurationHours) {
		t.Errorf("header[3] = %q, want %s", rows[0][3], types.FieldDurationHours)
	}
	if rows[1][2] != "2:30:00" {
		t.Errorf("duration_raw cell = %q, want 2:30:00", rows[1][2])
	}
	if rows[1][10] != "INV-1" {
		t.Errorf("inventory_code cell = %q, want INV-1", rows[1][10])
	}
	if rows[1][0] != "2025-03-01 00:00:00" {
		t.Errorf("start_date cell = %q, want the formatted date", rows[1][0])
	}

	summary, err := f.GetRows(SheetSummary)
	if err != nil {
		t.Fatalf("GetRows(%s) error = %v", SheetSummary, err)
	}
	if len(summary) == 0 || summary[0][0] != "Total registros" || summary[0][1] != "2" {
		t.Errorf("summary first row = %v, want [Total registros 2]", summary[0])
	}

	// The export loads back through the same reader, headers intact.
	table, err := ReadWorkbook(data, ExportFilename)
	if err != nil {
		t.Fatalf("ReadWorkbook(export) error = %v", err)
	}
	if table.Sheet != SheetFiltered {
		t.Errorf("Sheet = %q, want %s", table.Sheet, SheetFiltered)
	}
	if len(table.Rows) != 2 {
		t.Errorf("len(Rows) = %d, want 2", len(table.Rows))
	}
}
