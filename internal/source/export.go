package source

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bodegalabs/recuento/backend/internal/format"
	"github.com/bodegalabs/recuento/backend/internal/types"
)

const (
	// SheetFiltered carries the filtered rows, SheetSummary the KPI figures.
	SheetFiltered = "filtrado"
	SheetSummary  = "resumen"

	// ExportFilename is the download name for the filtered export.
	ExportFilename = "inventario_filtrado.xlsx"
)

const exportTimeLayout = "2006-01-02 15:04:05"

// WriteWorkbook renders the filtered records and their KPIs as an xlsx
// workbook. Column headers use the canonical field names, so an exported
// file can be uploaded again.
func WriteWorkbook(records []types.Record, kpis types.KPIResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetFiltered); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(types.ExportFields))
	for i, field := range types.ExportFields {
		header[i] = string(field)
	}
	if err := f.SetSheetRow(SheetFiltered, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := exportRow(records[i])
		if err := f.SetSheetRow(SheetFiltered, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := writeSummary(f, kpis); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func exportDate(t *time.Time) interface{} {
	if t == nil {
		return ""
	}
	return t.Format(exportTimeLayout)
}

// exportRow lays out one record in ExportFields order.
func exportRow(r types.Record) []interface{} {
	return []interface{}{
		exportDate(r.StartDate),
		exportDate(r.EndDate),
		r.DurationRaw,
		r.DurationHours,
		r.Client,
		r.Coordinator,
		r.Counter,
		r.InventoryType,
		r.Priority,
		r.Status,
		r.InventoryCode,
		r.Action,
		r.ContainersAssigned,
		r.ContainersCounted,
		r.LocationsAssigned,
		r.LocationsCounted,
		r.CompletionPct,
	}
}

// writeSummary adds the KPI sheet, with figures formatted the way the
// operations reports present them.
func writeSummary(f *excelize.File, kpis types.KPIResult) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Total registros", kpis.TotalRecords},
		{"Total horas", format.Number(kpis.TotalHours, 2)},
		{"% completado promedio", format.Percent(kpis.MeanCompletionPct, 1)},
		{"Inventarios distintos", kpis.DistinctInventories},
		{"Inventarios cumplidos", kpis.FulfilledInventories},
		{"Tasa de cumplimiento", format.Percent(kpis.CompletionRate, 1)},
		{"Avance contenedores", format.Percent(kpis.ContainerProgress, 1)},
		{"Avance ubicaciones", format.Percent(kpis.LocationProgress, 1)},
		{"Backlog contenedores", format.Number(kpis.ContainerBacklog, 0)},
		{"Backlog ubicaciones", format.Number(kpis.LocationBacklog, 0)},
		{"Horas promedio por inventario", format.Number(kpis.AvgHoursPerInventory, 2)},
		{"Contenedores por hora", format.Number(kpis.ContainersPerHour, 2)},
		{"Ubicaciones por hora", format.Number(kpis.LocationsPerHour, 2)},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(SheetSummary, cell, &r); err != nil {
			return fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}
	return nil
}
