// Package dataset turns raw workbook rows into typed records and holds the
// dataset currently being served.
package dataset

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bodegalabs/recuento/backend/internal/filter"
	"github.com/bodegalabs/recuento/backend/internal/parse"
	"github.com/bodegalabs/recuento/backend/internal/schema"
	"github.com/bodegalabs/recuento/backend/internal/types"
)

// Dataset is one ingested workbook. DegradedCells counts individual values
// that failed to parse and were replaced with their zero default.
type Dataset struct {
	ID            string
	Name          string
	LoadedAt      time.Time
	Records       []types.Record
	DegradedCells int
}

// Build maps the header row, then converts every non-blank data row into a
// Record. Malformed cells degrade to defaults and are tallied; only a missing
// required column fails the whole build, with a *schema.SchemaError.
func Build(name string, headers []string, rows [][]string) (*Dataset, error) {
	cols, err := schema.MapHeaders(headers)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		ID:       uuid.New().String(),
		Name:     name,
		LoadedAt: time.Now(),
	}
	for _, row := range rows {
		if blankRow(row) {
			continue
		}
		rec, degraded := buildRecord(cols, row)
		ds.Records = append(ds.Records, rec)
		ds.DegradedCells += degraded
	}
	return ds, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// buildRecord reads one row through the column map. Spreadsheet readers trim
// trailing empty cells, so an index past the row's end reads as blank.
func buildRecord(cols map[types.Field]int, row []string) (types.Record, int) {
	degraded := 0
	cell := func(f types.Field) string {
		idx, ok := cols[f]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
	date := func(f types.Field) *time.Time {
		t, ok := parse.Date(cell(f))
		if !ok {
			degraded++
		}
		return t
	}
	num := func(f types.Field) float64 {
		v, ok := parse.Float(cell(f))
		if !ok {
			degraded++
		}
		return v
	}

	r := types.Record{
		StartDate:          date(types.FieldStartDate),
		EndDate:            date(types.FieldEndDate),
		DurationRaw:        cell(types.FieldDurationRaw),
		Client:             cell(types.FieldClient),
		Coordinator:        cell(types.FieldCoordinator),
		ContainersAssigned: num(types.FieldContainersAssigned),
		ContainersCounted:  num(types.FieldContainersCounted),
		LocationsAssigned:  num(types.FieldLocationsAssigned),
		LocationsCounted:   num(types.FieldLocationsCounted),
		Counter:            cell(types.FieldCounter),
		InventoryType:      cell(types.FieldInventoryType),
		Priority:           cell(types.FieldPriority),
		Status:             cell(types.FieldStatus),
		InventoryCode:      cell(types.FieldInventoryCode),
		CompletionPct:      num(types.FieldCompletionPct),
		Action:             cell(types.FieldAction),
	}

	h, ok := parse.Hours(r.DurationRaw)
	if !ok {
		degraded++
	}
	r.DurationHours = h
	return r, degraded
}

// Info summarizes the dataset for API responses and logs. The embedded
// filter defaults give the UI its initial date bounds and domains.
func (d *Dataset) Info() types.DatasetInfo {
	return types.DatasetInfo{
		ID:             d.ID,
		Name:           d.Name,
		LoadedAt:       d.LoadedAt,
		Rows:           len(d.Records),
		DegradedCells:  d.DegradedCells,
		FilterDefaults: filter.Defaults(d.Records),
	}
}
