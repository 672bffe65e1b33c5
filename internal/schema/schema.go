// Package schema canonicalizes the header row of an inventory task sheet.
// Source files arrive with Spanish labels in varying casings, spacings and
// accent spellings; every variant is folded onto one canonical field so the
// rest of the pipeline never sees a raw header.
package schema

import (
	"fmt"
	"strings"

	"github.com/bodegalabs/recuento/backend/internal/types"
)

// accentFold runs after lowercasing, so only lowercase variants matter.
var accentFold = strings.NewReplacer(
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ú", "u",
	"ñ", "n",
)

// headerToField maps normalized header labels to canonical fields. The
// Spanish labels are the ones observed in the task sheets; the canonical
// names themselves are included so an exported file can be loaded back.
var headerToField = map[string]types.Field{
	"fecha_de_inicio":        types.FieldStartDate,
	"fecha_de_termino":       types.FieldEndDate,
	"total_horas":            types.FieldDurationRaw,
	"cliente":                types.FieldClient,
	"coordinador":            types.FieldCoordinator,
	"contenedores_asignados": types.FieldContainersAssigned,
	"contenedores_contados":  types.FieldContainersCounted,
	"ubicaciones_asignadas":  types.FieldLocationsAssigned,
	"ubicaciones_contadas":   types.FieldLocationsCounted,
	"contador":               types.FieldCounter,
	"tipo_de_inventario":     types.FieldInventoryType,
	"prioridad":              types.FieldPriority,
	"estado_de_inventario":   types.FieldStatus,
	"codigo_inventario":      types.FieldInventoryCode,
	"codigo__inventario":     types.FieldInventoryCode,
	"codigo":                 types.FieldInventoryCode,
	"%_completado":           types.FieldCompletionPct,
	"accion":                 types.FieldAction,
	"accion_ejecutada":       types.FieldAction,
	"accion_realizada":       types.FieldAction,
}

func init() {
	for _, f := range types.RequiredFields {
		headerToField[string(f)] = f
	}
	headerToField[string(types.FieldCompletionPct)] = types.FieldCompletionPct
	headerToField[string(types.FieldAction)] = types.FieldAction
}

// Normalize canonicalizes a raw header label: trimmed and lowercased, with
// spaces turned into underscores and accents folded.
func Normalize(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	label = strings.ReplaceAll(label, " ", "_")
	return accentFold.Replace(label)
}

// CanonicalField resolves a raw header label to its canonical field.
func CanonicalField(label string) (types.Field, bool) {
	f, ok := headerToField[Normalize(label)]
	return f, ok
}

// SchemaError lists every required field still absent after normalization.
// It is fatal for the file: KPI semantics depend on all required columns, so
// no partial ingestion is attempted.
type SchemaError struct {
	Missing []types.Field
}

func (e *SchemaError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return fmt.Sprintf("missing required columns: %s", strings.Join(names, ", "))
}

// MapHeaders resolves a header row into a column index per canonical field.
// Unknown headers are ignored; if a workbook repeats a column, the first
// occurrence wins. Returns a SchemaError when required fields are missing.
func MapHeaders(headers []string) (map[types.Field]int, error) {
	cols := make(map[types.Field]int, len(headers))
	for i, h := range headers {
		f, ok := CanonicalField(h)
		if !ok {
			continue
		}
		if _, seen := cols[f]; !seen {
			cols[f] = i
		}
	}

	var missing []types.Field
	for _, f := range types.RequiredFields {
		if _, ok := cols[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	return cols, nil
}
