// Package analytics derives KPIs, per-contributor summaries and dimensional
// breakdowns from a filtered record set. Every function is a pure pass over
// its input; results carry no references back to the rows.
package analytics

import (
	"math"
	"strings"

	"github.com/bodegalabs/recuento/backend/internal/types"
)

// finishedStatuses are the status spellings that mean a task is done, as
// observed across the operations teams' sheets.
var finishedStatuses = map[string]struct{}{
	"completado": {}, "completada": {}, "completo": {},
	"finalizado": {}, "finalizada": {},
	"terminado": {}, "terminada": {},
	"cerrado": {}, "cerrada": {},
	"ok": {}, "hecho": {}, "listo": {},
	"completed": {}, "complete": {}, "closed": {}, "done": {}, "finished": {},
}

// StatusComplete reports whether a free-text status means finished. Matching
// is case and whitespace insensitive, and any status mentioning "100" also
// counts, which covers spellings like "avance 100%".
func StatusComplete(status string) bool {
	s := strings.ToLower(strings.TrimSpace(status))
	if _, ok := finishedStatuses[s]; ok {
		return true
	}
	return strings.Contains(s, "100")
}

// PctComplete classifies a completion percentage of ambiguous scale: an
// absolute value at most 1 is read as a fraction and needs >= 0.99, larger
// values are read as percentages and need >= 99.
func PctComplete(pct float64) bool {
	if math.Abs(pct) <= 1 {
		return pct >= 0.99
	}
	return pct >= 99
}

// Complete reports whether a row carries either completion signal. An
// inventory counts as fulfilled when any of its rows is complete.
func Complete(r types.Record) bool {
	return StatusComplete(r.Status) || PctComplete(r.CompletionPct)
}
