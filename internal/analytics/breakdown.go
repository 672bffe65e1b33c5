package analytics

import (
	"sort"

	"github.com/bodegalabs/recuento/backend/internal/types"
)

func dimension(r types.Record, f types.Field) string {
	switch f {
	case types.FieldInventoryType:
		return r.InventoryType
	case types.FieldStatus:
		return r.Status
	case types.FieldClient:
		return r.Client
	case types.FieldCoordinator:
		return r.Coordinator
	case types.FieldCounter:
		return r.Counter
	case types.FieldPriority:
		return r.Priority
	default:
		return ""
	}
}

// Breakdown counts distinct inventory codes per value of one dimension. Rows
// with a blank dimension value or a blank code are left out.
func Breakdown(records []types.Record, dim types.Field) []types.BreakdownRow {
	codes := make(map[string]map[string]struct{})
	for _, r := range records {
		key := dimension(r, dim)
		if key == "" || r.InventoryCode == "" {
			continue
		}
		if codes[key] == nil {
			codes[key] = make(map[string]struct{})
		}
		codes[key][r.InventoryCode] = struct{}{}
	}

	out := make([]types.BreakdownRow, 0, len(codes))
	for key, set := range codes {
		out = append(out, types.BreakdownRow{Key: key, DistinctInventories: len(set)})
	}
	sortBreakdown(out)
	return out
}

// BreakdownPair does the same over the cross product of two dimensions.
func BreakdownPair(records []types.Record, dim, sub types.Field) []types.BreakdownRow {
	type pair struct{ key, sub string }
	codes := make(map[pair]map[string]struct{})
	for _, r := range records {
		p := pair{dimension(r, dim), dimension(r, sub)}
		if p.key == "" || p.sub == "" || r.InventoryCode == "" {
			continue
		}
		if codes[p] == nil {
			codes[p] = make(map[string]struct{})
		}
		codes[p][r.InventoryCode] = struct{}{}
	}

	out := make([]types.BreakdownRow, 0, len(codes))
	for p, set := range codes {
		out = append(out, types.BreakdownRow{Key: p.key, SubKey: p.sub, DistinctInventories: len(set)})
	}
	sortBreakdown(out)
	return out
}

// sortBreakdown orders rows by descending inventory count, breaking ties by
// key and then sub key so output is stable across runs.
func sortBreakdown(rows []types.BreakdownRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DistinctInventories != rows[j].DistinctInventories {
			return rows[i].DistinctInventories > rows[j].DistinctInventories
		}
		if rows[i].Key != rows[j].Key {
			return rows[i].Key < rows[j].Key
		}
		return rows[i].SubKey < rows[j].SubKey
	})
}
