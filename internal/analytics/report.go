package analytics

import (
	"github.com/samber/lo"

	"github.com/bodegalabs/recuento/backend/internal/types"
)

func distinct(records []types.Record, pick func(types.Record) string) int {
	return len(lo.Uniq(lo.FilterMap(records, func(r types.Record, _ int) (string, bool) {
		v := pick(r)
		return v, v != ""
	})))
}

// Cardinality counts the distinct non-blank values of the categorical
// dimensions, which the frontend uses to size its filter widgets.
func Cardinality(records []types.Record) types.CardinalitySummary {
	return types.CardinalitySummary{
		InventoryTypes:      distinct(records, func(r types.Record) string { return r.InventoryType }),
		Statuses:            distinct(records, func(r types.Record) string { return r.Status }),
		Clients:             distinct(records, func(r types.Record) string { return r.Client }),
		DistinctInventories: distinct(records, func(r types.Record) string { return r.InventoryCode }),
	}
}

// BuildBreakdowns assembles the dimensional tables plus the cardinality
// strip for a filtered record set.
func BuildBreakdowns(filtered []types.Record) types.Breakdowns {
	return types.Breakdowns{
		ByTypeStatus: BreakdownPair(filtered, types.FieldInventoryType, types.FieldStatus),
		ByType:       Breakdown(filtered, types.FieldInventoryType),
		ByClient:     Breakdown(filtered, types.FieldClient),
		Cardinality:  Cardinality(filtered),
	}
}

// BuildReport assembles the full report for an already filtered record set,
// echoing the selection that produced it.
func BuildReport(filtered []types.Record, sel types.FilterSelection) types.Report {
	return types.Report{
		Filter:       sel,
		KPIs:         ComputeKPIs(filtered),
		Contributors: Contributors(filtered),
		Breakdowns:   BuildBreakdowns(filtered),
	}
}
