package analytics

import (
	"math"

	"github.com/bodegalabs/recuento/backend/internal/types"
)

// ratio divides guarding the zero denominator, which every throughput and
// progress figure here needs when a filter selects nothing.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// ComputeKPIs aggregates the headline figures over a record set in a single
// pass. Inventories are identified by inventory code; rows with a blank code
// contribute to the global totals but not to the per-inventory figures.
func ComputeKPIs(records []types.Record) types.KPIResult {
	var k types.KPIResult
	var pctSum float64
	codeHours := make(map[string]float64)
	fulfilled := make(map[string]struct{})

	for _, r := range records {
		k.TotalRecords++
		k.TotalHours += r.DurationHours
		pctSum += r.CompletionPct
		k.ContainersAssigned += r.ContainersAssigned
		k.ContainersCounted += r.ContainersCounted
		k.LocationsAssigned += r.LocationsAssigned
		k.LocationsCounted += r.LocationsCounted

		if r.InventoryCode == "" {
			continue
		}
		codeHours[r.InventoryCode] += r.DurationHours
		if Complete(r) {
			fulfilled[r.InventoryCode] = struct{}{}
		}
	}

	k.DistinctInventories = len(codeHours)
	k.FulfilledInventories = len(fulfilled)
	k.CompletionRate = ratio(float64(k.FulfilledInventories), float64(k.DistinctInventories))
	if k.TotalRecords > 0 {
		k.MeanCompletionPct = pctSum / float64(k.TotalRecords)
	}

	// Progress ratios may exceed 1 when more was counted than assigned;
	// the backlog clamps at zero in that case rather than going negative.
	k.ContainerProgress = ratio(k.ContainersCounted, k.ContainersAssigned)
	k.LocationProgress = ratio(k.LocationsCounted, k.LocationsAssigned)
	k.ContainerBacklog = math.Max(k.ContainersAssigned-k.ContainersCounted, 0)
	k.LocationBacklog = math.Max(k.LocationsAssigned-k.LocationsCounted, 0)

	var hoursSum float64
	for _, h := range codeHours {
		hoursSum += h
	}
	k.AvgHoursPerInventory = ratio(hoursSum, float64(len(codeHours)))
	k.ContainersPerHour = ratio(k.ContainersCounted, k.TotalHours)
	k.LocationsPerHour = ratio(k.LocationsCounted, k.TotalHours)
	return k
}
