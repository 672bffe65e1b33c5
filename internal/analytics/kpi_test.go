package analytics

import (
	"testing"

	"github.com/bodegalabs/recuento/backend/internal/types"
)

func TestComputeKPIsFulfillment(t *testing.T) {
	records := []types.Record{
		{InventoryCode: "A", Status: "Completado"},
		{InventoryCode: "A", Status: "En curso", CompletionPct: 0.4},
		{InventoryCode: "B", Status: "Pendiente", CompletionPct: 0.95},
	}

	k := ComputeKPIs(records)
	if k.DistinctInventories != 2 {
		t.Errorf("DistinctInventories = %d, want 2", k.DistinctInventories)
	}
	if k.FulfilledInventories != 1 {
		t.Errorf("FulfilledInventories = %d, want 1", k.FulfilledInventories)
	}
	if k.CompletionRate != 0.5 {
		t.Errorf("CompletionRate = %v, want 0.5", k.CompletionRate)
	}
}

func TestComputeKPIsProgress(t *testing.T) {
	records := []types.Record{
		{InventoryCode: "A", ContainersAssigned: 100, ContainersCounted: 120, LocationsAssigned: 50, LocationsCounted: 30},
	}

	k := ComputeKPIs(records)
	if k.ContainerProgress != 1.2 {
		t.Errorf("ContainerProgress = %v, want 1.2", k.ContainerProgress)
	}
	if k.ContainerBacklog != 0 {
		t.Errorf("ContainerBacklog = %v, want 0 (clamped)", k.ContainerBacklog)
	}
	if k.LocationProgress != 0.6 {
		t.Errorf("LocationProgress = %v, want 0.6", k.LocationProgress)
	}
	if k.LocationBacklog != 20 {
		t.Errorf("LocationBacklog = %v, want 20", k.LocationBacklog)
	}
}

func TestComputeKPIsEmpty(t *testing.T) {
	k := ComputeKPIs(nil)

	if k.TotalRecords != 0 {
		t.Errorf("TotalRecords = %d, want 0", k.TotalRecords)
	}
	zeros := map[string]float64{
		"CompletionRate":       k.CompletionRate,
		"MeanCompletionPct":    k.MeanCompletionPct,
		"ContainerProgress":    k.ContainerProgress,
		"LocationProgress":     k.LocationProgress,
		"AvgHoursPerInventory": k.AvgHoursPerInventory,
		"ContainersPerHour":    k.ContainersPerHour,
		"LocationsPerHour":     k.LocationsPerHour,
	}
	for name, v := range zeros {
		if v != 0 {
			t.Errorf("%s = %v, want 0 on empty input", name, v)
		}
	}
}

func TestComputeKPIsAvgHoursPerInventory(t *testing.T) {
	records := []types.Record{
		{InventoryCode: "A", DurationHours: 2},
		{InventoryCode: "A", DurationHours: 1},
		{InventoryCode: "B", DurationHours: 1},
		{DurationHours: 10}, // blank code, counts toward totals only
	}

	k := ComputeKPIs(records)
	if k.TotalHours != 14 {
		t.Errorf("TotalHours = %v, want 14", k.TotalHours)
	}
	if k.DistinctInventories != 2 {
		t.Errorf("DistinctInventories = %d, want 2", k.DistinctInventories)
	}
	// (2+1) hours on A and 1 on B average to 2 per inventory.
	if k.AvgHoursPerInventory != 2 {
		t.Errorf("AvgHoursPerInventory = %v, want 2", k.AvgHoursPerInventory)
	}
}

func TestComputeKPIsThroughput(t *testing.T) {
	records := []types.Record{
		{InventoryCode: "A", DurationHours: 2, ContainersCounted: 100, LocationsCounted: 10},
		{InventoryCode: "B", DurationHours: 2, ContainersCounted: 60, LocationsCounted: 30},
	}

	k := ComputeKPIs(records)
	if k.ContainersPerHour != 40 {
		t.Errorf("ContainersPerHour = %v, want 40", k.ContainersPerHour)
	}
	if k.LocationsPerHour != 10 {
		t.Errorf("LocationsPerHour = %v, want 10", k.LocationsPerHour)
	}
}

func TestComputeKPIsMeanCompletion(t *testing.T) {
	records := []types.Record{
		{InventoryCode: "A", CompletionPct: 0.5},
		{InventoryCode: "B", CompletionPct: 1},
		{InventoryCode: "C"},
	}

	k := ComputeKPIs(records)
	if k.MeanCompletionPct != 0.5 {
		t.Errorf("MeanCompletionPct = %v, want 0.5", k.MeanCompletionPct)
	}
}
