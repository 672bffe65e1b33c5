package types

import "time"

// KPIResult is the scalar summary of a filtered record set. Every ratio
// resolves division by zero to 0; backlogs are floored at 0. Recomputed on
// every filter change, never stored.
type KPIResult struct {
	TotalRecords         int     `json:"totalRecords"`
	TotalHours           float64 `json:"totalHours"`
	MeanCompletionPct    float64 `json:"meanCompletionPct"`
	DistinctInventories  int     `json:"distinctInventories"`
	FulfilledInventories int     `json:"fulfilledInventories"`
	CompletionRate       float64 `json:"completionRate"`
	ContainersAssigned   float64 `json:"containersAssigned"`
	ContainersCounted    float64 `json:"containersCounted"`
	LocationsAssigned    float64 `json:"locationsAssigned"`
	LocationsCounted     float64 `json:"locationsCounted"`
	ContainerProgress    float64 `json:"containerProgress"`
	LocationProgress     float64 `json:"locationProgress"`
	ContainerBacklog     float64 `json:"containerBacklog"`
	LocationBacklog      float64 `json:"locationBacklog"`
	AvgHoursPerInventory float64 `json:"avgHoursPerInventory"`
	ContainersPerHour    float64 `json:"containersPerHour"`
	LocationsPerHour     float64 `json:"locationsPerHour"`
}

// ContributorSummary aggregates one counter's rows. Productivity ratios use
// the contributor's own hour total as denominator, not the filtered set's.
type ContributorSummary struct {
	Counter           string  `json:"counter"`
	Tasks             int     `json:"tasks"`
	TotalHours        float64 `json:"totalHours"`
	AvgHours          float64 `json:"avgHours"`
	ContainersCounted float64 `json:"containersCounted"`
	LocationsCounted  float64 `json:"locationsCounted"`
	MeanCompletionPct float64 `json:"meanCompletionPct"`
	DistinctClients   int     `json:"distinctClients"`
	ContainersPerHour float64 `json:"containersPerHour"`
	LocationsPerHour  float64 `json:"locationsPerHour"`
}

// BreakdownRow counts distinct inventory codes for one value of a grouping
// dimension, or one pair of values when grouped by two dimensions.
type BreakdownRow struct {
	Key                 string `json:"key"`
	SubKey              string `json:"subKey,omitempty"`
	DistinctInventories int    `json:"distinctInventories"`
}

// CardinalitySummary reports how many distinct values each headline
// dimension has in the filtered set.
type CardinalitySummary struct {
	InventoryTypes      int `json:"inventoryTypes"`
	Statuses            int `json:"statuses"`
	Clients             int `json:"clients"`
	DistinctInventories int `json:"distinctInventories"`
}

// Breakdowns bundles the dimensional summary tables and the cardinality
// strip shown above them.
type Breakdowns struct {
	ByTypeStatus []BreakdownRow     `json:"byTypeStatus"`
	ByType       []BreakdownRow     `json:"byType"`
	ByClient     []BreakdownRow     `json:"byClient"`
	Cardinality  CardinalitySummary `json:"cardinality"`
}

// Report is the full payload served to the dashboard for one filter
// selection: plain data only, formatting happens at the presentation edge.
type Report struct {
	Filter       FilterSelection      `json:"filter"`
	KPIs         KPIResult            `json:"kpis"`
	Contributors []ContributorSummary `json:"contributors"`
	Breakdowns   Breakdowns           `json:"breakdowns"`
}

// DatasetInfo describes the currently loaded dataset. FilterDefaults carries
// the observed date bounds and categorical domains, which are the UI's
// initial filter state.
type DatasetInfo struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LoadedAt       time.Time       `json:"loadedAt"`
	Rows           int             `json:"rows"`
	DegradedCells  int             `json:"degradedCells"`
	FilterDefaults FilterSelection `json:"filterDefaults"`
}
