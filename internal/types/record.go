package types

import "time"

// Field identifies a canonical record column after header normalization
type Field string

const (
	FieldStartDate          Field = "start_date"
	FieldEndDate            Field = "end_date"
	FieldDurationRaw        Field = "duration_raw"
	FieldClient             Field = "client"
	FieldCoordinator        Field = "coordinator"
	FieldContainersAssigned Field = "containers_assigned"
	FieldContainersCounted  Field = "containers_counted"
	FieldLocationsAssigned  Field = "locations_assigned"
	FieldLocationsCounted   Field = "locations_counted"
	FieldCounter            Field = "counter"
	FieldInventoryType      Field = "inventory_type"
	FieldPriority           Field = "priority"
	FieldStatus             Field = "status"
	FieldInventoryCode      Field = "inventory_code"

	// Optional columns: absent completion percentages default to 0,
	// absent actions to the empty string.
	FieldCompletionPct Field = "completion_pct"
	FieldAction        Field = "action"

	// FieldDurationHours is derived from duration_raw and only appears in
	// exported workbooks.
	FieldDurationHours Field = "duration_hours"
)

// RequiredFields lists every column that must be present after header
// normalization. A source file missing any of these cannot produce a report.
var RequiredFields = []Field{
	FieldStartDate,
	FieldEndDate,
	FieldDurationRaw,
	FieldClient,
	FieldCoordinator,
	FieldContainersAssigned,
	FieldContainersCounted,
	FieldLocationsAssigned,
	FieldLocationsCounted,
	FieldCounter,
	FieldInventoryType,
	FieldPriority,
	FieldStatus,
	FieldInventoryCode,
}

// ExportFields is the column order used when serializing a filtered record
// set back to a workbook.
var ExportFields = []Field{
	FieldStartDate,
	FieldEndDate,
	FieldDurationRaw,
	FieldDurationHours,
	FieldClient,
	FieldCoordinator,
	FieldCounter,
	FieldInventoryType,
	FieldPriority,
	FieldStatus,
	FieldInventoryCode,
	FieldAction,
	FieldContainersAssigned,
	FieldContainersCounted,
	FieldLocationsAssigned,
	FieldLocationsCounted,
	FieldCompletionPct,
}

// Record is one inventory-counting task row in canonical form. Dates that
// failed to parse are nil, numeric cells that failed to parse are 0.
type Record struct {
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	DurationRaw        string     `json:"durationRaw"`
	DurationHours      float64    `json:"durationHours"`
	Client             string     `json:"client"`
	Coordinator        string     `json:"coordinator"`
	Counter            string     `json:"counter"`
	InventoryType      string     `json:"inventoryType"`
	Priority           string     `json:"priority"`
	Status             string     `json:"status"`
	InventoryCode      string     `json:"inventoryCode"`
	Action             string     `json:"action,omitempty"`
	ContainersAssigned float64    `json:"containersAssigned"`
	ContainersCounted  float64    `json:"containersCounted"`
	LocationsAssigned  float64    `json:"locationsAssigned"`
	LocationsCounted   float64    `json:"locationsCounted"`
	CompletionPct      float64    `json:"completionPct"`
}

// FilterSelection narrows a record set to a date interval and five sets of
// accepted categorical values. A row survives only if it matches the interval
// and every membership predicate. An empty slice means "accept nothing",
// which legitimately produces an empty result.
type FilterSelection struct {
	From         *time.Time `json:"from,omitempty"`
	To           *time.Time `json:"to,omitempty"`
	Clients      []string   `json:"clients"`
	Coordinators []string   `json:"coordinators"`
	Types        []string   `json:"types"`
	Statuses     []string   `json:"statuses"`
	Priorities   []string   `json:"priorities"`
}
