package api

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bodegalabs/recuento/backend/internal/filter"
	"github.com/bodegalabs/recuento/backend/internal/types"
)

const queryDateLayout = "2006-01-02"

// selectionFromQuery builds the filter selection for a request. Defaults
// accept the whole dataset; each parameter present in the query narrows its
// dimension. A parameter may repeat and each value may be comma separated.
func selectionFromQuery(records []types.Record, q url.Values) (types.FilterSelection, error) {
	sel := filter.Defaults(records)

	if v := q.Get("from"); v != "" {
		t, err := time.Parse(queryDateLayout, v)
		if err != nil {
			return sel, fmt.Errorf("invalid 'from' date %q, want YYYY-MM-DD", v)
		}
		sel.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(queryDateLayout, v)
		if err != nil {
			return sel, fmt.Errorf("invalid 'to' date %q, want YYYY-MM-DD", v)
		}
		sel.To = &t
	}

	if vs, ok := listParam(q, "client"); ok {
		sel.Clients = vs
	}
	if vs, ok := listParam(q, "coordinator"); ok {
		sel.Coordinators = vs
	}
	if vs, ok := listParam(q, "type"); ok {
		sel.Types = vs
	}
	if vs, ok := listParam(q, "status"); ok {
		sel.Statuses = vs
	}
	if vs, ok := listParam(q, "priority"); ok {
		sel.Priorities = vs
	}
	return sel, nil
}

// listParam gathers a repeatable parameter's values, splitting each
// occurrence on commas. A parameter present with no usable value selects
// nothing, which is distinct from the parameter being absent.
func listParam(q url.Values, key string) ([]string, bool) {
	raw, ok := q[key]
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, part := range raw {
		for _, v := range strings.Split(part, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out, true
}
