// Package filter narrows a record set to a date interval plus categorical
// selections. Applications are pure: the input slice is never mutated and
// rows come back in source order.
package filter

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/bodegalabs/recuento/backend/internal/types"
)

// Defaults derives the selection that accepts the whole dataset: date
// bounds from the observed min/max start date and every dimension's full
// observed domain, sorted. Blank categorical values never enter a domain.
func Defaults(records []types.Record) types.FilterSelection {
	sel := types.FilterSelection{
		Clients:      domain(records, func(r types.Record) string { return r.Client }),
		Coordinators: domain(records, func(r types.Record) string { return r.Coordinator }),
		Types:        domain(records, func(r types.Record) string { return r.InventoryType }),
		Statuses:     domain(records, func(r types.Record) string { return r.Status }),
		Priorities:   domain(records, func(r types.Record) string { return r.Priority }),
	}

	for _, r := range records {
		if r.StartDate == nil {
			continue
		}
		if sel.From == nil || r.StartDate.Before(*sel.From) {
			t := *r.StartDate
			sel.From = &t
		}
		if sel.To == nil || r.StartDate.After(*sel.To) {
			t := *r.StartDate
			sel.To = &t
		}
	}
	return sel
}

func domain(records []types.Record, key func(types.Record) string) []string {
	vals := lo.Uniq(lo.FilterMap(records, func(r types.Record, _ int) (string, bool) {
		v := key(r)
		return v, v != ""
	}))
	sort.Strings(vals)
	return vals
}

// Apply returns the rows matching the selection. The predicate is
// conjunctive: the start date must lie inside [From, To] inclusive and
// every categorical value must be a member of its accepted set. Rows with
// no start date never match the interval; an empty accepted set matches
// nothing.
func Apply(records []types.Record, sel types.FilterSelection) []types.Record {
	clients := memberSet(sel.Clients)
	coordinators := memberSet(sel.Coordinators)
	typs := memberSet(sel.Types)
	statuses := memberSet(sel.Statuses)
	priorities := memberSet(sel.Priorities)

	out := make([]types.Record, 0, len(records))
	for _, r := range records {
		if !inInterval(r.StartDate, sel.From, sel.To) {
			continue
		}
		if !member(clients, r.Client) || !member(coordinators, r.Coordinator) ||
			!member(typs, r.InventoryType) || !member(statuses, r.Status) ||
			!member(priorities, r.Priority) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func memberSet(vals []string) map[string]struct{} {
	return lo.SliceToMap(vals, func(v string) (string, struct{}) { return v, struct{}{} })
}

func member(set map[string]struct{}, v string) bool {
	_, ok := set[v]
	return ok
}

func inInterval(d, from, to *time.Time) bool {
	if d == nil {
		return false
	}
	if from != nil && d.Before(*from) {
		return false
	}
	if to != nil && d.After(*to) {
		return false
	}
	return true
}
