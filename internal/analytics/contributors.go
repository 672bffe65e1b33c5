package analytics

import (
	"sort"

	"github.com/samber/lo"

	"github.com/bodegalabs/recuento/backend/internal/types"
)

// UnspecifiedCounter buckets rows whose counter cell was blank so their work
// still shows up in the per-contributor view.
const UnspecifiedCounter = "unspecified"

// Contributors summarizes the record set per counter, ordered by counter
// name. Productivity is each contributor's own counted volume over their own
// hours, which is not the same as their share of the global rate.
func Contributors(records []types.Record) []types.ContributorSummary {
	groups := lo.GroupBy(records, func(r types.Record) string {
		if r.Counter == "" {
			return UnspecifiedCounter
		}
		return r.Counter
	})

	names := lo.Keys(groups)
	sort.Strings(names)

	out := make([]types.ContributorSummary, 0, len(names))
	for _, name := range names {
		rows := groups[name]
		s := types.ContributorSummary{Counter: name, Tasks: len(rows)}
		var pctSum float64
		clients := make(map[string]struct{})
		for _, r := range rows {
			s.TotalHours += r.DurationHours
			s.ContainersCounted += r.ContainersCounted
			s.LocationsCounted += r.LocationsCounted
			pctSum += r.CompletionPct
			if r.Client != "" {
				clients[r.Client] = struct{}{}
			}
		}
		s.AvgHours = s.TotalHours / float64(len(rows))
		s.MeanCompletionPct = pctSum / float64(len(rows))
		s.DistinctClients = len(clients)
		s.ContainersPerHour = ratio(s.ContainersCounted, s.TotalHours)
		s.LocationsPerHour = ratio(s.LocationsCounted, s.TotalHours)
		out = append(out, s)
	}
	return out
}
