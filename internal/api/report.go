package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bodegalabs/recuento/backend/internal/analytics"
	"github.com/bodegalabs/recuento/backend/internal/dataset"
	"github.com/bodegalabs/recuento/backend/internal/filter"
	"github.com/bodegalabs/recuento/backend/internal/metrics"
	"github.com/bodegalabs/recuento/backend/internal/types"
)

// ReportHandler serves the analytical views over the current dataset
type ReportHandler struct {
	store  *dataset.Store
	logger zerolog.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(store *dataset.Store, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		store:  store,
		logger: logger.With().Str("component", "report").Logger(),
	}
}

// filtered resolves the current dataset and applies the request's filter
// selection. On failure it writes the error response and reports false.
func (h *ReportHandler) filtered(w http.ResponseWriter, r *http.Request) ([]types.Record, types.FilterSelection, bool) {
	ds, ok := h.store.Current()
	if !ok {
		http.Error(w, "no dataset loaded", http.StatusNotFound)
		return nil, types.FilterSelection{}, false
	}

	sel, err := selectionFromQuery(ds.Records, r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, types.FilterSelection{}, false
	}
	return filter.Apply(ds.Records, sel), sel, true
}

// HandleReport handles GET /api/report
func (h *ReportHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	rows, sel, ok := h.filtered(w, r)
	if !ok {
		return
	}

	rep := analytics.BuildReport(rows, sel)
	metrics.Get().RecordReportComputed()
	h.logger.Debug().Int("rows", len(rows)).Msg("report computed")

	writeJSON(w, http.StatusOK, rep)
}

// HandleKPIs handles GET /api/report/kpis
func (h *ReportHandler) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	rows, _, ok := h.filtered(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analytics.ComputeKPIs(rows))
}

// HandleContributors handles GET /api/report/contributors
func (h *ReportHandler) HandleContributors(w http.ResponseWriter, r *http.Request) {
	rows, _, ok := h.filtered(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analytics.Contributors(rows))
}

// HandleBreakdowns handles GET /api/report/breakdowns
func (h *ReportHandler) HandleBreakdowns(w http.ResponseWriter, r *http.Request) {
	rows, _, ok := h.filtered(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analytics.BuildBreakdowns(rows))
}
