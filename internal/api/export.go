package api

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bodegalabs/recuento/backend/internal/analytics"
	"github.com/bodegalabs/recuento/backend/internal/dataset"
	"github.com/bodegalabs/recuento/backend/internal/filter"
	"github.com/bodegalabs/recuento/backend/internal/metrics"
	"github.com/bodegalabs/recuento/backend/internal/source"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams the filtered rows back out as a workbook
type ExportHandler struct {
	store  *dataset.Store
	logger zerolog.Logger
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(store *dataset.Store, logger zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		store:  store,
		logger: logger.With().Str("component", "export").Logger(),
	}
}

// HandleExport handles GET /api/export. It accepts the same filter
// parameters as the report endpoints and answers with an xlsx download.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.store.Current()
	if !ok {
		http.Error(w, "no dataset loaded", http.StatusNotFound)
		return
	}

	sel, err := selectionFromQuery(ds.Records, r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rows := filter.Apply(ds.Records, sel)

	data, err := source.WriteWorkbook(rows, analytics.ComputeKPIs(rows))
	if err != nil {
		h.logger.Error().Err(err).Msg("export failed")
		http.Error(w, "could not build export", http.StatusInternalServerError)
		return
	}

	metrics.Get().RecordExport()
	h.logger.Info().Int("rows", len(rows)).Int("bytes", len(data)).Msg("export built")

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(source.ExportFilename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
