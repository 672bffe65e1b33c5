package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bodegalabs/recuento/backend/internal/dataset"
	"github.com/bodegalabs/recuento/backend/internal/metrics"
	"github.com/bodegalabs/recuento/backend/internal/schema"
	"github.com/bodegalabs/recuento/backend/internal/source"
)

// DatasetHandler handles workbook uploads and dataset introspection
type DatasetHandler struct {
	store     *dataset.Store
	maxUpload int64
	logger    zerolog.Logger
}

// NewDatasetHandler creates a new DatasetHandler
func NewDatasetHandler(store *dataset.Store, maxUpload int64, logger zerolog.Logger) *DatasetHandler {
	return &DatasetHandler{
		store:     store,
		maxUpload: maxUpload,
		logger:    logger.With().Str("component", "datasets").Logger(),
	}
}

// HandleUpload handles POST /api/datasets. The workbook arrives as the
// multipart field "file"; a parsed dataset replaces the current one.
func (h *DatasetHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "multipart field 'file' is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "could not read upload", http.StatusBadRequest)
		return
	}

	table, err := source.ReadWorkbook(data, header.Filename)
	if err != nil {
		h.logger.Warn().Err(err).Str("file", header.Filename).Msg("unreadable workbook")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ds, err := dataset.Build(header.Filename, table.Headers, table.Rows)
	if err != nil {
		var serr *schema.SchemaError
		if errors.As(err, &serr) {
			metrics.Get().RecordSchemaFailure()
			h.logger.Warn().Str("file", header.Filename).Strs("missing", fieldNames(serr.Missing)).Msg("schema validation failed")
			writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":   "schema validation failed",
				"missing": fieldNames(serr.Missing),
			})
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.store.Set(ds)
	metrics.Get().RecordDatasetLoaded(len(ds.Records), ds.DegradedCells)
	h.logger.Info().
		Str("dataset_id", ds.ID).
		Str("file", header.Filename).
		Int("rows", len(ds.Records)).
		Int("degraded_cells", ds.DegradedCells).
		Msg("dataset loaded")

	writeJSON(w, http.StatusCreated, ds.Info())
}

// HandleCurrent handles GET /api/datasets/current
func (h *DatasetHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.store.Current()
	if !ok {
		http.Error(w, "no dataset loaded", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, ds.Info())
}
