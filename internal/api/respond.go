// Package api exposes the dataset, report and export endpoints.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/bodegalabs/recuento/backend/internal/types"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func fieldNames(fields []types.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return names
}
