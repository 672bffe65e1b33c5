package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS creates a CORS middleware with the specified allowed origins
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		// The export endpoint announces its download filename here.
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler
}
