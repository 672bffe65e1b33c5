package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	allowedOrigins := []string{"http://localhost:5173", "http://example.com"}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="inventario_filtrado.xlsx"`)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	corsHandler := CORS(allowedOrigins)(handler)

	tests := []struct {
		name       string
		origin     string
		method     string
		reqMethod  string // turns OPTIONS into a preflight when set
		reqHeaders string
		wantCode   int
		want       map[string]string
	}{
		{
			name:     "allowed origin sees the download filename",
			origin:   "http://localhost:5173",
			method:   http.MethodGet,
			wantCode: http.StatusOK,
			want: map[string]string{
				"Access-Control-Allow-Origin":   "http://localhost:5173",
				"Access-Control-Expose-Headers": "Content-Disposition",
			},
		},
		{
			name:     "another allowed origin",
			origin:   "http://example.com",
			method:   http.MethodGet,
			wantCode: http.StatusOK,
			want: map[string]string{
				"Access-Control-Allow-Origin": "http://example.com",
			},
		},
		{
			name:     "disallowed origin",
			origin:   "http://evil.com",
			method:   http.MethodGet,
			wantCode: http.StatusOK,
			want: map[string]string{
				"Access-Control-Allow-Origin":   "",
				"Access-Control-Expose-Headers": "",
			},
		},
		{
			name:       "upload preflight",
			origin:     "http://localhost:5173",
			method:     http.MethodOptions,
			reqMethod:  http.MethodPost,
			reqHeaders: "content-type",
			wantCode:   http.StatusNoContent,
			want: map[string]string{
				"Access-Control-Allow-Origin":      "http://localhost:5173",
				"Access-Control-Allow-Methods":     "POST",
				"Access-Control-Allow-Headers":     "Content-Type",
				"Access-Control-Max-Age":           "300",
				"Access-Control-Allow-Credentials": "",
			},
		},
		{
			name:      "preflight for a method the API never serves",
			origin:    "http://localhost:5173",
			method:    http.MethodOptions,
			reqMethod: http.MethodDelete,
			wantCode:  http.StatusNoContent,
			want: map[string]string{
				"Access-Control-Allow-Origin":  "",
				"Access-Control-Allow-Methods": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/export", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.reqMethod != "" {
				req.Header.Set("Access-Control-Request-Method", tt.reqMethod)
			}
			if tt.reqHeaders != "" {
				req.Header.Set("Access-Control-Request-Headers", tt.reqHeaders)
			}

			rec := httptest.NewRecorder()
			corsHandler.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			for header, want := range tt.want {
				if got := rec.Header().Get(header); got != want {
					t.Errorf("expected %s %q, got %q", header, want, got)
				}
			}
		})
	}
}
