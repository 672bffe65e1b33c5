package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Metrics holds all application metrics
type Metrics struct {
	mu sync.RWMutex

	// Ingestion metrics
	DatasetsLoadedTotal int64
	RowsIngestedTotal   int64
	CellsDegradedTotal  int64
	SchemaFailuresTotal int64

	// Reporting metrics
	ReportsComputedTotal int64
	ExportsTotal         int64

	// HTTP metrics
	httpRequestsTotal    map[string]map[int]int64 // endpoint -> status -> count
	httpRequestDurations map[string][]float64     // endpoint -> durations

	// Timing
	startTime time.Time
}

// Global metrics instance
var instance *Metrics
var once sync.Once

// Get returns the singleton metrics instance
func Get() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			httpRequestsTotal:    make(map[string]map[int]int64),
			httpRequestDurations: make(map[string][]float64),
			startTime:            time.Now(),
		}
	})
	return instance
}

// RecordDatasetLoaded records a successful dataset ingestion
func (m *Metrics) RecordDatasetLoaded(rows, degradedCells int) {
	m.mu.Lock()
	m.DatasetsLoadedTotal++
	m.RowsIngestedTotal += int64(rows)
	m.CellsDegradedTotal += int64(degradedCells)
	m.mu.Unlock()
}

// RecordSchemaFailure increments the rejected-upload counter
func (m *Metrics) RecordSchemaFailure() {
	m.mu.Lock()
	m.SchemaFailuresTotal++
	m.mu.Unlock()
}

// RecordReportComputed increments the report counter
func (m *Metrics) RecordReportComputed() {
	m.mu.Lock()
	m.ReportsComputedTotal++
	m.mu.Unlock()
}

// RecordExport increments the export counter
func (m *Metrics) RecordExport() {
	m.mu.Lock()
	m.ExportsTotal++
	m.mu.Unlock()
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(endpoint string, statusCode int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.httpRequestsTotal[endpoint] == nil {
		m.httpRequestsTotal[endpoint] = make(map[int]int64)
	}
	m.httpRequestsTotal[endpoint][statusCode]++

	// Keep last 100 durations per endpoint
	if len(m.httpRequestDurations[endpoint]) >= 100 {
		m.httpRequestDurations[endpoint] = m.httpRequestDurations[endpoint][1:]
	}
	m.httpRequestDurations[endpoint] = append(m.httpRequestDurations[endpoint], duration.Seconds())
}

// Collector returns middleware that records every request's endpoint, status
// and duration
func Collector() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(sw, r)
			Get().RecordHTTPRequest(r.URL.Path, sw.status, time.Since(start))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Handler returns an HTTP handler for the /metrics endpoint
func (m *Metrics) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.mu.RLock()
		defer m.mu.RUnlock()

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		// Helper to write metric
		write := func(name string, value interface{}, labels ...string) {
			labelStr := ""
			if len(labels) > 0 {
				labelStr = "{"
				for i := 0; i < len(labels); i += 2 {
					if i > 0 {
						labelStr += ","
					}
					labelStr += labels[i] + "=\"" + labels[i+1] + "\""
				}
				labelStr += "}"
			}

			switch v := value.(type) {
			case int:
				w.Write([]byte(name + labelStr + " " + strconv.Itoa(v) + "\n"))
			case int64:
				w.Write([]byte(name + labelStr + " " + strconv.FormatInt(v, 10) + "\n"))
			case float64:
				w.Write([]byte(name + labelStr + " " + strconv.FormatFloat(v, 'f', 6, 64) + "\n"))
			}
		}

		// System metrics
		write("recuento_uptime_seconds", time.Since(m.startTime).Seconds())

		// Ingestion metrics
		write("recuento_datasets_loaded_total", m.DatasetsLoadedTotal)
		write("recuento_rows_ingested_total", m.RowsIngestedTotal)
		write("recuento_cells_degraded_total", m.CellsDegradedTotal)
		write("recuento_schema_failures_total", m.SchemaFailuresTotal)

		// Reporting metrics
		write("recuento_reports_computed_total", m.ReportsComputedTotal)
		write("recuento_exports_total", m.ExportsTotal)

		// HTTP metrics
		for endpoint, statusCodes := range m.httpRequestsTotal {
			for status, count := range statusCodes {
				write("recuento_http_requests_total", count, "endpoint", endpoint, "status", strconv.Itoa(status))
			}
		}
		for endpoint, durations := range m.httpRequestDurations {
			if len(durations) == 0 {
				continue
			}
			var sum float64
			for _, d := range durations {
				sum += d
			}
			write("recuento_http_request_duration_seconds_avg", sum/float64(len(durations)), "endpoint", endpoint)
		}
	}
}
