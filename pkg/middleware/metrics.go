package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/masterphelps/killscale-api/pkg/metrics"
)

// MetricsMiddleware registra contadores e histogramas Prometheus por requisição
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			m.IncHTTPRequestsInFlight()
			defer m.DecHTTPRequestsInFlight()

			lrw := newLoggingResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(lrw, r)

			m.RecordHTTPRequest(r.Method, r.URL.Path, strconv.Itoa(lrw.statusCode), time.Since(start))
		})
	}
}
