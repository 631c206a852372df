package observe

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nguyentantai21042004/readaid/internal/logger"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// statusRecorder captures the status code written by the next handler.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records the duration of every request and logs its completion.
// Requests are labelled with the ServeMux pattern they matched, or
// RouteOther, so unknown paths cannot grow the label set.
func Middleware(m *Metrics, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rec, r)

			// ServeMux fills in the matched pattern on the way down.
			route := r.Pattern
			if route == "" {
				route = RouteOther
			}

			duration := time.Since(start)
			m.HTTPRequestDuration.Record(r.Context(), duration.Seconds(),
				metric.WithAttributes(
					attribute.String("method", r.Method),
					attribute.String("route", route),
					attribute.String("status", strconv.Itoa(rec.statusCode)),
				),
			)
			log.Debug(r.Context(), "%s %s -> %d (%s)", r.Method, r.URL.Path, rec.statusCode, duration)
		})
	}
}
