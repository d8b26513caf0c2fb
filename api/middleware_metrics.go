package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// slowRequestThreshold is the duration above which a request is logged as slow
const slowRequestThreshold = time.Second

// MetricsMiddleware tags each request with an id and records its timing and
// status in mc under the route template it matched
func MetricsMiddleware(mc *MetricsCollector) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}
			if route == "/health" || route == "/metrics/summary" || route == "/metrics/traces" {
				next.ServeHTTP(w, r)
				return
			}

			startTime := time.Now()
			requestID := uuid.New().String()
			w.Header().Set("X-Request-ID", requestID)

			wrappedWriter := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrappedWriter, r)

			totalDuration := time.Since(startTime)
			mc.RecordTrace(RequestTrace{
				RequestID:     requestID,
				Method:        r.Method,
				Route:         route,
				Status:        wrappedWriter.statusCode,
				StartTime:     startTime,
				TotalDuration: totalDuration,
			})

			zap.S().Debugw("request served",
				"requestId", requestID,
				"method", r.Method,
				"route", route,
				"status", wrappedWriter.statusCode,
				"duration", totalDuration,
			)
			if totalDuration > slowRequestThreshold {
				zap.S().Warnw("Slow request detected",
					"requestId", requestID,
					"method", r.Method,
					"path", r.URL.Path,
					"duration", totalDuration,
					"status", wrappedWriter.statusCode,
				)
			}
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
