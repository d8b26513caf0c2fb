package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// TimeoutMiddleware bounds each request's context with timeout. Store
// operations started after the deadline fail with context.DeadlineExceeded,
// which handlers report as a request timeout.
func TimeoutMiddleware(timeout time.Duration) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
