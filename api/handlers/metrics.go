package handlers

import (
	"net/http"
	"strconv"

	"github.com/linesmerrill/vehicle-registry-api/api"
)

// MetricsHandler serves the request metrics gathered by the metrics middleware
type MetricsHandler struct {
	Metrics *api.MetricsCollector
}

// GetMetricsSummary returns the totals and per-route metrics of the current window
func (m MetricsHandler) GetMetricsSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.Metrics.GetSummary())
}

// GetMetricsTraces returns the most recent request traces, oldest first.
// The limit query parameter defaults to 20; values that are not positive
// integers are ignored.
func (m MetricsHandler) GetMetricsTraces(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	traces := m.Metrics.GetTraces(limit)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"traces": traces,
		"limit":  limit,
		"count":  len(traces),
	})
}
