package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCollector_RecordTrace(t *testing.T) {
	mc := NewMetricsCollector(10, time.Hour)
	now := time.Now()

	mc.RecordTrace(RequestTrace{Method: "GET", Route: "/cars", Status: 200, StartTime: now, TotalDuration: 2 * time.Millisecond})
	mc.RecordTrace(RequestTrace{Method: "GET", Route: "/cars", Status: 404, StartTime: now, TotalDuration: 4 * time.Millisecond})
	mc.RecordTrace(RequestTrace{Method: "POST", Route: "/users", Status: 201, StartTime: now, TotalDuration: time.Millisecond})

	summary := mc.GetSummary()

	assert.Equal(t, int64(3), summary.TotalRequests)
	assert.Equal(t, int64(1), summary.TotalErrors)
	assert.InDelta(t, 1.0/3.0, summary.ErrorRate, 1e-9)
	require.Len(t, summary.Routes, 2)
	cars := summary.Routes[0]
	assert.Equal(t, "/cars", cars.Route)
	assert.Equal(t, int64(2), cars.Count)
	assert.Equal(t, int64(1), cars.ErrorCount)
	assert.Equal(t, 3*time.Millisecond, cars.AvgTime)
	assert.Equal(t, 2*time.Millisecond, cars.MinTime)
	assert.Equal(t, 4*time.Millisecond, cars.MaxTime)
}

func TestMetricsCollector_KeepsMaxTraces(t *testing.T) {
	mc := NewMetricsCollector(2, time.Hour)

	for _, id := range []string{"a", "b", "c"} {
		mc.RecordTrace(RequestTrace{RequestID: id, Method: "GET", Route: "/cars", Status: 200, StartTime: time.Now()})
	}

	traces := mc.GetTraces(10)
	require.Len(t, traces, 2)
	assert.Equal(t, "b", traces[0].RequestID)
	assert.Equal(t, "c", traces[1].RequestID)
	assert.Len(t, mc.GetTraces(1), 1)
}

func TestMetricsCollector_RotateWindow(t *testing.T) {
	mc := NewMetricsCollector(10, time.Minute)
	start := mc.windowStart
	mc.RecordTrace(RequestTrace{Method: "GET", Route: "/cars", Status: 200, StartTime: start})

	mc.now = func() time.Time { return start.Add(30 * time.Second) }
	mc.RotateWindow()
	assert.Equal(t, int64(1), mc.GetSummary().TotalRequests)
	assert.Len(t, mc.GetTraces(10), 1)

	mc.now = func() time.Time { return start.Add(2 * time.Minute) }
	mc.RotateWindow()
	summary := mc.GetSummary()
	assert.Zero(t, summary.TotalRequests)
	assert.Empty(t, summary.Routes)
	assert.Empty(t, mc.GetTraces(10))
	assert.Equal(t, start.Add(2*time.Minute), summary.WindowStart)
}

func TestMetricsCollector_GetTracesNonPositiveLimit(t *testing.T) {
	mc := NewMetricsCollector(10, time.Hour)
	mc.RecordTrace(RequestTrace{RequestID: "a", Method: "GET", Route: "/cars", Status: 200, StartTime: time.Now()})

	assert.NotPanics(t, func() {
		assert.Empty(t, mc.GetTraces(-1))
		assert.Empty(t, mc.GetTraces(0))
	})
	assert.Len(t, mc.GetTraces(1), 1)
}
