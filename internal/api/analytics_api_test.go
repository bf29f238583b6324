package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleansuite/internal/analytics"
)

func TestHandleAnalytics(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/staff", map[string]any{"name": "Anna", "role": "Cleaner"})
	require.Equal(t, http.StatusOK, w.Code)
	staffID := decode[map[string]any](t, w)["id"].(string)

	b := createTestBooking(t, ts, map[string]any{
		"payment": map[string]any{"amount": 150.0},
	})
	w = ts.do(t, http.MethodPut, "/api/bookings", map[string]any{
		"id":         b.ID,
		"status":     "Completed",
		"assignedTo": staffID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	report := decode[analytics.Report](t, w)
	assert.Equal(t, 150.0, report.Overview.TotalRevenue)
	assert.Equal(t, 1, report.Overview.TotalBookings)
	assert.Equal(t, 1, report.Overview.UniqueCustomers)
	assert.Len(t, report.MonthlyRevenue, 6)

	require.Len(t, report.ServiceStats, 1)
	assert.Equal(t, "Deep Cleaning", report.ServiceStats[0].Name)

	require.Len(t, report.StaffPerformance, 1)
	assert.Equal(t, 150.0, report.StaffPerformance[0].Revenue)
	assert.Equal(t, 1, report.StaffPerformance[0].JobsCompleted)
}

func TestHandleAnalyticsExport(t *testing.T) {
	ts := newTestServer(t)
	createTestBooking(t, ts, nil)

	w := ts.do(t, http.MethodGet, "/api/analytics/export", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	// xlsx files are zip archives.
	assert.Equal(t, "PK", w.Body.String()[:2])
}
