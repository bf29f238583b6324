package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleansuite/internal/filestore"
	"cleansuite/internal/models"
)

func TestHandleHealth(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[map[string]string](t, w)
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "connected", resp["database"])
}

func TestHandleHealth_DatabaseDown(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.db.Close())

	w := ts.do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	resp := decode[map[string]string](t, w)
	assert.Equal(t, "unhealthy", resp["status"])
	assert.Equal(t, "disconnected", resp["database"])
	assert.NotEmpty(t, resp["error"])
}

func TestHandleMigrate(t *testing.T) {
	ts := newTestServer(t)

	require.NoError(t, ts.files.Save(filestore.ServicesFile, []models.Service{
		{ID: "service-1", Title: "Deep Cleaning", Price: 180, Active: true},
		{ID: "service-2", Title: "Basic Cleaning", Price: 90, Active: true},
	}))
	require.NoError(t, ts.files.Save(filestore.BookingsFile, []models.Booking{
		{ID: "1700000000000", Service: "Deep Cleaning", Date: "2026-03-20", Name: "Anna", Email: "a@x.com", Status: models.StatusPending},
	}))

	w := ts.do(t, http.MethodGet, "/api/migrate", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[map[string]any](t, w)
	assert.Equal(t, true, resp["success"])

	results, ok := resp["results"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Migrated 2 items", results["services"])
	assert.Equal(t, "Migrated 1 items", results["bookings"])
	// Empty collections are not reported.
	assert.NotContains(t, results, "staff")
	assert.NotContains(t, results, "tasks")

	services, err := ts.db.ListServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, services, 2)

	booking, err := ts.db.GetBooking(context.Background(), "1700000000000")
	require.NoError(t, err)
	assert.Equal(t, "Anna", booking.Name)
}

func TestHandleMigrate_Rerun(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.files.Save(filestore.ServicesFile, []models.Service{
		{ID: "service-1", Title: "Deep Cleaning", Price: 180},
	}))

	for i := 0; i < 2; i++ {
		w := ts.do(t, http.MethodGet, "/api/migrate", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	// Upserts keep the import idempotent.
	services, err := ts.db.ListServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, services, 1)
}

func TestHandleMigrate_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodDelete, "/api/migrate", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
