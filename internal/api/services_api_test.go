package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleansuite/internal/cache"
	"cleansuite/internal/models"
)

func TestHandleServices_CRUD(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/services", map[string]any{
		"title":       "Deep Cleaning",
		"description": "Full home deep clean",
		"price":       180.0,
		"imageUrl":    "https://example.com/deep.jpg",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	created := decode[models.Service](t, w)
	assert.NotEmpty(t, created.ID)
	// Active defaults to true when the flag is absent.
	assert.True(t, created.Active)

	w = ts.do(t, http.MethodPost, "/api/services", map[string]any{
		"id":     "service-basic",
		"title":  "Basic Cleaning",
		"price":  90.0,
		"active": false,
	})
	require.Equal(t, http.StatusOK, w.Code)
	basic := decode[models.Service](t, w)
	assert.Equal(t, "service-basic", basic.ID)
	assert.False(t, basic.Active)

	// Listing orders by price ascending.
	w = ts.do(t, http.MethodGet, "/api/services", nil)
	require.Equal(t, http.StatusOK, w.Code)
	services := decode[[]models.Service](t, w)
	require.Len(t, services, 2)
	assert.Equal(t, "Basic Cleaning", services[0].Title)
	assert.Equal(t, "Deep Cleaning", services[1].Title)

	w = ts.do(t, http.MethodPut, "/api/services", map[string]any{
		"id":    created.ID,
		"price": 200.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodDelete, "/api/services?id="+basic.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/services", nil)
	services = decode[[]models.Service](t, w)
	require.Len(t, services, 1)
	assert.Equal(t, 200.0, services[0].Price)
}

func TestHandleServices_UpdateErrors(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPut, "/api/services", map[string]any{"price": 10.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing ID", decode[ErrorResponse](t, w).Error)

	w = ts.do(t, http.MethodPut, "/api/services", map[string]any{"id": "missing", "price": 10.0})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Service not found", decode[ErrorResponse](t, w).Error)

	w = ts.do(t, http.MethodDelete, "/api/services", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleStaff_CRUD(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/staff", map[string]any{
		"name":  "Anna",
		"role":  "Cleaner",
		"email": "anna@example.com",
		"phone": "555-0100",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[models.Staff](t, w)
	assert.Contains(t, created.ID, "staff-")

	w = ts.do(t, http.MethodPut, "/api/staff", map[string]any{
		"id":   created.ID,
		"role": "Supervisor",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/staff", nil)
	staff := decode[[]models.Staff](t, w)
	require.Len(t, staff, 1)
	assert.Equal(t, "Supervisor", staff[0].Role)
	// Untouched fields survive the partial update.
	assert.Equal(t, "anna@example.com", staff[0].Email)

	w = ts.do(t, http.MethodDelete, "/api/staff?id="+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/staff", nil)
	assert.Empty(t, decode[[]models.Staff](t, w))
}

func TestHandleStaff_MutationsInvalidateAnalytics(t *testing.T) {
	spy := &spyCache{}
	ts := newTestServerWithCache(t, spy)

	w := ts.do(t, http.MethodPost, "/api/staff", map[string]any{"name": "Anna", "role": "Cleaner"})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[models.Staff](t, w)

	w = ts.do(t, http.MethodPut, "/api/staff", map[string]any{"id": created.ID, "role": "Supervisor"})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodDelete, "/api/staff?id="+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The cached report embeds per-staff rows, so each mutation drops it.
	assert.Equal(t, []string{cache.KeyAnalytics, cache.KeyAnalytics, cache.KeyAnalytics}, spy.invalidated)
}

func TestHandleTasks_CRUD(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/tasks", map[string]any{
		"title":      "Restock supplies",
		"assignedTo": "staff-1",
		"dueDate":    "2026-03-25",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[models.Task](t, w)
	assert.Contains(t, created.ID, "task-")
	// Status defaults to Pending.
	assert.Equal(t, models.StatusPending, created.Status)

	w = ts.do(t, http.MethodPut, "/api/tasks", map[string]any{
		"id":     created.ID,
		"status": "Done",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/tasks", nil)
	tasks := decode[[]models.Task](t, w)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Done", tasks[0].Status)
	assert.Equal(t, "Restock supplies", tasks[0].Title)

	w = ts.do(t, http.MethodPut, "/api/tasks", map[string]any{"id": "missing", "status": "Done"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
