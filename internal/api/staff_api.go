package api

import (
	"encoding/json"
	"net/http"
	"time"

	"cleansuite/internal/cache"
	"cleansuite/internal/database"
	"cleansuite/internal/metrics"
	"cleansuite/internal/models"
)

// CreateStaffRequest is the request body for POST /api/staff.
type CreateStaffRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateStaffRequest is the request body for PUT /api/staff.
type UpdateStaffRequest struct {
	ID string `json:"id"`
	database.StaffUpdate
}

// handleStaff serves /api/staff for all methods.
func (s *HTTPServer) handleStaff(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("staff")
	switch r.Method {
	case http.MethodGet:
		staff, err := s.db.ListStaff(r.Context())
		if err != nil {
			s.log.Error().Err(err).Msg("failed to list staff")
			writeJSON(w, http.StatusInternalServerError, []models.Staff{})
			return
		}
		if staff == nil {
			staff = []models.Staff{}
		}
		writeJSON(w, http.StatusOK, staff)

	case http.MethodPost:
		var req CreateStaffRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		now := time.Now()
		member := &models.Staff{
			ID:        models.NewEntityID("staff", now),
			Name:      req.Name,
			Role:      req.Role,
			Email:     req.Email,
			Phone:     req.Phone,
			CreatedAt: now,
		}
		if err := s.db.CreateStaff(r.Context(), member); err != nil {
			s.log.Error().Err(err).Msg("failed to add staff")
			writeError(w, http.StatusInternalServerError, "Failed to add staff")
			return
		}
		// The analytics report carries per-staff rows.
		s.cache.Invalidate(r.Context(), cache.KeyAnalytics)
		writeJSON(w, http.StatusOK, member)

	case http.MethodPut:
		var req UpdateStaffRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.ID == "" {
			writeError(w, http.StatusBadRequest, "Missing ID")
			return
		}

		err := s.db.UpdateStaff(r.Context(), req.ID, req.StaffUpdate)
		if err == database.ErrNotFound {
			writeError(w, http.StatusNotFound, "Staff not found")
			return
		}
		if err != nil {
			s.log.Error().Err(err).Str("staff_id", req.ID).Msg("failed to update staff")
			writeError(w, http.StatusInternalServerError, "Failed to update staff")
			return
		}
		s.cache.Invalidate(r.Context(), cache.KeyAnalytics)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "Missing ID")
			return
		}
		if err := s.db.DeleteStaff(r.Context(), id); err != nil {
			s.log.Error().Err(err).Str("staff_id", id).Msg("failed to delete staff")
			writeError(w, http.StatusInternalServerError, "Failed to delete staff")
			return
		}
		s.cache.Invalidate(r.Context(), cache.KeyAnalytics)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
