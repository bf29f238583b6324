package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"cleansuite/internal/filestore"
	"cleansuite/internal/metrics"
	"cleansuite/internal/models"
)

// CreateWorkerRequest is the request body for POST /api/workers. When
// action is "login" the body is treated as a credential check instead of
// record creation. Worker ids are always server-assigned.
type CreateWorkerRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Password string `json:"password"`
	StaffID  string `json:"staffId"`
	Name     string `json:"name"`
}

// UpdateWorkerRequest is the request body for PUT /api/workers. When
// NewPassword and StaffID are both set, the request is a password reset
// applied to every account linked to that staff member; otherwise it is a
// partial update by worker id, absent fields left untouched.
type UpdateWorkerRequest struct {
	ID          string  `json:"id"`
	NewPassword string  `json:"newPassword"`
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	StaffID     *string `json:"staffId"`
	Name        *string `json:"name"`
}

// handleWorkers serves /api/workers. Passwords never leave this handler:
// every response record is sanitized.
func (s *HTTPServer) handleWorkers(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("workers")
	switch r.Method {
	case http.MethodGet:
		workers, err := s.files.Workers()
		if err != nil {
			s.log.Error().Err(err).Msg("failed to load workers")
			workers = nil
		}
		sanitized := make([]models.Worker, 0, len(workers))
		for _, worker := range workers {
			sanitized = append(sanitized, worker.Sanitized())
		}
		writeJSON(w, http.StatusOK, sanitized)

	case http.MethodPost:
		var req CreateWorkerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if req.Action == "login" {
			worker, err := s.files.FindWorkerByCredentials(req.Username, req.Password)
			if errors.Is(err, filestore.ErrNoSuchWorker) {
				writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "error": "Invalid credentials"})
				return
			}
			if err != nil {
				s.log.Error().Err(err).Msg("worker login failed")
				writeError(w, http.StatusInternalServerError, "Failed to process worker request")
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "worker": worker.Sanitized()})
			return
		}

		worker, err := s.files.AddWorker(models.Worker{
			Username: req.Username,
			Password: req.Password,
			StaffID:  req.StaffID,
			Name:     req.Name,
		})
		if err != nil {
			s.log.Error().Err(err).Msg("failed to add worker")
			writeError(w, http.StatusInternalServerError, "Failed to process worker request")
			return
		}
		writeJSON(w, http.StatusOK, worker.Sanitized())

	case http.MethodPut:
		var req UpdateWorkerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		var err error
		if req.NewPassword != "" && req.StaffID != nil && *req.StaffID != "" {
			err = s.files.ResetWorkerPassword(*req.StaffID, req.NewPassword)
		} else {
			err = s.files.UpdateWorker(req.ID, filestore.WorkerPatch{
				Username: req.Username,
				Password: req.Password,
				StaffID:  req.StaffID,
				Name:     req.Name,
			})
		}
		if err != nil {
			s.log.Error().Err(err).Msg("failed to update worker")
			writeError(w, http.StatusInternalServerError, "Failed to update worker")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	case http.MethodDelete:
		staffID := r.URL.Query().Get("staffId")
		if staffID == "" {
			writeError(w, http.StatusBadRequest, "Missing Staff ID")
			return
		}
		if err := s.files.DeleteWorkerByStaffID(staffID); err != nil {
			s.log.Error().Err(err).Str("staff_id", staffID).Msg("failed to delete worker")
			writeError(w, http.StatusInternalServerError, "Failed to delete worker")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
