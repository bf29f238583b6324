package api

import (
	"encoding/json"
	"net/http"
	"time"

	"cleansuite/internal/database"
	"cleansuite/internal/metrics"
	"cleansuite/internal/models"
)

// CreateServiceRequest is the request body for POST /api/services. The
// active flag defaults to true when absent.
type CreateServiceRequest struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Active      *bool   `json:"active"`
}

// UpdateServiceRequest is the request body for PUT /api/services.
type UpdateServiceRequest struct {
	ID string `json:"id"`
	database.ServiceUpdate
}

// handleServices serves /api/services for all methods. The public listing
// is ordered by price ascending.
func (s *HTTPServer) handleServices(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("services")
	switch r.Method {
	case http.MethodGet:
		services, err := s.db.ListServices(r.Context())
		if err != nil {
			s.log.Error().Err(err).Msg("failed to list services")
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if services == nil {
			services = []models.Service{}
		}
		writeJSON(w, http.StatusOK, services)

	case http.MethodPost:
		var req CreateServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		service := &models.Service{
			ID:          req.ID,
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			ImageURL:    req.ImageURL,
			Active:      req.Active == nil || *req.Active,
		}
		if service.ID == "" {
			service.ID = models.NewEntityID("service", time.Now())
		}

		if err := s.db.CreateService(r.Context(), service); err != nil {
			s.log.Error().Err(err).Msg("failed to add service")
			writeError(w, http.StatusInternalServerError, "Failed to add service")
			return
		}
		writeJSON(w, http.StatusOK, service)

	case http.MethodPut:
		var req UpdateServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.ID == "" {
			writeError(w, http.StatusBadRequest, "Missing ID")
			return
		}

		err := s.db.UpdateService(r.Context(), req.ID, req.ServiceUpdate)
		if err == database.ErrNotFound {
			writeError(w, http.StatusNotFound, "Service not found")
			return
		}
		if err != nil {
			s.log.Error().Err(err).Str("service_id", req.ID).Msg("failed to update service")
			writeError(w, http.StatusInternalServerError, "Failed to update service")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "Missing ID")
			return
		}
		if err := s.db.DeleteService(r.Context(), id); err != nil {
			s.log.Error().Err(err).Str("service_id", id).Msg("failed to delete service")
			writeError(w, http.StatusInternalServerError, "Failed to delete service")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
