package api

import (
	"encoding/json"
	"net/http"
	"time"

	"cleansuite/internal/alerts"
	"cleansuite/internal/metrics"
	"cleansuite/internal/models"
)

// CreateNotificationRequest is the request body for POST /api/notifications.
type CreateNotificationRequest struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	Recipient     string `json:"recipient"`
	RecipientType string `json:"recipientType"`
	Priority      string `json:"priority"`
	Status        string `json:"status"`
}

// handleNotifications serves /api/notifications. The GET response is the
// synthetic operational alerts derived from current bookings followed by the
// persisted notification feed. Either source failing degrades to empty so
// the feed always renders.
func (s *HTTPServer) handleNotifications(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("notifications")
	switch r.Method {
	case http.MethodGet:
		bookings, err := s.db.ListBookings(r.Context())
		if err != nil {
			s.log.Error().Err(err).Msg("failed to list bookings for alerts")
			bookings = nil
		}
		synthetic := alerts.Generate(bookings, time.Now())

		persisted, err := s.files.Notifications()
		if err != nil {
			s.log.Error().Err(err).Msg("failed to load notifications")
			persisted = nil
		}

		writeJSON(w, http.StatusOK, alerts.Merge(synthetic, persisted))

	case http.MethodPost:
		var req CreateNotificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		notif := models.Notification{
			Type:          req.Type,
			Title:         req.Title,
			Message:       req.Message,
			Recipient:     req.Recipient,
			RecipientType: req.RecipientType,
			Priority:      req.Priority,
			Status:        req.Status,
		}
		created, err := s.files.AddNotification(notif)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to create notification")
			writeError(w, http.StatusInternalServerError, "Failed to create notification")
			return
		}
		writeJSON(w, http.StatusOK, created)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
