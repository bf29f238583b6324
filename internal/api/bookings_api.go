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

// CreateBookingRequest is the request body for POST /api/bookings.
type CreateBookingRequest struct {
	Service string `json:"service"`
	Date    string `json:"date"` // Format: YYYY-MM-DD
	Time    string `json:"time"` // Format: HH:MM
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Payment struct {
		Amount float64 `json:"amount"`
		Method string  `json:"method"`
	} `json:"payment"`
}

// UpdateBookingRequest is the request body for PUT /api/bookings.
type UpdateBookingRequest struct {
	ID string `json:"id"`
	database.BookingUpdate
}

// handleBookings serves /api/bookings for all methods.
func (s *HTTPServer) handleBookings(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings")
	switch r.Method {
	case http.MethodGet:
		s.listBookings(w, r)
	case http.MethodPost:
		s.createBooking(w, r)
	case http.MethodPut:
		s.updateBooking(w, r)
	case http.MethodDelete:
		s.deleteBookings(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// listBookings returns all bookings, newest first. A storage failure
// degrades to an empty array so the admin list view never breaks outright.
func (s *HTTPServer) listBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.db.ListBookings(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list bookings")
		writeJSON(w, http.StatusInternalServerError, []models.Booking{})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (s *HTTPServer) createBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Service == "" || req.Date == "" || req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	now := time.Now()
	method := req.Payment.Method
	if method == "" {
		method = "Cash"
	}

	booking := &models.Booking{
		ID:           models.NewBookingID(now),
		Service:      req.Service,
		Date:         req.Date,
		Time:         req.Time,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Status:       models.StatusPending,
		CleaningCode: models.NewCleaningCode(now),
		Payment: models.Payment{
			Status: models.PaymentUnpaid,
			Amount: req.Payment.Amount,
			Method: method,
		},
		CreatedAt: now,
	}

	if err := s.db.CreateBooking(r.Context(), booking); err != nil {
		s.log.Error().Err(err).Str("email", req.Email).Msg("failed to create booking")
		writeError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	metrics.IncBookingCreated()
	s.cache.Invalidate(r.Context(), cache.KeyAnalytics)

	s.log.Info().
		Str("booking_id", booking.ID).
		Str("service", booking.Service).
		Str("date", booking.Date).
		Msg("booking created")

	writeJSON(w, http.StatusCreated, booking)
}

func (s *HTTPServer) updateBooking(w http.ResponseWriter, r *http.Request) {
	var req UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "Missing id")
		return
	}

	updated, err := s.db.UpdateBooking(r.Context(), req.ID, req.BookingUpdate)
	if err == database.ErrNotFound {
		writeError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Str("booking_id", req.ID).Msg("failed to update booking")
		writeError(w, http.StatusInternalServerError, "Failed to update")
		return
	}

	metrics.IncBookingUpdated(updated.Status)
	s.cache.Invalidate(r.Context(), cache.KeyAnalytics)

	writeJSON(w, http.StatusOK, updated)
}

func (s *HTTPServer) deleteBookings(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	deleteAll := r.URL.Query().Get("deleteAll")

	switch {
	case deleteAll == "true":
		count, err := s.db.DeleteAllBookings(r.Context())
		if err != nil {
			s.log.Error().Err(err).Msg("failed to delete all bookings")
			writeError(w, http.StatusInternalServerError, "Failed to delete")
			return
		}
		s.cache.Invalidate(r.Context(), cache.KeyAnalytics)
		s.log.Info().Int64("count", count).Msg("all bookings deleted")
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "All bookings deleted"})

	case id != "":
		if err := s.db.DeleteBooking(r.Context(), id); err != nil {
			s.log.Error().Err(err).Str("booking_id", id).Msg("failed to delete booking")
			writeError(w, http.StatusInternalServerError, "Failed to delete")
			return
		}
		metrics.IncBookingDeleted()
		s.cache.Invalidate(r.Context(), cache.KeyAnalytics)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Booking deleted"})

	default:
		writeError(w, http.StatusBadRequest, "Missing id or deleteAll param")
	}
}
