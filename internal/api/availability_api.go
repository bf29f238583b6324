package api

import (
	"net/http"

	"cleansuite/internal/availability"
	"cleansuite/internal/cache"
	"cleansuite/internal/metrics"
)

// handleAvailability returns the slot catalog with availability flags.
// GET /api/availability?date=YYYY-MM-DD
func (s *HTTPServer) handleAvailability(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("availability")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, http.StatusBadRequest, "Date is required")
		return
	}

	cacheKey := cache.KeyAvailabilityPrefix + date
	var cached []availability.Slot
	if s.cache.Get(r.Context(), cacheKey, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	bookedTimes, err := s.db.BookedTimes(r.Context(), date)
	if err != nil {
		s.log.Error().Err(err).Str("date", date).Msg("failed to check availability")
		writeError(w, http.StatusInternalServerError, "Failed to check availability")
		return
	}

	slots := availability.ForDate(s.slots, bookedTimes)
	s.cache.Set(r.Context(), cacheKey, slots)
	writeJSON(w, http.StatusOK, slots)
}
