package api

import (
	"fmt"
	"net/http"
	"time"

	"cleansuite/internal/analytics"
	"cleansuite/internal/cache"
	"cleansuite/internal/metrics"
	"cleansuite/internal/models"
)

// handleAnalytics returns the owner dashboard aggregates. The report is
// cached until the next booking write invalidates it.
func (s *HTTPServer) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("analytics")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var cached analytics.Report
	if s.cache.Get(r.Context(), cache.KeyAnalytics, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	report, _, err := s.buildReport(r)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to build analytics")
		writeError(w, http.StatusInternalServerError, "Failed to fetch analytics")
		return
	}

	s.cache.Set(r.Context(), cache.KeyAnalytics, report)
	writeJSON(w, http.StatusOK, report)
}

// handleAnalyticsExport streams the analytics report as an Excel workbook.
func (s *HTTPServer) handleAnalyticsExport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("analytics_export")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	report, bookings, err := s.buildReport(r)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to build analytics export")
		writeError(w, http.StatusInternalServerError, "Failed to export analytics")
		return
	}

	exporter := analytics.NewExporter()
	defer exporter.Close()
	if err := exporter.WriteReport(report, bookings); err != nil {
		s.log.Error().Err(err).Msg("failed to write analytics workbook")
		writeError(w, http.StatusInternalServerError, "Failed to export analytics")
		return
	}

	filename := fmt.Sprintf("analytics_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := exporter.Save(w); err != nil {
		s.log.Error().Err(err).Msg("failed to stream analytics workbook")
	}
}

func (s *HTTPServer) buildReport(r *http.Request) (analytics.Report, []models.Booking, error) {
	bookings, err := s.db.ListBookings(r.Context())
	if err != nil {
		return analytics.Report{}, nil, err
	}
	staff, err := s.db.ListStaff(r.Context())
	if err != nil {
		return analytics.Report{}, nil, err
	}
	return analytics.Build(bookings, staff, time.Now()), bookings, nil
}
