package api

import (
	"fmt"
	"net/http"

	"cleansuite/internal/filestore"
	"cleansuite/internal/metrics"
	"cleansuite/internal/models"
)

// handleHealth reports process and database health. It is the one route
// exempt from API key checks so load balancers can probe it.
func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("health")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := s.db.Health(r.Context()); err != nil {
		s.log.Error().Err(err).Msg("health check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "unhealthy",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}

// handleMigrate imports the legacy JSON collection files into the database,
// collection by collection. Upserts make the operation safe to rerun. The
// admin tool triggers it with a plain GET.
func (s *HTTPServer) handleMigrate(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("migrate")
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()
	results := make(map[string]string)

	var services []models.Service
	if err := s.files.Load(filestore.ServicesFile, &services); err != nil {
		s.migrateFailed(w, "services", err)
		return
	}
	for i := range services {
		if err := s.db.UpsertService(ctx, &services[i]); err != nil {
			s.migrateFailed(w, "services", err)
			return
		}
	}
	if len(services) > 0 {
		results["services"] = fmt.Sprintf("Migrated %d items", len(services))
	}

	var staff []models.Staff
	if err := s.files.Load(filestore.StaffFile, &staff); err != nil {
		s.migrateFailed(w, "staff", err)
		return
	}
	for i := range staff {
		if err := s.db.UpsertStaff(ctx, &staff[i]); err != nil {
			s.migrateFailed(w, "staff", err)
			return
		}
	}
	if len(staff) > 0 {
		results["staff"] = fmt.Sprintf("Migrated %d items", len(staff))
	}

	var bookings []models.Booking
	if err := s.files.Load(filestore.BookingsFile, &bookings); err != nil {
		s.migrateFailed(w, "bookings", err)
		return
	}
	for i := range bookings {
		if err := s.db.UpsertBooking(ctx, &bookings[i]); err != nil {
			s.migrateFailed(w, "bookings", err)
			return
		}
	}
	if len(bookings) > 0 {
		results["bookings"] = fmt.Sprintf("Migrated %d items", len(bookings))
	}

	var tasks []models.Task
	if err := s.files.Load(filestore.TasksFile, &tasks); err != nil {
		s.migrateFailed(w, "tasks", err)
		return
	}
	for i := range tasks {
		if err := s.db.UpsertTask(ctx, &tasks[i]); err != nil {
			s.migrateFailed(w, "tasks", err)
			return
		}
	}
	if len(tasks) > 0 {
		results["tasks"] = fmt.Sprintf("Migrated %d items", len(tasks))
	}

	var notifications []models.Notification
	if err := s.files.Load(filestore.NotificationsFile, &notifications); err != nil {
		s.migrateFailed(w, "notifications", err)
		return
	}
	for i := range notifications {
		if err := s.db.UpsertNotification(ctx, &notifications[i]); err != nil {
			s.migrateFailed(w, "notifications", err)
			return
		}
	}
	if len(notifications) > 0 {
		results["notifications"] = fmt.Sprintf("Migrated %d items", len(notifications))
	}

	s.log.Info().Interface("results", results).Msg("migration complete")
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "results": results})
}

func (s *HTTPServer) migrateFailed(w http.ResponseWriter, collection string, err error) {
	s.log.Error().Err(err).Str("collection", collection).Msg("migration failed")
	writeError(w, http.StatusInternalServerError, "Migration failed")
}
