package api

import (
	"encoding/json"
	"net/http"
	"time"

	"cleansuite/internal/database"
	"cleansuite/internal/metrics"
	"cleansuite/internal/models"
)

// CreateTaskRequest is the request body for POST /api/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
}

// UpdateTaskRequest is the request body for PUT /api/tasks.
type UpdateTaskRequest struct {
	ID string `json:"id"`
	database.TaskUpdate
}

// handleTasks serves /api/tasks: list (newest first), create, update.
func (s *HTTPServer) handleTasks(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("tasks")
	switch r.Method {
	case http.MethodGet:
		tasks, err := s.db.ListTasks(r.Context())
		if err != nil {
			s.log.Error().Err(err).Msg("failed to list tasks")
			writeJSON(w, http.StatusInternalServerError, []models.Task{})
			return
		}
		if tasks == nil {
			tasks = []models.Task{}
		}
		writeJSON(w, http.StatusOK, tasks)

	case http.MethodPost:
		var req CreateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		now := time.Now()
		status := req.Status
		if status == "" {
			status = models.StatusPending
		}
		task := &models.Task{
			ID:          models.NewEntityID("task", now),
			Title:       req.Title,
			Description: req.Description,
			AssignedTo:  req.AssignedTo,
			DueDate:     req.DueDate,
			Status:      status,
			CreatedAt:   now,
		}
		if err := s.db.CreateTask(r.Context(), task); err != nil {
			s.log.Error().Err(err).Msg("failed to add task")
			writeError(w, http.StatusInternalServerError, "Failed to add task")
			return
		}
		writeJSON(w, http.StatusOK, task)

	case http.MethodPut:
		var req UpdateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.ID == "" {
			writeError(w, http.StatusBadRequest, "Missing ID")
			return
		}

		err := s.db.UpdateTask(r.Context(), req.ID, req.TaskUpdate)
		if err == database.ErrNotFound {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		if err != nil {
			s.log.Error().Err(err).Str("task_id", req.ID).Msg("failed to update task")
			writeError(w, http.StatusInternalServerError, "Failed to update task")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
