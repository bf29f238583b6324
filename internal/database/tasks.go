package database

import (
	"context"
	"database/sql"
	"fmt"

	"cleansuite/internal/models"
)

// CreateTask persists a new task.
func (db *DB) CreateTask(ctx context.Context, t *models.Task) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, description, assigned_to, due_date, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, t.AssignedTo, t.DueDate, t.Status, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// ListTasks returns all tasks, newest first.
func (db *DB) ListTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, description, assigned_to, due_date, status, created_at
		FROM tasks ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.DueDate, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// TaskUpdate carries the fields of a partial task update.
type TaskUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	AssignedTo  *string `json:"assignedTo"`
	DueDate     *string `json:"dueDate"`
	Status      *string `json:"status"`
}

// UpdateTask applies a partial update, ErrNotFound when the id is absent.
func (db *DB) UpdateTask(ctx context.Context, id string, upd TaskUpdate) error {
	var t models.Task
	err := db.QueryRowContext(ctx, `
		SELECT id, title, description, assigned_to, due_date, status, created_at
		FROM tasks WHERE id = ?`, id).
		Scan(&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.DueDate, &t.Status, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}

	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.AssignedTo != nil {
		t.AssignedTo = *upd.AssignedTo
	}
	if upd.DueDate != nil {
		t.DueDate = *upd.DueDate
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}

	_, err = db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, assigned_to = ?, due_date = ?, status = ?
		WHERE id = ?`,
		t.Title, t.Description, t.AssignedTo, t.DueDate, t.Status, id,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// UpsertTask inserts or replaces a task, used by the JSON migration.
func (db *DB) UpsertTask(ctx context.Context, t *models.Task) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, description, assigned_to, due_date, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title, description = excluded.description,
			assigned_to = excluded.assigned_to, due_date = excluded.due_date,
			status = excluded.status, created_at = excluded.created_at`,
		t.ID, t.Title, t.Description, t.AssignedTo, t.DueDate, t.Status, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert task: %w", err)
	}
	return nil
}

// UpsertNotification inserts or replaces a notification row. Reads go
// through the filestore; this exists only for the JSON migration.
func (db *DB) UpsertNotification(ctx context.Context, n *models.Notification) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO notifications (id, type, title, message, recipient, recipient_type, priority, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type, title = excluded.title,
			message = excluded.message, recipient = excluded.recipient,
			recipient_type = excluded.recipient_type,
			priority = excluded.priority, status = excluded.status,
			created_at = excluded.created_at`,
		n.ID, n.Type, n.Title, n.Message, n.Recipient, n.RecipientType,
		n.Priority, n.Status, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert notification: %w", err)
	}
	return nil
}
