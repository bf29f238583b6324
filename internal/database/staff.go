package database

import (
	"context"
	"database/sql"
	"fmt"

	"cleansuite/internal/models"
)

// CreateStaff persists a new staff member.
func (db *DB) CreateStaff(ctx context.Context, s *models.Staff) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO staff (id, name, role, email, phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Role, s.Email, s.Phone, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

// ListStaff returns all staff members.
func (db *DB) ListStaff(ctx context.Context) ([]models.Staff, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, role, email, phone, created_at FROM staff`)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	var staff []models.Staff
	for rows.Next() {
		var s models.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Role, &s.Email, &s.Phone, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

// StaffUpdate carries the fields of a partial staff update.
type StaffUpdate struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// UpdateStaff applies a partial update, ErrNotFound when the id is absent.
func (db *DB) UpdateStaff(ctx context.Context, id string, upd StaffUpdate) error {
	var s models.Staff
	err := db.QueryRowContext(ctx, `
		SELECT id, name, role, email, phone, created_at FROM staff WHERE id = ?`, id).
		Scan(&s.ID, &s.Name, &s.Role, &s.Email, &s.Phone, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get staff: %w", err)
	}

	if upd.Name != nil {
		s.Name = *upd.Name
	}
	if upd.Role != nil {
		s.Role = *upd.Role
	}
	if upd.Email != nil {
		s.Email = *upd.Email
	}
	if upd.Phone != nil {
		s.Phone = *upd.Phone
	}

	_, err = db.ExecContext(ctx, `
		UPDATE staff SET name = ?, role = ?, email = ?, phone = ? WHERE id = ?`,
		s.Name, s.Role, s.Email, s.Phone, id,
	)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	return nil
}

// DeleteStaff removes a staff member by id.
func (db *DB) DeleteStaff(ctx context.Context, id string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM staff WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}

// UpsertStaff inserts or replaces a staff member, used by the JSON migration.
func (db *DB) UpsertStaff(ctx context.Context, s *models.Staff) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO staff (id, name, role, email, phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, role = excluded.role,
			email = excluded.email, phone = excluded.phone,
			created_at = excluded.created_at`,
		s.ID, s.Name, s.Role, s.Email, s.Phone, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert staff: %w", err)
	}
	return nil
}
