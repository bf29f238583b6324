package database

import (
	"context"
	"database/sql"
	"fmt"

	"cleansuite/internal/models"
)

// CreateService persists a new service.
func (db *DB) CreateService(ctx context.Context, s *models.Service) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO services (id, title, description, price, image_url, active)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Title, s.Description, s.Price, s.ImageURL, s.Active,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// ListServices returns all services ordered by price ascending, the order
// the public listing uses.
func (db *DB) ListServices(ctx context.Context) ([]models.Service, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, description, price, image_url, active
		FROM services ORDER BY price ASC`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Price, &s.ImageURL, &s.Active); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// ServiceUpdate carries the fields of a partial service update.
type ServiceUpdate struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"imageUrl"`
	Active      *bool    `json:"active"`
}

// UpdateService applies a partial update, ErrNotFound when the id is absent.
func (db *DB) UpdateService(ctx context.Context, id string, upd ServiceUpdate) error {
	var s models.Service
	err := db.QueryRowContext(ctx, `
		SELECT id, title, description, price, image_url, active
		FROM services WHERE id = ?`, id).
		Scan(&s.ID, &s.Title, &s.Description, &s.Price, &s.ImageURL, &s.Active)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get service: %w", err)
	}

	if upd.Title != nil {
		s.Title = *upd.Title
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	if upd.Price != nil {
		s.Price = *upd.Price
	}
	if upd.ImageURL != nil {
		s.ImageURL = *upd.ImageURL
	}
	if upd.Active != nil {
		s.Active = *upd.Active
	}

	_, err = db.ExecContext(ctx, `
		UPDATE services
		SET title = ?, description = ?, price = ?, image_url = ?, active = ?
		WHERE id = ?`,
		s.Title, s.Description, s.Price, s.ImageURL, s.Active, id,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// DeleteService removes a service by id.
func (db *DB) DeleteService(ctx context.Context, id string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

// UpsertService inserts or replaces a service, used by the JSON migration.
func (db *DB) UpsertService(ctx context.Context, s *models.Service) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO services (id, title, description, price, image_url, active)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title, description = excluded.description,
			price = excluded.price, image_url = excluded.image_url,
			active = excluded.active`,
		s.ID, s.Title, s.Description, s.Price, s.ImageURL, s.Active,
	)
	if err != nil {
		return fmt.Errorf("upsert service: %w", err)
	}
	return nil
}
