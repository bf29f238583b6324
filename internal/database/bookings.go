package database

import (
	"context"
	"database/sql"
	"fmt"

	"cleansuite/internal/models"
)

const bookingColumns = `id, service, date, time, name, email, phone, address,
	assigned_to, status, cleaning_code, payment_status, payment_amount,
	payment_method, created_at`

func scanBooking(row interface{ Scan(...any) error }) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.Service, &b.Date, &b.Time, &b.Name, &b.Email, &b.Phone,
		&b.Address, &b.AssignedTo, &b.Status, &b.CleaningCode,
		&b.Payment.Status, &b.Payment.Amount, &b.Payment.Method, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBooking persists a new booking record.
func (db *DB) CreateBooking(ctx context.Context, b *models.Booking) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO bookings (
			id, service, date, time, name, email, phone, address,
			assigned_to, status, cleaning_code, payment_status,
			payment_amount, payment_method, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Service, b.Date, b.Time, b.Name, b.Email, b.Phone, b.Address,
		b.AssignedTo, b.Status, b.CleaningCode, b.Payment.Status,
		b.Payment.Amount, b.Payment.Method, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// GetBooking returns a booking by id, ErrNotFound when absent.
func (db *DB) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// ListBookings returns all bookings, newest first.
func (db *DB) ListBookings(ctx context.Context) ([]models.Booking, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// BookedTimes returns the time values of all bookings on the given date.
func (db *DB) BookedTimes(ctx context.Context, date string) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT time FROM bookings WHERE date = ?`, date)
	if err != nil {
		return nil, fmt.Errorf("booked times: %w", err)
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan time: %w", err)
		}
		times = append(times, t)
	}
	return times, rows.Err()
}

// BookingUpdate carries the fields of a partial booking update. Nil fields
// are left untouched; the payment patch is merged key-by-key onto the
// existing payment sub-record.
type BookingUpdate struct {
	Status     *string       `json:"status"`
	AssignedTo *string       `json:"assignedTo"`
	Payment    *PaymentPatch `json:"payment"`
}

// PaymentPatch is a partial payment update.
type PaymentPatch struct {
	Status *string  `json:"status"`
	Amount *float64 `json:"amount"`
	Method *string  `json:"method"`
}

// UpdateBooking applies a partial update and returns the updated record.
func (db *DB) UpdateBooking(ctx context.Context, id string, upd BookingUpdate) (*models.Booking, error) {
	existing, err := db.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil {
		existing.Status = *upd.Status
	}
	if upd.AssignedTo != nil {
		existing.AssignedTo = *upd.AssignedTo
	}
	if upd.Payment != nil {
		if upd.Payment.Status != nil {
			existing.Payment.Status = *upd.Payment.Status
		}
		if upd.Payment.Amount != nil {
			existing.Payment.Amount = *upd.Payment.Amount
		}
		if upd.Payment.Method != nil {
			existing.Payment.Method = *upd.Payment.Method
		}
	}

	_, err = db.ExecContext(ctx, `
		UPDATE bookings
		SET status = ?, assigned_to = ?, payment_status = ?,
		    payment_amount = ?, payment_method = ?
		WHERE id = ?`,
		existing.Status, existing.AssignedTo, existing.Payment.Status,
		existing.Payment.Amount, existing.Payment.Method, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return existing, nil
}

// DeleteBooking removes a booking by id. Deleting an absent id is not an
// error; delete is idempotent.
func (db *DB) DeleteBooking(ctx context.Context, id string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

// DeleteAllBookings removes every booking whose id is not the "0" sentinel.
// No booking ever carries that id (identifiers are unixmilli strings), so
// this clears the whole table; the guard is kept to match the admin tool's
// established delete-all semantics.
func (db *DB) DeleteAllBookings(ctx context.Context) (int64, error) {
	res, err := db.ExecContext(ctx, `DELETE FROM bookings WHERE id != '0'`)
	if err != nil {
		return 0, fmt.Errorf("delete all bookings: %w", err)
	}
	return res.RowsAffected()
}

// UpsertBooking inserts or replaces a booking, used by the JSON migration.
func (db *DB) UpsertBooking(ctx context.Context, b *models.Booking) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO bookings (
			id, service, date, time, name, email, phone, address,
			assigned_to, status, cleaning_code, payment_status,
			payment_amount, payment_method, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			service = excluded.service, date = excluded.date,
			time = excluded.time, name = excluded.name,
			email = excluded.email, phone = excluded.phone,
			address = excluded.address, assigned_to = excluded.assigned_to,
			status = excluded.status, cleaning_code = excluded.cleaning_code,
			payment_status = excluded.payment_status,
			payment_amount = excluded.payment_amount,
			payment_method = excluded.payment_method,
			created_at = excluded.created_at`,
		b.ID, b.Service, b.Date, b.Time, b.Name, b.Email, b.Phone, b.Address,
		b.AssignedTo, b.Status, b.CleaningCode, b.Payment.Status,
		b.Payment.Amount, b.Payment.Method, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert booking: %w", err)
	}
	return nil
}
