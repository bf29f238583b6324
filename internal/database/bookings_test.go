package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleansuite/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	logger := zerolog.Nop()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"), &logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testBooking(id string) *models.Booking {
	return &models.Booking{
		ID:           id,
		Service:      "Deep Cleaning",
		Date:         "2026-03-20",
		Time:         "09:00",
		Name:         "Anna",
		Email:        "anna@example.com",
		Status:       models.StatusPending,
		CleaningCode: "CLN-1-ABC123",
		Payment:      models.Payment{Status: models.PaymentUnpaid, Amount: 120, Method: "Cash"},
		CreatedAt:    time.Now().UTC(),
	}
}

func ptr[T any](v T) *T { return &v }

func TestCreateAndGetBooking(t *testing.T) {
	db := newTestDB(t)

	b := testBooking("1001")
	require.NoError(t, db.CreateBooking(context.Background(), b))

	got, err := db.GetBooking(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, b.Service, got.Service)
	assert.Equal(t, b.Payment, got.Payment)

	_, err = db.GetBooking(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateBooking_DuplicateID(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.CreateBooking(context.Background(), testBooking("1001")))
	assert.Error(t, db.CreateBooking(context.Background(), testBooking("1001")))
}

func TestListBookings_Order(t *testing.T) {
	db := newTestDB(t)

	older := testBooking("1001")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := testBooking("1002")
	require.NoError(t, db.CreateBooking(context.Background(), older))
	require.NoError(t, db.CreateBooking(context.Background(), newer))

	bookings, err := db.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "1002", bookings[0].ID)
	assert.Equal(t, "1001", bookings[1].ID)
}

func TestBookedTimes(t *testing.T) {
	db := newTestDB(t)

	a := testBooking("1001")
	b := testBooking("1002")
	b.Time = "14:00"
	other := testBooking("1003")
	other.Date = "2026-03-21"
	require.NoError(t, db.CreateBooking(context.Background(), a))
	require.NoError(t, db.CreateBooking(context.Background(), b))
	require.NoError(t, db.CreateBooking(context.Background(), other))

	times, err := db.BookedTimes(context.Background(), "2026-03-20")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"09:00", "14:00"}, times)
}

func TestUpdateBooking_PaymentMerge(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.CreateBooking(context.Background(), testBooking("1001")))

	updated, err := db.UpdateBooking(context.Background(), "1001", BookingUpdate{
		Payment: &PaymentPatch{Status: ptr(models.PaymentPaid)},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, updated.Payment.Status)
	assert.Equal(t, 120.0, updated.Payment.Amount)
	assert.Equal(t, "Cash", updated.Payment.Method)

	// Nil fields leave everything untouched.
	updated, err = db.UpdateBooking(context.Background(), "1001", BookingUpdate{
		AssignedTo: ptr("staff-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "staff-1", updated.AssignedTo)
	assert.Equal(t, models.PaymentPaid, updated.Payment.Status)
	assert.Equal(t, models.StatusPending, updated.Status)
}

func TestUpdateBooking_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.UpdateBooking(context.Background(), "missing", BookingUpdate{Status: ptr("Confirmed")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBooking_Idempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.CreateBooking(context.Background(), testBooking("1001")))

	require.NoError(t, db.DeleteBooking(context.Background(), "1001"))
	require.NoError(t, db.DeleteBooking(context.Background(), "1001"))

	_, err := db.GetBooking(context.Background(), "1001")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAllBookings(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.CreateBooking(context.Background(), testBooking("1001")))
	require.NoError(t, db.CreateBooking(context.Background(), testBooking("1002")))

	count, err := db.DeleteAllBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	bookings, err := db.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestUpsertBooking(t *testing.T) {
	db := newTestDB(t)

	b := testBooking("1001")
	require.NoError(t, db.UpsertBooking(context.Background(), b))

	b.Status = models.StatusDone
	require.NoError(t, db.UpsertBooking(context.Background(), b))

	got, err := db.GetBooking(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, got.Status)

	bookings, err := db.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestHealth(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, db.Health(context.Background()))
}
