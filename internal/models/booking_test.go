package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_IsFinished(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected bool
	}{
		{name: "pending is not finished", status: StatusPending, expected: false},
		{name: "confirmed is not finished", status: StatusConfirmed, expected: false},
		{name: "in progress is not finished", status: StatusInProgress, expected: false},
		{name: "completed is finished", status: StatusCompleted, expected: true},
		{name: "done is finished", status: StatusDone, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Booking{Status: tt.status}
			assert.Equal(t, tt.expected, b.IsFinished())
		})
	}
}

func TestBooking_IsClosed(t *testing.T) {
	// Completed counts as finished work but the booking is only closed out
	// once the admin marks it Done.
	completed := Booking{Status: StatusCompleted}
	assert.False(t, completed.IsClosed())

	done := Booking{Status: StatusDone}
	assert.True(t, done.IsClosed())
}

func TestBooking_IsAssigned(t *testing.T) {
	b := Booking{}
	assert.False(t, b.IsAssigned())

	b.AssignedTo = "staff-1"
	assert.True(t, b.IsAssigned())
}

func TestNewBookingID(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	id := NewBookingID(now)
	assert.Equal(t, "1773570600000", id)
}

func TestNewCleaningCode(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^CLN-1773570600000-[A-Z0-9]{6}$`)

	for i := 0; i < 20; i++ {
		code := NewCleaningCode(now)
		assert.Regexp(t, pattern, code)
	}
}

func TestNewEntityID(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "staff-1773570600000", NewEntityID("staff", now))
	assert.Equal(t, "notif-1773570600000", NewEntityID("notif", now))
}

func TestWorker_Sanitized(t *testing.T) {
	w := Worker{
		ID:       "worker-1",
		Username: "anna",
		Password: "secret",
		StaffID:  "staff-1",
		Name:     "Anna",
	}

	clean := w.Sanitized()
	assert.Empty(t, clean.Password)
	assert.Equal(t, "anna", clean.Username)
	// The original record keeps its password.
	assert.Equal(t, "secret", w.Password)
}
