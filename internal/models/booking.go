package models

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Booking statuses as used by the admin portal. The status field is a free
// string on purpose: updates may set any value, there is no state machine.
const (
	StatusPending    = "Pending"
	StatusConfirmed  = "Confirmed"
	StatusOnWay      = "On Way"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusDone       = "Done"
)

// Payment statuses.
const (
	PaymentUnpaid = "Unpaid"
	PaymentPaid   = "Paid"
)

// Payment is the payment sub-record of a booking.
type Payment struct {
	Status string  `json:"status"`
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

// Booking represents a scheduled cleaning appointment.
type Booking struct {
	ID           string    `json:"id"`
	Service      string    `json:"service"`
	Date         string    `json:"date"` // YYYY-MM-DD
	Time         string    `json:"time"` // slot start, HH:MM
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	AssignedTo   string    `json:"assignedTo,omitempty"`
	Status       string    `json:"status"`
	CleaningCode string    `json:"cleaningCode"`
	Payment      Payment   `json:"payment"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsClosed reports whether the booking has been closed out by the admin.
func (b *Booking) IsClosed() bool {
	return b.Status == StatusDone
}

// IsFinished reports whether the booking reached a terminal state.
func (b *Booking) IsFinished() bool {
	return b.Status == StatusDone || b.Status == StatusCompleted
}

// IsAssigned reports whether a staff member is assigned to the booking.
func (b *Booking) IsAssigned() bool {
	return b.AssignedTo != ""
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewBookingID returns a time-derived booking identifier.
func NewBookingID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// NewCleaningCode generates a human-shareable reference code of the form
// CLN-<timestamp>-<6 random uppercase alphanumeric chars>. Not a security
// token.
func NewCleaningCode(now time.Time) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return fmt.Sprintf("CLN-%d-%s", now.UnixMilli(), suffix)
}
