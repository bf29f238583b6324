// Package alerts derives transient system alerts from the current booking
// set. Alerts are recomputed on every read and never persisted; their
// identifiers are fixed per kind so clients can deduplicate across reads.
package alerts

import (
	"fmt"
	"time"

	"cleansuite/internal/models"
)

// Fixed alert identifiers, one per alert kind.
const (
	IDTodayBookings = "alert-today-bookings"
	IDUnassigned    = "alert-unassigned"
	IDOverdue       = "alert-overdue"
)

const dateLayout = "2006-01-02"

// Generate returns the synthetic alerts for the booking set as of now, in
// fixed order: today's agenda, unassigned, overdue. An alert is emitted
// only when its booking count is positive.
func Generate(bookings []models.Booking, now time.Time) []models.Notification {
	today := now.Format(dateLayout)

	var todayCount, unassignedCount, overdueCount int
	for i := range bookings {
		b := &bookings[i]
		if b.Date == today && !b.IsClosed() {
			todayCount++
		}
		if !b.IsAssigned() && !b.IsClosed() {
			unassignedCount++
		}
		// ISO dates compare chronologically as strings.
		if b.Date < today && !b.IsFinished() {
			overdueCount++
		}
	}

	var out []models.Notification
	if todayCount > 0 {
		out = append(out, models.Notification{
			ID:            IDTodayBookings,
			Type:          "reminder",
			Title:         "Today's Agenda",
			Message:       fmt.Sprintf("You have %d booking(s) scheduled for today.", todayCount),
			Recipient:     "Admin",
			RecipientType: "system",
			Priority:      "high",
			CreatedAt:     now,
		})
	}
	if unassignedCount > 0 {
		out = append(out, models.Notification{
			ID:            IDUnassigned,
			Type:          "job_assignment",
			Title:         "Unassigned Bookings",
			Message:       fmt.Sprintf("There are %d booking(s) waiting for staff assignment.", unassignedCount),
			Recipient:     "Admin",
			RecipientType: "system",
			Priority:      "critical",
			CreatedAt:     now,
		})
	}
	if overdueCount > 0 {
		out = append(out, models.Notification{
			ID:            IDOverdue,
			Type:          "reminder",
			Title:         "Overdue Bookings",
			Message:       fmt.Sprintf("Action Needed: %d booking(s) from previous days are still pending/active.", overdueCount),
			Recipient:     "Admin",
			RecipientType: "system",
			Priority:      "critical",
			CreatedAt:     now,
		})
	}
	return out
}

// Merge prepends the synthetic alerts to the persisted notifications.
func Merge(synthetic, persisted []models.Notification) []models.Notification {
	merged := make([]models.Notification, 0, len(synthetic)+len(persisted))
	merged = append(merged, synthetic...)
	merged = append(merged, persisted...)
	return merged
}
