package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var catalog = []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}

func TestForDate(t *testing.T) {
	tests := []struct {
		name        string
		booked      []string
		unavailable []string
	}{
		{
			name:        "no bookings leaves all slots open",
			booked:      nil,
			unavailable: nil,
		},
		{
			name:        "booked times are marked unavailable",
			booked:      []string{"09:00", "14:00"},
			unavailable: []string{"09:00", "14:00"},
		},
		{
			name:        "booked time outside the catalog is ignored",
			booked:      []string{"12:00"},
			unavailable: nil,
		},
		{
			name:        "duplicate booked times collapse",
			booked:      []string{"10:00", "10:00"},
			unavailable: []string{"10:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := ForDate(catalog, tt.booked)
			assert.Len(t, slots, len(catalog))

			blocked := make(map[string]bool)
			for _, u := range tt.unavailable {
				blocked[u] = true
			}
			for i, slot := range slots {
				// Order must mirror the catalog.
				assert.Equal(t, catalog[i], slot.Time)
				assert.Equal(t, !blocked[slot.Time], slot.Available, "slot %s", slot.Time)
			}
		})
	}
}

func TestForDate_EmptyCatalog(t *testing.T) {
	slots := ForDate(nil, []string{"09:00"})
	assert.Empty(t, slots)
}
