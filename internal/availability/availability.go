// Package availability marks which of the configured daily time slots are
// still open on a given date.
package availability

// Slot is one catalog entry with its availability flag for the requested
// date.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// ForDate maps the slot catalog against the times already booked on a date.
// A slot is unavailable as soon as its value appears among the booked
// times; one booking occupies a slot entirely.
func ForDate(catalog []string, bookedTimes []string) []Slot {
	booked := make(map[string]bool, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = true
	}

	slots := make([]Slot, len(catalog))
	for i, t := range catalog {
		slots[i] = Slot{Time: t, Available: !booked[t]}
	}
	return slots
}
