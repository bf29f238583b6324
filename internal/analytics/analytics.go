// Package analytics computes the owner dashboard aggregates from the full
// booking and staff collections. Every request recomputes from scratch in a
// single pass; at current data volumes that is cheaper than maintaining
// incremental state.
package analytics

import (
	"math"
	"sort"
	"time"

	"cleansuite/internal/models"
)

const dateLayout = "2006-01-02"

// Overview holds the top-level KPI figures.
type Overview struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalBookings   int     `json:"totalBookings"`
	UniqueCustomers int     `json:"uniqueCustomers"`
	RetentionRate   int     `json:"retentionRate"`
}

// MonthRevenue is one bucket of the trailing revenue trend.
type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// ServiceStat counts bookings per distinct service name.
type ServiceStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StaffPerformance aggregates revenue and completed jobs per staff member.
type StaffPerformance struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role,omitempty"`
	Revenue       float64 `json:"revenue"`
	JobsCompleted int     `json:"jobsCompleted"`
}

// Report is the full analytics response.
type Report struct {
	Overview         Overview           `json:"overview"`
	MonthlyRevenue   []MonthRevenue     `json:"monthlyRevenue"`
	ServiceStats     []ServiceStat      `json:"serviceStats"`
	StaffPerformance []StaffPerformance `json:"staffPerformance"`
}

// Build aggregates bookings and staff into a report. Revenue is the sum of
// payment amounts; that is the canonical revenue definition everywhere.
func Build(bookings []models.Booking, staff []models.Staff, now time.Time) Report {
	return Report{
		Overview:         buildOverview(bookings),
		MonthlyRevenue:   buildMonthlyRevenue(bookings, now),
		ServiceStats:     buildServiceStats(bookings),
		StaffPerformance: buildStaffPerformance(bookings, staff),
	}
}

func buildOverview(bookings []models.Booking) Overview {
	var total float64
	perCustomer := make(map[string]int)
	for i := range bookings {
		total += bookings[i].Payment.Amount
		if bookings[i].Email != "" {
			perCustomer[bookings[i].Email]++
		}
	}

	repeat := 0
	for _, n := range perCustomer {
		if n > 1 {
			repeat++
		}
	}

	retention := 0
	if len(perCustomer) > 0 {
		retention = int(math.Round(float64(repeat) / float64(len(perCustomer)) * 100))
	}

	return Overview{
		TotalRevenue:    total,
		TotalBookings:   len(bookings),
		UniqueCustomers: len(perCustomer),
		RetentionRate:   retention,
	}
}

// buildMonthlyRevenue sums revenue per calendar month over the trailing six
// months, oldest first.
func buildMonthlyRevenue(bookings []models.Booking, now time.Time) []MonthRevenue {
	// Anchor on the first of the month so AddDate never skips a short month.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	type bucket struct {
		label   string
		revenue float64
	}
	index := make(map[string]*bucket, 6)
	order := make([]*bucket, 0, 6)
	for i := 5; i >= 0; i-- {
		m := anchor.AddDate(0, -i, 0)
		b := &bucket{label: m.Format("Jan")}
		index[m.Format("2006-01")] = b
		order = append(order, b)
	}

	for i := range bookings {
		d, err := time.Parse(dateLayout, bookings[i].Date)
		if err != nil {
			continue
		}
		if b, ok := index[d.Format("2006-01")]; ok {
			b.revenue += bookings[i].Payment.Amount
		}
	}

	out := make([]MonthRevenue, len(order))
	for i, b := range order {
		out[i] = MonthRevenue{Month: b.label, Revenue: b.revenue}
	}
	return out
}

func buildServiceStats(bookings []models.Booking) []ServiceStat {
	counts := make(map[string]int)
	for i := range bookings {
		if bookings[i].Service != "" {
			counts[bookings[i].Service]++
		}
	}

	stats := make([]ServiceStat, 0, len(counts))
	for name, count := range counts {
		stats = append(stats, ServiceStat{Name: name, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}

func buildStaffPerformance(bookings []models.Booking, staff []models.Staff) []StaffPerformance {
	byStaff := make(map[string]*StaffPerformance, len(staff))
	out := make([]StaffPerformance, 0, len(staff))
	for _, m := range staff {
		out = append(out, StaffPerformance{ID: m.ID, Name: m.Name, Role: m.Role})
	}
	for i := range out {
		byStaff[out[i].ID] = &out[i]
	}

	for i := range bookings {
		b := &bookings[i]
		perf, ok := byStaff[b.AssignedTo]
		if !ok {
			continue
		}
		perf.Revenue += b.Payment.Amount
		if b.IsFinished() {
			perf.JobsCompleted++
		}
	}
	return out
}
