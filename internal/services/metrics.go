package services

import (
	"math/rand"
	"time"
)

// slotsPerDay is the fixed daily slot capacity used for utilization
// accounting.
const slotsPerDay = 80

type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

type Utilization struct {
	BookedSlots int `json:"bookedSlots"`
	TotalSlots  int `json:"totalSlots"`
}

// MetricsService produces the dashboard booking metrics. Counts are
// generated, not aggregated: the dashboard consumes this as mock data
// and the response shape is the contract.
type MetricsService struct{}

func NewMetricsService() *MetricsService {
	return &MetricsService{}
}

// BookingsByDay returns one entry per calendar day, ending today, each
// with a uniform random count in [3,20].
func (s *MetricsService) BookingsByDay(days int) []DayCount {
	today := time.Now()
	out := make([]DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		out = append(out, DayCount{
			Date:  d.Format("2006-01-02"),
			Count: 3 + rand.Intn(18),
		})
	}
	return out
}

// Utilization sums booked slots across the given days against the
// fixed per-day capacity.
func (s *MetricsService) Utilization(byDay []DayCount) Utilization {
	booked := 0
	for _, d := range byDay {
		booked += d.Count
	}
	return Utilization{
		BookedSlots: booked,
		TotalSlots:  len(byDay) * slotsPerDay,
	}
}
