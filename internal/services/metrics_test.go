package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingsByDayWindow(t *testing.T) {
	svc := NewMetricsService()
	byDay := svc.BookingsByDay(7)
	require.Len(t, byDay, 7)

	prev := ""
	for _, d := range byDay {
		assert.GreaterOrEqual(t, d.Count, 3)
		assert.LessOrEqual(t, d.Count, 20)
		assert.Greater(t, d.Date, prev)
		prev = d.Date
	}
	assert.Equal(t, time.Now().Format("2006-01-02"), prev)
}

func TestBookingsByDaySingleDay(t *testing.T) {
	svc := NewMetricsService()
	byDay := svc.BookingsByDay(1)
	require.Len(t, byDay, 1)
	assert.Equal(t, time.Now().Format("2006-01-02"), byDay[0].Date)
}

func TestUtilization(t *testing.T) {
	svc := NewMetricsService()
	u := svc.Utilization([]DayCount{
		{Date: "2026-08-26", Count: 5},
		{Date: "2026-08-27", Count: 12},
		{Date: "2026-08-28", Count: 3},
	})
	assert.Equal(t, 20, u.BookedSlots)
	assert.Equal(t, 240, u.TotalSlots)
}

func TestUtilizationSevenDayCapacity(t *testing.T) {
	svc := NewMetricsService()
	u := svc.Utilization(svc.BookingsByDay(7))
	assert.Equal(t, 560, u.TotalSlots)
}
