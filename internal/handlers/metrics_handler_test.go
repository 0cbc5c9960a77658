package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsDefaultWindow(t *testing.T) {
	r := newTestRouter(defaultStores(), "", "")

	w := doJSON(r, http.MethodGet, "/api/admin/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	byDay := resp["bookingsByDay"].([]interface{})
	require.Len(t, byDay, 7)

	prev := ""
	for _, entry := range byDay {
		day := entry.(map[string]interface{})
		count := day["count"].(float64)
		assert.GreaterOrEqual(t, count, float64(3))
		assert.LessOrEqual(t, count, float64(20))

		date := day["date"].(string)
		assert.Greater(t, date, prev, "dates must be strictly increasing")
		prev = date
	}
	assert.Equal(t, time.Now().Format("2006-01-02"), prev, "window must end today")

	utilization := resp["utilization"].(map[string]interface{})
	assert.Equal(t, float64(7*80), utilization["totalSlots"])

	booked := float64(0)
	for _, entry := range byDay {
		booked += entry.(map[string]interface{})["count"].(float64)
	}
	assert.Equal(t, booked, utilization["bookedSlots"])
}

func TestMetricsCustomWindow(t *testing.T) {
	r := newTestRouter(defaultStores(), "", "")

	w := doJSON(r, http.MethodGet, "/api/admin/metrics?days=30", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Len(t, resp["bookingsByDay"], 30)
	assert.Equal(t, float64(30*80), resp["utilization"].(map[string]interface{})["totalSlots"])
}

func TestMetricsRejectsBadDays(t *testing.T) {
	for _, q := range []string{"days=abc", "days=0", "days=-3"} {
		r := newTestRouter(defaultStores(), "", "")
		w := doJSON(r, http.MethodGet, "/api/admin/metrics?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}
