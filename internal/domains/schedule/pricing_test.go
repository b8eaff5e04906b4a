package schedule_test

import (
	"testing"
	"time"

	"arena/internal/domains/schedule"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name     string
		interval schedule.Interval
		rate     float64
		want     float64
	}{
		{name: "one hour", interval: span(10, 0, 11, 0), rate: 100, want: 100},
		{name: "two and a half hours", interval: span(10, 0, 12, 30), rate: 100, want: 250},
		{name: "zero duration", interval: span(10, 0, 10, 0), rate: 100, want: 0},
		{name: "inverted", interval: span(11, 0, 10, 0), rate: 100, want: 0},
		{name: "rounds half up", interval: span(10, 0, 10, 45), rate: 33.33, want: 25.0},
		{name: "fractional rate", interval: span(10, 0, 11, 30), rate: 45.50, want: 68.25},
		{name: "forty minutes", interval: span(10, 0, 10, 40), rate: 10, want: 6.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, schedule.Price(tt.interval, tt.rate), 1e-9)
		})
	}
}

func TestPriceCents_HalfUp(t *testing.T) {
	// 0.5 cents exactly: 18 seconds at 1.00/hour
	assert.Equal(t, int64(1), schedule.PriceCents(18*time.Second, 1))
	assert.Equal(t, int64(0), schedule.PriceCents(17*time.Second, 1))
}

func TestPrice_MonotonicInDuration(t *testing.T) {
	rate := 37.45
	previous := 0.0

	for minutes := 0; minutes <= 16*60; minutes += 5 {
		price := schedule.Price(schedule.NewInterval(base, base.Add(time.Duration(minutes)*time.Minute)), rate)

		assert.GreaterOrEqual(t, price, previous, "minutes=%d", minutes)

		previous = price
	}
}

func TestAmountToCents(t *testing.T) {
	assert.Equal(t, int64(25050), schedule.AmountToCents(250.5))
	assert.InDelta(t, 250.5, schedule.CentsToAmount(25050), 1e-9)
}
