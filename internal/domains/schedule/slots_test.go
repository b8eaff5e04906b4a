package schedule_test

import (
	"testing"
	"time"

	"arena/internal/domains/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSlots_CountMatchesWholeHours(t *testing.T) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		hours := schedule.DefaultHours(day)
		date := base.AddDate(0, 0, int(day-base.Weekday()+7)%7)
		window := hours.On(date)

		slots := schedule.BuildSlots(window, nil)

		assert.Len(t, slots, int(window.Duration()/time.Hour), day.String())
		assert.Equal(t, hours.Opening.Hour(), slots[0].Hour())
		assert.Equal(t, window.End, slots[len(slots)-1].End)
	}
}

func TestBuildSlots_DropsTrailingPartialHour(t *testing.T) {
	slots := schedule.BuildSlots(span(9, 0, 12, 30), nil)

	require.Len(t, slots, 3)
	assert.Equal(t, 11, slots[2].Hour())
}

func TestBuildSlots_MarksBusyHours(t *testing.T) {
	busy := []schedule.Interval{
		span(14, 0, 16, 0),
		span(18, 30, 18, 45),
		span(20, 0, 20, 0),
	}

	slots := schedule.BuildSlots(span(6, 0, 22, 0), busy)

	unavailable := []int{}

	for _, slot := range slots {
		if !slot.Available {
			unavailable = append(unavailable, slot.Hour())
		}
	}

	assert.Equal(t, []int{14, 15, 18}, unavailable)
	assert.Len(t, slots, 16)
}

func TestBuildSlots_EmptyWindow(t *testing.T) {
	assert.Empty(t, schedule.BuildSlots(span(10, 0, 10, 0), nil))
	assert.Empty(t, schedule.BuildSlots(span(10, 0, 10, 59), nil))
}

func TestCountBookableSlots(t *testing.T) {
	mondayToSunday := schedule.NewInterval(base, base.AddDate(0, 0, 7))

	// five weekdays of 16, a Saturday of 14 and a Sunday of 12
	assert.Equal(t, 5*16+14+12, schedule.CountBookableSlots(schedule.NewPolicy(nil), mondayToSunday))
	assert.Equal(t, 0, schedule.CountBookableSlots(schedule.NewPolicy(nil), span(10, 0, 10, 0)))
}
