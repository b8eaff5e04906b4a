package schedule_test

import (
	"testing"
	"time"

	"arena/internal/domains/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHours(t *testing.T) {
	tests := []struct {
		day     time.Weekday
		opening string
		closing string
	}{
		{day: time.Monday, opening: "06:00", closing: "22:00"},
		{day: time.Friday, opening: "06:00", closing: "22:00"},
		{day: time.Saturday, opening: "07:00", closing: "21:00"},
		{day: time.Sunday, opening: "08:00", closing: "20:00"},
	}

	for _, tt := range tests {
		t.Run(tt.day.String(), func(t *testing.T) {
			hours := schedule.DefaultHours(tt.day)

			assert.Equal(t, tt.opening, hours.Opening.String())
			assert.Equal(t, tt.closing, hours.Closing.String())
		})
	}
}

func TestPolicy_HoursFor(t *testing.T) {
	pool := schedule.Hours{Opening: schedule.NewTimeOfDay(9, 30), Closing: schedule.NewTimeOfDay(18, 0)}

	policy := schedule.NewPolicy([]schedule.Rule{
		{Weekday: time.Tuesday, Hours: pool},
		{Weekday: time.Wednesday, Hours: schedule.Hours{Opening: schedule.NewTimeOfDay(20, 0), Closing: schedule.NewTimeOfDay(8, 0)}},
	})

	tuesday := time.Date(2025, time.June, 3, 12, 0, 0, 0, time.UTC)
	wednesday := tuesday.AddDate(0, 0, 1)
	sunday := time.Date(2025, time.June, 8, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, pool, policy.HoursFor(tuesday))
	assert.Equal(t, schedule.DefaultHours(time.Wednesday), policy.HoursFor(wednesday), "invalid row falls back")
	assert.Equal(t, schedule.DefaultHours(time.Sunday), policy.HoursFor(sunday))
	assert.True(t, policy.Overridden(time.Tuesday))
	assert.False(t, policy.Overridden(time.Wednesday))

	week := policy.Week()
	assert.Equal(t, pool, week[time.Tuesday])
	assert.Equal(t, schedule.DefaultHours(time.Saturday), week[time.Saturday])
}

func TestHours_On(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	day := time.Date(2025, time.March, 30, 15, 0, 0, 0, loc)
	window := schedule.DefaultHours(time.Sunday).On(day)

	assert.Equal(t, time.Date(2025, time.March, 30, 8, 0, 0, 0, loc), window.Start)
	assert.Equal(t, time.Date(2025, time.March, 30, 20, 0, 0, 0, loc), window.End)
	assert.Equal(t, "08:00-20:00", schedule.DefaultHours(time.Sunday).String())
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := schedule.ParseTimeOfDay("07:30")
	require.NoError(t, err)
	assert.Equal(t, 7, tod.Hour())
	assert.Equal(t, 30, tod.Minute())
	assert.Equal(t, "07:30", tod.String())

	for _, bad := range []string{"7:30", "24:00", "07:60", "0730", ""} {
		_, err := schedule.ParseTimeOfDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestTimeOfDay_Scan(t *testing.T) {
	var tod schedule.TimeOfDay

	require.NoError(t, tod.Scan([]byte("06:00:00")))
	assert.Equal(t, schedule.NewTimeOfDay(6, 0), tod)

	require.NoError(t, tod.Scan("21:15"))
	assert.Equal(t, schedule.NewTimeOfDay(21, 15), tod)

	assert.Error(t, tod.Scan(42))

	value, err := schedule.NewTimeOfDay(8, 5).Value()
	require.NoError(t, err)
	assert.Equal(t, "08:05", value)
}
