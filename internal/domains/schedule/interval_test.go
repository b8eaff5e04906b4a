package schedule_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"arena/internal/domains/schedule"

	"github.com/stretchr/testify/assert"
)

var base = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return base.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func span(fromHour, fromMinute, toHour, toMinute int) schedule.Interval {
	return schedule.NewInterval(at(fromHour, fromMinute), at(toHour, toMinute))
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b schedule.Interval
		want bool
	}{
		{name: "partial overlap", a: span(14, 0, 16, 0), b: span(15, 0, 17, 0), want: true},
		{name: "contained", a: span(10, 0, 18, 0), b: span(12, 0, 13, 0), want: true},
		{name: "identical", a: span(10, 0, 11, 0), b: span(10, 0, 11, 0), want: true},
		{name: "touching end to start", a: span(10, 0, 11, 0), b: span(11, 0, 12, 0), want: false},
		{name: "touching start to end", a: span(11, 0, 12, 0), b: span(10, 0, 11, 0), want: false},
		{name: "disjoint", a: span(8, 0, 9, 0), b: span(14, 0, 16, 0), want: false},
		{name: "empty inside other", a: span(10, 30, 10, 30), b: span(10, 0, 11, 0), want: false},
		{name: "both empty same instant", a: span(10, 0, 10, 0), b: span(10, 0, 10, 0), want: false},
		{name: "inverted", a: span(12, 0, 10, 0), b: span(10, 0, 12, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	i := span(10, 0, 11, 0)

	assert.True(t, i.Contains(at(10, 0)))
	assert.True(t, i.Contains(at(10, 59)))
	assert.False(t, i.Contains(at(11, 0)))
	assert.False(t, i.Contains(at(9, 59)))

	assert.False(t, span(10, 0, 10, 0).Contains(at(10, 0)))
}

func TestInterval_DurationHours(t *testing.T) {
	assert.InDelta(t, 2.5, span(10, 0, 12, 30).DurationHours(), 1e-9)
	assert.InDelta(t, 0.0, span(10, 0, 10, 0).DurationHours(), 1e-9)
	assert.InDelta(t, 0.0, span(12, 0, 10, 0).DurationHours(), 1e-9)
}

func TestInterval_Intersect(t *testing.T) {
	assert.Equal(t, span(15, 0, 16, 0), span(14, 0, 16, 0).Intersect(span(15, 0, 17, 0)))
	assert.True(t, span(8, 0, 9, 0).Intersect(span(10, 0, 11, 0)).IsEmpty())
}

func TestInterval_Covers(t *testing.T) {
	day := span(6, 0, 22, 0)

	assert.True(t, day.Covers(span(21, 0, 22, 0)))
	assert.True(t, day.Covers(span(6, 0, 7, 0)))
	assert.False(t, day.Covers(span(21, 30, 22, 30)))
}

func TestDay(t *testing.T) {
	d := schedule.Day(at(17, 45))

	assert.Equal(t, base, d.Start)
	assert.Equal(t, base.AddDate(0, 0, 1), d.End)
}

// Overlap must be symmetric and agree with a minute-by-minute sweep.
func TestInterval_OverlapsMatchesSweep(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for range 2000 {
		a := randomInterval(rng)
		b := randomInterval(rng)

		shared := false

		for m := range 28 * 60 {
			instant := base.Add(time.Duration(m) * time.Minute)
			if a.Contains(instant) && b.Contains(instant) {
				shared = true

				break
			}
		}

		assert.Equal(t, shared, a.Overlaps(b), "a=%v b=%v", a, b)
		assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
	}
}

func randomInterval(rng *rand.Rand) schedule.Interval {
	start := rng.IntN(24 * 60)
	length := rng.IntN(240) - 30

	return schedule.NewInterval(
		base.Add(time.Duration(start)*time.Minute),
		base.Add(time.Duration(start+length)*time.Minute),
	)
}
