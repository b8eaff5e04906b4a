package model_test

import (
	"testing"
	"time"

	"arena/internal/domains/reservation/model"
	"arena/internal/domains/schedule"
	"arena/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rules = model.Rules{HorizonMonths: 3, MinDuration: 30 * time.Minute}

// Thursday 2025-06-05 09:15.
var now = time.Date(2025, time.June, 5, 9, 15, 0, 0, time.UTC)

func on(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		proposed schedule.Interval
		policy   schedule.Policy
		wantKind string
	}{
		{
			name:     "accepts a weekday slot",
			proposed: schedule.NewInterval(on(2025, 6, 6, 10, 0), on(2025, 6, 6, 12, 0)),
		},
		{
			name:     "past date",
			proposed: schedule.NewInterval(on(2025, 6, 4, 10, 0), on(2025, 6, 4, 11, 0)),
			wantKind: model.KindPastDate,
		},
		{
			name:     "too far ahead",
			proposed: schedule.NewInterval(on(2025, 9, 6, 10, 0), on(2025, 9, 6, 11, 0)),
			wantKind: model.KindTooFarAhead,
		},
		{
			name:     "exactly at the horizon",
			proposed: schedule.NewInterval(on(2025, 9, 5, 10, 0), on(2025, 9, 5, 11, 0)),
		},
		{
			name:     "start already passed today",
			proposed: schedule.NewInterval(on(2025, 6, 5, 9, 0), on(2025, 6, 5, 10, 0)),
			wantKind: model.KindPastStartTime,
		},
		{
			name:     "later today is fine",
			proposed: schedule.NewInterval(on(2025, 6, 5, 9, 30), on(2025, 6, 5, 10, 30)),
		},
		{
			name:     "end before start",
			proposed: schedule.NewInterval(on(2025, 6, 6, 12, 0), on(2025, 6, 6, 10, 0)),
			wantKind: model.KindInvalidOrder,
		},
		{
			name:     "degenerate interval is an order error",
			proposed: schedule.NewInterval(on(2025, 6, 6, 12, 0), on(2025, 6, 6, 12, 0)),
			wantKind: model.KindInvalidOrder,
		},
		{
			name:     "sunday opens at eight",
			proposed: schedule.NewInterval(on(2025, 6, 8, 7, 30), on(2025, 6, 8, 9, 0)),
			wantKind: model.KindOutsideOperatingHours,
		},
		{
			name:     "end may equal closing",
			proposed: schedule.NewInterval(on(2025, 6, 8, 19, 0), on(2025, 6, 8, 20, 0)),
		},
		{
			name:     "end past closing",
			proposed: schedule.NewInterval(on(2025, 6, 7, 20, 30), on(2025, 6, 7, 21, 30)),
			wantKind: model.KindOutsideOperatingHours,
		},
		{
			name:     "facility override narrows the day",
			proposed: schedule.NewInterval(on(2025, 6, 6, 7, 0), on(2025, 6, 6, 8, 0)),
			policy: schedule.NewPolicy([]schedule.Rule{{
				Weekday: time.Friday,
				Hours:   schedule.Hours{Opening: schedule.NewTimeOfDay(9, 0), Closing: schedule.NewTimeOfDay(17, 0)},
			}}),
			wantKind: model.KindOutsideOperatingHours,
		},
		{
			name:     "twenty minutes is too short",
			proposed: schedule.NewInterval(on(2025, 6, 6, 10, 0), on(2025, 6, 6, 10, 20)),
			wantKind: model.KindTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.Validate(now, tt.proposed, tt.policy, rules)

			if tt.wantKind == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, failure.GetKind(err))
			assert.Equal(t, 400, failure.GetCode(err))

			again := model.Validate(now, tt.proposed, tt.policy, rules)
			assert.Equal(t, failure.GetKind(err), failure.GetKind(again))
		})
	}
}

func TestValidate_OutsideHoursNamesTheHours(t *testing.T) {
	err := model.Validate(now, schedule.NewInterval(on(2025, 6, 8, 7, 30), on(2025, 6, 8, 9, 0)), schedule.Policy{}, rules)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "08:00-20:00")
	assert.Contains(t, err.Error(), "Sunday")
}

func TestCheckOverlap(t *testing.T) {
	busy := []schedule.Interval{schedule.NewInterval(on(2025, 6, 6, 14, 0), on(2025, 6, 6, 16, 0))}

	err := model.CheckOverlap(schedule.NewInterval(on(2025, 6, 6, 15, 0), on(2025, 6, 6, 17, 0)), busy, "a confirmed reservation")
	require.Error(t, err)
	assert.True(t, model.IsOverlap(err))
	assert.Equal(t, 409, failure.GetCode(err))

	assert.NoError(t, model.CheckOverlap(schedule.NewInterval(on(2025, 6, 6, 10, 0), on(2025, 6, 6, 12, 0)), busy, "a confirmed reservation"))
	assert.NoError(t, model.CheckOverlap(schedule.NewInterval(on(2025, 6, 6, 16, 0), on(2025, 6, 6, 17, 0)), busy, "a confirmed reservation"))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, model.CanTransition(model.StatusPending, model.StatusConfirmed))
	assert.True(t, model.CanTransition(model.StatusPending, model.StatusCancelled))
	assert.True(t, model.CanTransition(model.StatusConfirmed, model.StatusCancelled))
	assert.False(t, model.CanTransition(model.StatusCancelled, model.StatusConfirmed))
	assert.False(t, model.CanTransition(model.StatusConfirmed, model.StatusPending))
	assert.False(t, model.CanTransition(model.StatusPending, model.StatusPending))
}
