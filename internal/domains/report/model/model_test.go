package model_test

import (
	"testing"
	"time"

	facilityModel "arena/internal/domains/facility/model"
	"arena/internal/domains/report/model"
	reservationModel "arena/internal/domains/reservation/model"
	"arena/internal/domains/schedule"
	"arena/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	grass = facilityModel.Facility{ID: "f-1", Name: "Grass Pitch"}
	court = facilityModel.Facility{ID: "f-2", Name: "Covered Court"}
)

func booking(facilityID string, day, startHour, endHour int, price float64) reservationModel.Reservation {
	return reservationModel.Reservation{
		FacilityID: facilityID,
		StartTime:  timezone.Date(2025, time.June, day, startHour, 0),
		EndTime:    timezone.Date(2025, time.June, day, endHour, 0),
		Status:     reservationModel.StatusConfirmed,
		TotalPrice: price,
	}
}

func june() schedule.Interval {
	start := timezone.Date(2025, time.June, 1, 0, 0)

	return schedule.Interval{Start: start, End: start.AddDate(0, 1, 0)}
}

func TestAggregate_Month(t *testing.T) {
	facilities := []model.FacilityPolicy{{Facility: grass}, {Facility: court}}
	reservations := []reservationModel.Reservation{
		booking(court.ID, 2, 9, 10, 80),
		booking(grass.ID, 3, 10, 12, 240),
		booking(grass.ID, 4, 18, 19, 120.5),
		booking(grass.ID, 5, 20, 21, 120.25),
	}

	monthly, stats := model.Aggregate("2025-06", june(), facilities, reservations)

	// June 2025: 21 weekdays x 16 + 4 Saturdays x 14 + 5 Sundays x 12 = 452 slots per facility.
	assert.Equal(t, model.AggregateStats{
		Label:             "2025-06",
		TotalReservations: 4,
		TotalRevenue:      560.75,
		TopFacility:       "Grass Pitch",
		OccupancyPercent:  0.44,
	}, monthly)

	require.Len(t, stats, 2)
	assert.Equal(t, model.FacilityStats{
		FacilityID:       grass.ID,
		Name:             "Grass Pitch",
		Reservations:     3,
		Revenue:          480.75,
		OccupiedHours:    4,
		OccupancyPercent: 0.66,
	}, stats[0])
	assert.Equal(t, 1, stats[1].Reservations)
	assert.InDelta(t, 0.22, stats[1].OccupancyPercent, 1e-9)
}

func TestAggregate_TopFacilityTieGoesToFirstEncountered(t *testing.T) {
	facilities := []model.FacilityPolicy{{Facility: grass}, {Facility: court}}
	reservations := []reservationModel.Reservation{
		booking(court.ID, 2, 9, 10, 80),
		booking(grass.ID, 3, 10, 11, 120),
	}

	monthly, _ := model.Aggregate("2025-06", june(), facilities, reservations)

	assert.Equal(t, "Covered Court", monthly.TopFacility)
}

func TestAggregate_Day(t *testing.T) {
	// 2025-06-08 is a Sunday, open 08:00-20:00.
	start := timezone.Date(2025, time.June, 8, 0, 0)
	span := schedule.Interval{Start: start, End: start.AddDate(0, 0, 1)}

	reservations := []reservationModel.Reservation{
		booking(grass.ID, 8, 8, 9, 100),
		booking(grass.ID, 8, 9, 11, 200),
		booking(grass.ID, 8, 14, 15, 100),
	}

	monthly, stats := model.Aggregate("2025-06-08", span, []model.FacilityPolicy{{Facility: grass}}, reservations)

	assert.Equal(t, 25.0, monthly.OccupancyPercent)
	assert.Equal(t, 4.0, stats[0].OccupiedHours)
}

func TestAggregate_NoSlots(t *testing.T) {
	reservations := []reservationModel.Reservation{
		{FacilityID: "gone", FacilityName: "Closed Pool", StartTime: time.Now(), EndTime: time.Now().Add(time.Hour), TotalPrice: 10},
	}

	monthly, stats := model.Aggregate("2025-06", june(), nil, reservations)

	assert.Equal(t, 0.0, monthly.OccupancyPercent)
	assert.Equal(t, "Closed Pool", monthly.TopFacility)
	assert.Equal(t, 10.0, monthly.TotalRevenue)
	assert.Empty(t, stats)
}

func TestAggregate_Empty(t *testing.T) {
	monthly, stats := model.Aggregate("2025", schedule.Interval{}, []model.FacilityPolicy{{Facility: grass}}, nil)

	assert.Zero(t, monthly.TotalReservations)
	assert.Zero(t, monthly.OccupancyPercent)
	assert.Empty(t, monthly.TopFacility)
	require.Len(t, stats, 1)
	assert.Zero(t, stats[0].OccupancyPercent)
}

func TestOccupancy(t *testing.T) {
	tests := []struct {
		count, slots int
		want         float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{12, 12, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, model.Occupancy(tt.count, tt.slots))
	}
}
