package model

import (
	"math"

	facilityModel "arena/internal/domains/facility/model"
	reservationModel "arena/internal/domains/reservation/model"
	"arena/internal/domains/schedule"
)

// AggregateStats summarises every confirmed reservation in the range.
type AggregateStats struct {
	Label             string  `json:"label"`
	TotalReservations int     `json:"total_reservations"`
	TotalRevenue      float64 `json:"total_revenue"`
	TopFacility       string  `json:"top_facility"`
	OccupancyPercent  float64 `json:"occupancy_percent"`
}

type FacilityStats struct {
	FacilityID       string  `json:"facility_id"`
	Name             string  `json:"name"`
	Reservations     int     `json:"reservations"`
	Revenue          float64 `json:"revenue"`
	OccupiedHours    float64 `json:"occupied_hours"`
	OccupancyPercent float64 `json:"occupancy_percent"`
}

type Report struct {
	Period      string          `json:"period"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	Monthly     AggregateStats  `json:"monthly"`
	PerFacility []FacilityStats `json:"per_facility"`
}

// FacilityPolicy pairs a facility with the hours used to count its bookable slots.
type FacilityPolicy struct {
	Facility facilityModel.Facility
	Policy   schedule.Policy
}

type tally struct {
	name    string
	count   int
	cents   int64
	minutes float64
}

// Aggregate reduces the confirmed reservations of span into a report.
// Reservations of facilities missing from facilities count toward the totals
// but contribute no bookable slots. The top facility is the one with the most
// reservations; on a tie the one whose reservation came first wins.
func Aggregate(label string, span schedule.Interval, facilities []FacilityPolicy, reservations []reservationModel.Reservation) (AggregateStats, []FacilityStats) {
	names := make(map[string]string, len(facilities))
	for _, fp := range facilities {
		names[fp.Facility.ID] = fp.Facility.Name
	}

	tallies := map[string]*tally{}
	order := make([]string, 0)

	for _, reservation := range reservations {
		t, ok := tallies[reservation.FacilityID]
		if !ok {
			name, known := names[reservation.FacilityID]
			if !known {
				name = reservation.FacilityName
			}

			t = &tally{name: name}
			tallies[reservation.FacilityID] = t
			order = append(order, reservation.FacilityID)
		}

		t.count++
		t.cents += schedule.AmountToCents(reservation.TotalPrice)
		t.minutes += reservation.Interval().Duration().Minutes()
	}

	monthly := AggregateStats{Label: label, TotalReservations: len(reservations)}

	var (
		revenue  int64
		topCount int
	)

	for _, id := range order {
		t := tallies[id]
		revenue += t.cents

		if t.count > topCount {
			topCount = t.count
			monthly.TopFacility = t.name
		}
	}

	monthly.TotalRevenue = schedule.CentsToAmount(revenue)

	stats := make([]FacilityStats, 0, len(facilities))
	totalSlots := 0

	for _, fp := range facilities {
		slots := schedule.CountBookableSlots(fp.Policy, span)
		totalSlots += slots

		stat := FacilityStats{FacilityID: fp.Facility.ID, Name: fp.Facility.Name}

		if t, ok := tallies[fp.Facility.ID]; ok {
			stat.Reservations = t.count
			stat.Revenue = schedule.CentsToAmount(t.cents)
			stat.OccupiedHours = Round2(t.minutes / 60)
		}

		stat.OccupancyPercent = Occupancy(stat.Reservations, slots)
		stats = append(stats, stat)
	}

	monthly.OccupancyPercent = Occupancy(monthly.TotalReservations, totalSlots)

	return monthly, stats
}

// Occupancy is count over slots as a percentage with two decimals. Zero slots yield zero.
func Occupancy(count, slots int) float64 {
	if slots <= 0 {
		return 0
	}

	return Round2(float64(count) / float64(slots) * 100)
}

func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
