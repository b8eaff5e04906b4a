package model

import (
	"slices"
	"time"

	"arena/internal/domains/schedule"
	"arena/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID         = "id"
	FieldFacilityID = "facility_id"
	FieldUserID     = "user_id"
	FieldStartTime  = "start_time"
	FieldEndTime    = "end_time"
	FieldStatus     = "status"
	FieldTotalPrice = "total_price"

	facilityTable = "facilities"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
}

// CanTransition reports whether a reservation may move from one status to another.
func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

type Reservation struct {
	ID           string    `db:"id"`
	FacilityID   string    `db:"facility_id"`
	UserID       string    `db:"user_id"`
	StartTime    time.Time `db:"start_time"`
	EndTime      time.Time `db:"end_time"`
	Status       string    `db:"status"`
	TotalPrice   float64   `db:"total_price"`
	FacilityName string    `db:"facility_name" table:"facilities" column:"name"`
	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return "LEFT JOIN " + facilityTable + " ON " + facilityTable + ".id = " + TableName + "." + FieldFacilityID
}

func (r Reservation) Interval() schedule.Interval {
	return schedule.Interval{Start: r.StartTime, End: r.EndTime}
}

// Intervals projects reservations onto their time intervals.
func Intervals(reservations []Reservation) []schedule.Interval {
	intervals := make([]schedule.Interval, len(reservations))
	for i, reservation := range reservations {
		intervals[i] = reservation.Interval()
	}

	return intervals
}
