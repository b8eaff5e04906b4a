package model

import (
	"time"

	"arena/internal/domains/schedule"
	"arena/shared/model"
)

const (
	TableName  = "maintenance_windows"
	EntityName = "maintenance"

	FieldID          = "id"
	FieldFacilityID  = "facility_id"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldDescription = "description"
)

// States are derived from the clock and never stored.
const (
	StateScheduled = "scheduled"
	StateActive    = "active"
	StateFinished  = "finished"
)

type Window struct {
	ID          string    `db:"id"`
	FacilityID  string    `db:"facility_id"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	Description string    `db:"description"`
	model.Metadata
}

func (w Window) Interval() schedule.Interval {
	return schedule.Interval{Start: w.StartTime, End: w.EndTime}
}

// State places the window on its lifecycle at now.
func (w Window) State(now time.Time) string {
	switch {
	case now.Before(w.StartTime):
		return StateScheduled
	case now.Before(w.EndTime):
		return StateActive
	default:
		return StateFinished
	}
}

func Intervals(windows []Window) []schedule.Interval {
	intervals := make([]schedule.Interval, len(windows))
	for i, window := range windows {
		intervals[i] = window.Interval()
	}

	return intervals
}

const (
	EventCreated  = "maintenance.created"
	EventFinished = "maintenance.finished"
)

// Event tells the notification collaborator a facility is going out of service.
type Event struct {
	Type        string    `json:"type"`
	ID          string    `json:"id"`
	FacilityID  string    `json:"facility_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewEvent(eventType string, window Window, at time.Time) Event {
	return Event{
		Type:        eventType,
		ID:          window.ID,
		FacilityID:  window.FacilityID,
		StartTime:   window.StartTime,
		EndTime:     window.EndTime,
		Description: window.Description,
		OccurredAt:  at,
	}
}
