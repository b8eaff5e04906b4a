package model

import "time"

const (
	EventCreated       = "reservation.created"
	EventStatusChanged = "reservation.status_changed"
	EventDeleted       = "reservation.deleted"
)

// Event is published for the notification collaborator, keyed by facility so
// one facility's events stay ordered.
type Event struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	FacilityID string    `json:"facility_id"`
	UserID     string    `json:"user_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(eventType string, reservation Reservation, at time.Time) Event {
	return Event{
		Type:       eventType,
		ID:         reservation.ID,
		FacilityID: reservation.FacilityID,
		UserID:     reservation.UserID,
		StartTime:  reservation.StartTime,
		EndTime:    reservation.EndTime,
		Status:     reservation.Status,
		TotalPrice: reservation.TotalPrice,
		OccurredAt: at,
	}
}
