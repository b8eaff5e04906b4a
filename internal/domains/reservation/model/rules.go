package model

import (
	"fmt"
	"net/http"
	"time"

	"arena/internal/domains/schedule"
	"arena/shared/constant"
	"arena/shared/failure"
)

// Rejection kinds returned to callers of the booking endpoints.
const (
	KindPastDate              = "past_date"
	KindTooFarAhead           = "too_far_ahead"
	KindPastStartTime         = "past_start_time"
	KindInvalidOrder          = "invalid_order"
	KindOutsideOperatingHours = "outside_operating_hours"
	KindTooShort              = "too_short"
	KindOverlap               = "overlap"
	KindInvalidTransition     = "invalid_transition"
)

// Rules holds the tunable limits of the booking chain.
type Rules struct {
	HorizonMonths int
	MinDuration   time.Duration
}

func reject(kind, message string) error {
	return failure.New(http.StatusBadRequest, kind, message)
}

// OverlapError is the rejection for a proposal that collides with something
// already holding the facility.
func OverlapError(what string) error {
	return failure.New(http.StatusConflict, KindOverlap, "the requested time overlaps "+what)
}

// IsOverlap reports whether err is an overlap rejection, whether it was found
// before the write or by storage at write time.
func IsOverlap(err error) bool {
	return failure.IsKind(err, KindOverlap)
}

// Validate runs the calendar and operating-hours rules against a proposed
// interval and stops at the first rule that fails. now must be in the same
// location the interval was parsed in.
func Validate(now time.Time, proposed schedule.Interval, policy schedule.Policy, rules Rules) error {
	today := schedule.Day(now).Start
	day := schedule.Day(proposed.Start).Start

	if day.Before(today) {
		return reject(KindPastDate, "the reservation date has already passed")
	}

	if day.After(today.AddDate(0, rules.HorizonMonths, 0)) {
		return reject(KindTooFarAhead, fmt.Sprintf("reservations can be made at most %d months ahead", rules.HorizonMonths))
	}

	if day.Equal(today) && proposed.Start.Before(now) {
		return reject(KindPastStartTime, "the start time has already passed")
	}

	if !proposed.End.After(proposed.Start) {
		return reject(KindInvalidOrder, "the end time must be after the start time")
	}

	hours := policy.HoursFor(proposed.Start)
	if !hours.On(proposed.Start).Covers(proposed) {
		return reject(KindOutsideOperatingHours, fmt.Sprintf("the facility is open %s on %s", hours, proposed.Start.Format("Monday "+constant.DayFormat)))
	}

	if proposed.Duration() < rules.MinDuration {
		return reject(KindTooShort, fmt.Sprintf("reservations must last at least %d minutes", int(rules.MinDuration.Minutes())))
	}

	return nil
}

// CheckOverlap is the last rule of the chain: the proposal must not overlap any
// busy interval.
func CheckOverlap(proposed schedule.Interval, busy []schedule.Interval, what string) error {
	if schedule.OverlapsAny(proposed, busy) {
		return OverlapError(what)
	}

	return nil
}

func TransitionError(from, to string) error {
	return failure.New(http.StatusBadRequest, KindInvalidTransition, fmt.Sprintf("a %s reservation cannot become %s", from, to))
}
