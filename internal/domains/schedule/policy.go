package schedule

import (
	"fmt"
	"time"
)

// Hours is the bookable window of one day, from Opening up to Closing.
type Hours struct {
	Opening TimeOfDay `json:"opening"`
	Closing TimeOfDay `json:"closing"`
}

func (h Hours) Valid() bool {
	return h.Opening.Valid() && h.Closing.Valid() && h.Opening < h.Closing
}

// On returns the hours as an interval on the calendar day of date.
func (h Hours) On(date time.Time) Interval {
	return Interval{Start: h.Opening.On(date), End: h.Closing.On(date)}
}

func (h Hours) String() string {
	return fmt.Sprintf("%s-%s", h.Opening, h.Closing)
}

var (
	weekdayHours  = Hours{Opening: NewTimeOfDay(6, 0), Closing: NewTimeOfDay(22, 0)}
	saturdayHours = Hours{Opening: NewTimeOfDay(7, 0), Closing: NewTimeOfDay(21, 0)}
	sundayHours   = Hours{Opening: NewTimeOfDay(8, 0), Closing: NewTimeOfDay(20, 0)}
)

// DefaultHours is the venue-wide fallback used when a facility has no row for a weekday.
func DefaultHours(day time.Weekday) Hours {
	switch day {
	case time.Saturday:
		return saturdayHours
	case time.Sunday:
		return sundayHours
	default:
		return weekdayHours
	}
}

// Rule overrides the default hours of one weekday for one facility.
type Rule struct {
	Weekday time.Weekday
	Hours   Hours
}

// Policy resolves the operating hours of a facility for any date.
type Policy struct {
	overrides map[time.Weekday]Hours
}

// NewPolicy builds a policy from override rows. Invalid rows are ignored and a
// later row for the same weekday replaces an earlier one.
func NewPolicy(rules []Rule) Policy {
	overrides := make(map[time.Weekday]Hours, len(rules))

	for _, rule := range rules {
		if rule.Weekday < time.Sunday || rule.Weekday > time.Saturday || !rule.Hours.Valid() {
			continue
		}

		overrides[rule.Weekday] = rule.Hours
	}

	return Policy{overrides: overrides}
}

func (p Policy) HoursFor(date time.Time) Hours {
	if hours, ok := p.overrides[date.Weekday()]; ok {
		return hours
	}

	return DefaultHours(date.Weekday())
}

// Overridden reports whether the weekday uses facility-specific hours.
func (p Policy) Overridden(day time.Weekday) bool {
	_, ok := p.overrides[day]

	return ok
}

// Week lists the effective hours for Sunday through Saturday.
func (p Policy) Week() [7]Hours {
	var week [7]Hours

	for day := time.Sunday; day <= time.Saturday; day++ {
		if hours, ok := p.overrides[day]; ok {
			week[day] = hours

			continue
		}

		week[day] = DefaultHours(day)
	}

	return week
}
