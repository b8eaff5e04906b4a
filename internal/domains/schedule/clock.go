package schedule

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const clockLayout = "15:04"

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time counted in minutes after midnight.
// It is stored and rendered as "HH:MM".
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	if len(value) != len(clockLayout) {
		return 0, fmt.Errorf("invalid time of day %q: want HH:MM", value)
	}

	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", value, err)
	}

	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

// TimeOfDayOf returns the wall-clock part of t in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// On places the time of day on the calendar day of date, in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// Value stores the time of day as its HH:MM text.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return t.UnmarshalText([]byte(v[:min(len(v), len(clockLayout))]))
	case []byte:
		return t.UnmarshalText(v[:min(len(v), len(clockLayout))])
	case time.Time:
		*t = TimeOfDayOf(v)

		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}
