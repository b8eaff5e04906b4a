package schedule

import (
	"errors"
	"fmt"
	"time"
)

const (
	PeriodDay   = "day"
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodRange = "range"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
	yearLayout  = "2006"
)

var ErrInvalidPeriod = errors.New("invalid report period")

// RangeSpec selects a report span by one of four granularities. Only the
// fields of the chosen period are read; From and To are inclusive days.
type RangeSpec struct {
	Period string
	Date   string
	Month  string
	Year   string
	From   string
	To     string
}

// Resolve turns the range into a half-open span of whole local days.
func (r RangeSpec) Resolve(loc *time.Location) (Interval, error) {
	switch r.Period {
	case PeriodDay:
		day, err := parseIn(dayLayout, r.Date, "date", loc)
		if err != nil {
			return Interval{}, err
		}

		return Interval{Start: day, End: day.AddDate(0, 0, 1)}, nil
	case PeriodMonth:
		month, err := parseIn(monthLayout, r.Month, "month", loc)
		if err != nil {
			return Interval{}, err
		}

		return Interval{Start: month, End: month.AddDate(0, 1, 0)}, nil
	case PeriodYear:
		year, err := parseIn(yearLayout, r.Year, "year", loc)
		if err != nil {
			return Interval{}, err
		}

		return Interval{Start: year, End: year.AddDate(1, 0, 0)}, nil
	case PeriodRange:
		from, err := parseIn(dayLayout, r.From, "from", loc)
		if err != nil {
			return Interval{}, err
		}

		to, err := parseIn(dayLayout, r.To, "to", loc)
		if err != nil {
			return Interval{}, err
		}

		if to.Before(from) {
			return Interval{}, fmt.Errorf("%w: to must not be before from", ErrInvalidPeriod)
		}

		return Interval{Start: from, End: to.AddDate(0, 0, 1)}, nil
	default:
		return Interval{}, fmt.Errorf("%w: period must be one of day, month, year, range", ErrInvalidPeriod)
	}
}

// Label names the span the way reports show it.
func (r RangeSpec) Label() string {
	switch r.Period {
	case PeriodDay:
		return r.Date
	case PeriodMonth:
		return r.Month
	case PeriodYear:
		return r.Year
	case PeriodRange:
		return r.From + ".." + r.To
	default:
		return ""
	}
}

func parseIn(layout, value, field string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", ErrInvalidPeriod, field)
	}

	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must match %s", ErrInvalidPeriod, field, layout)
	}

	return t, nil
}
