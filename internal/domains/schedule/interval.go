package schedule

import "time"

// Interval is the half-open range [Start, End). An interval whose Start is not
// before its End is empty: it has zero duration, contains no instant and
// overlaps nothing.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

func (i Interval) IsEmpty() bool {
	return !i.Start.Before(i.End)
}

// Overlaps reports whether both intervals share at least one instant.
// Touching endpoints do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return false
	}

	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains reports Start <= t < End.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Covers reports whether other lies entirely within i. End points may coincide.
func (i Interval) Covers(other Interval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

func (i Interval) Duration() time.Duration {
	if i.IsEmpty() {
		return 0
	}

	return i.End.Sub(i.Start)
}

func (i Interval) DurationHours() float64 {
	return i.Duration().Hours()
}

// Intersect returns the shared part of two intervals, empty when they do not overlap.
func (i Interval) Intersect(other Interval) Interval {
	start := i.Start
	if other.Start.After(start) {
		start = other.Start
	}

	end := i.End
	if other.End.Before(end) {
		end = other.End
	}

	if !start.Before(end) {
		return Interval{Start: start, End: start}
	}

	return Interval{Start: start, End: end}
}

// OverlapsAny reports whether i overlaps at least one of others.
func OverlapsAny(i Interval, others []Interval) bool {
	for _, other := range others {
		if i.Overlaps(other) {
			return true
		}
	}

	return false
}

// Day returns the whole calendar day containing t, in t's location.
func Day(t time.Time) Interval {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	return Interval{Start: start, End: start.AddDate(0, 0, 1)}
}
