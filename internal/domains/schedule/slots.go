package schedule

import "time"

// SlotGranularity is the fixed width of every displayed slot.
const SlotGranularity = time.Hour

type Slot struct {
	Interval
	Available bool
}

// Hour is the hour of day the slot starts at.
func (s Slot) Hour() int {
	return s.Start.Hour()
}

// BuildSlots splits window into one-hour slots from its start while the slot
// end does not pass the window end, so a trailing partial hour is dropped. A
// slot that overlaps any busy interval, even partially, is unavailable.
func BuildSlots(window Interval, busy []Interval) []Slot {
	slots := make([]Slot, 0, CountSlots(window))

	for start := window.Start; !start.Add(SlotGranularity).After(window.End); start = start.Add(SlotGranularity) {
		slot := Interval{Start: start, End: start.Add(SlotGranularity)}

		slots = append(slots, Slot{
			Interval:  slot,
			Available: !OverlapsAny(slot, busy),
		})
	}

	return slots
}

// CountSlots is the number of whole slots that fit in window.
func CountSlots(window Interval) int {
	return int(window.Duration() / SlotGranularity)
}

// CountBookableSlots sums the slots of every calendar day that starts inside
// span, using the policy's hours for each day.
func CountBookableSlots(policy Policy, span Interval) int {
	if span.IsEmpty() {
		return 0
	}

	total := 0

	for day := Day(span.Start).Start; day.Before(span.End); day = day.AddDate(0, 0, 1) {
		total += CountSlots(policy.HoursFor(day).On(day))
	}

	return total
}
