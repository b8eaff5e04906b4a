package model

import (
	"time"

	facilityModel "arena/internal/domains/facility/model"
	"arena/internal/domains/schedule"
	"arena/shared/constant"
)

type SlotReport struct {
	Hour      int    `json:"hour"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// FacilitySlotReport is the slot grid of one facility for one day.
type FacilitySlotReport struct {
	FacilityID string       `json:"facility_id"`
	Name       string       `json:"name"`
	Category   string       `json:"category"`
	Date       string       `json:"date"`
	Opening    string       `json:"opening"`
	Closing    string       `json:"closing"`
	Slots      []SlotReport `json:"slots"`
}

// Build lays the facility's hours for date out as one-hour slots and marks
// every slot that overlaps a busy interval as unavailable.
func Build(facility facilityModel.Facility, policy schedule.Policy, date time.Time, busy []schedule.Interval) FacilitySlotReport {
	hours := policy.HoursFor(date)
	slots := schedule.BuildSlots(hours.On(date), busy)

	report := FacilitySlotReport{
		FacilityID: facility.ID,
		Name:       facility.Name,
		Category:   facility.Category,
		Date:       date.Format(constant.DayFormat),
		Opening:    hours.Opening.String(),
		Closing:    hours.Closing.String(),
		Slots:      make([]SlotReport, len(slots)),
	}

	for i, slot := range slots {
		report.Slots[i] = SlotReport{
			Hour:      slot.Hour(),
			Start:     slot.Start.Format(constant.ClockFormat),
			End:       slot.End.Format(constant.ClockFormat),
			Available: slot.Available,
		}
	}

	return report
}
