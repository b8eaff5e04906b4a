package model

import (
	"time"

	"arena/internal/domains/schedule"
	"arena/shared/model"
)

const (
	TableName  = "facilities"
	EntityName = "facility"

	FieldID          = "id"
	FieldName        = "name"
	FieldCategory    = "category"
	FieldSurface     = "surface"
	FieldDescription = "description"
	FieldHourlyRate  = "hourly_rate"
	FieldCapacity    = "capacity"
	FieldActive      = "active"
)

const (
	CategorySoccer     = "soccer"
	CategoryBasketball = "basketball"
	CategoryVolleyball = "volleyball"
	CategorySwimming   = "swimming"
)

type Facility struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Category    string  `db:"category"`
	Surface     string  `db:"surface"`
	Description string  `db:"description"`
	HourlyRate  float64 `db:"hourly_rate"`
	Capacity    int     `db:"capacity"`
	Active      bool    `db:"active"`
	model.Metadata
}

const (
	HoursTableName  = "operating_hours"
	HoursEntityName = "operating_hours"

	HoursFieldID         = "id"
	HoursFieldFacilityID = "facility_id"
	HoursFieldDayOfWeek  = "day_of_week"
	HoursFieldOpening    = "opening"
	HoursFieldClosing    = "closing"
)

// OperatingHours overrides the default hours of one weekday for one facility.
// DayOfWeek follows time.Weekday, so 0 is Sunday.
type OperatingHours struct {
	ID         string             `db:"id"`
	FacilityID string             `db:"facility_id"`
	DayOfWeek  int                `db:"day_of_week"`
	Opening    schedule.TimeOfDay `db:"opening"`
	Closing    schedule.TimeOfDay `db:"closing"`
	model.Metadata
}

func (o OperatingHours) Rule() schedule.Rule {
	return schedule.Rule{
		Weekday: time.Weekday(o.DayOfWeek),
		Hours:   schedule.Hours{Opening: o.Opening, Closing: o.Closing},
	}
}

// Policy builds the operating-hours policy of a facility from its override rows.
func Policy(rows []OperatingHours) schedule.Policy {
	rules := make([]schedule.Rule, len(rows))
	for i, row := range rows {
		rules[i] = row.Rule()
	}

	return schedule.NewPolicy(rules)
}
