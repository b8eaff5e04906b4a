package dto

import (
	"fmt"
	"time"

	"arena/internal/domains/facility/model"
	"arena/internal/domains/schedule"
	"arena/shared"
	gDto "arena/shared/dto"
	"arena/shared/failure"
	gModel "arena/shared/model"

	"github.com/google/uuid"
)

type FacilityResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Surface     string  `json:"surface"`
	Description string  `json:"description"`
	HourlyRate  float64 `json:"hourly_rate"`
	Capacity    int     `json:"capacity"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (f *FacilityResponse) FromModel(model model.Facility) {
	f.ID = model.ID
	f.Name = model.Name
	f.Category = model.Category
	f.Surface = model.Surface
	f.Description = model.Description
	f.HourlyRate = model.HourlyRate
	f.Capacity = model.Capacity
	f.Active = model.Active
	f.Metadata.FromModel(model.Metadata)
}

type GetFacilitiesResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (f *GetFacilitiesResponse) FromModels(models []model.Facility, totalData, limit int) {
	f.TotalData = totalData
	f.TotalPage = shared.CalculateTotalPage(totalData, limit)

	f.Facilities = make([]FacilityResponse, len(models))
	for i, mod := range models {
		f.Facilities[i].FromModel(mod)
	}
}

type DayHoursRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	Opening   string `json:"opening"     validate:"required,clock"`
	Closing   string `json:"closing"     validate:"required,clock"`
}

// ReplaceHoursRequest replaces every override row of a facility. Weekdays left
// out fall back to the default hours.
type ReplaceHoursRequest struct {
	Days []DayHoursRequest `json:"days" validate:"max=7,unique=DayOfWeek,dive"`
}

func (r *ReplaceHoursRequest) ToModels(facilityID, user string, now time.Time) ([]model.OperatingHours, error) {
	rows := make([]model.OperatingHours, 0, len(r.Days))

	for _, day := range r.Days {
		opening, err := schedule.ParseTimeOfDay(day.Opening)
		if err != nil {
			return nil, failure.BadRequest(err)
		}

		closing, err := schedule.ParseTimeOfDay(day.Closing)
		if err != nil {
			return nil, failure.BadRequest(err)
		}

		if opening >= closing {
			return nil, failure.BadRequestFromString(fmt.Sprintf("opening must be before closing on %s", time.Weekday(day.DayOfWeek)))
		}

		rows = append(rows, model.OperatingHours{
			ID:         uuid.NewString(),
			FacilityID: facilityID,
			DayOfWeek:  day.DayOfWeek,
			Opening:    opening,
			Closing:    closing,
			Metadata:   gModel.NewMetadata(now, user),
		})
	}

	return rows, nil
}

type DayHoursResponse struct {
	DayOfWeek  int    `json:"day_of_week"`
	Day        string `json:"day"`
	Opening    string `json:"opening"`
	Closing    string `json:"closing"`
	Overridden bool   `json:"overridden"`
}

type WeekHoursResponse struct {
	FacilityID string             `json:"facility_id"`
	Days       []DayHoursResponse `json:"days"`
}

func (w *WeekHoursResponse) FromPolicy(facilityID string, policy schedule.Policy) {
	w.FacilityID = facilityID

	week := policy.Week()
	w.Days = make([]DayHoursResponse, len(week))

	for i, hours := range week {
		day := time.Weekday(i)

		w.Days[i] = DayHoursResponse{
			DayOfWeek:  i,
			Day:        day.String(),
			Opening:    hours.Opening.String(),
			Closing:    hours.Closing.String(),
			Overridden: policy.Overridden(day),
		}
	}
}
