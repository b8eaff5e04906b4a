package dto

import (
	"time"

	"arena/internal/domains/maintenance/model"
	"arena/internal/domains/schedule"
	"arena/shared"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/failure"
	gModel "arena/shared/model"

	"github.com/google/uuid"
)

// CreateMaintenanceRequest takes local date-times, so a window may span days.
type CreateMaintenanceRequest struct {
	FacilityID  string `json:"facility_id" validate:"required,uuid"`
	StartTime   string `json:"start_time"  validate:"required,datetime=2006-01-02T15:04"`
	EndTime     string `json:"end_time"    validate:"required,datetime=2006-01-02T15:04"`
	Description string `json:"description" validate:"required,max=255"`
}

func (c *CreateMaintenanceRequest) Interval(loc *time.Location) (schedule.Interval, error) {
	start, err := time.ParseInLocation(constant.LocalDateTimeFormat, c.StartTime, loc)
	if err != nil {
		return schedule.Interval{}, failure.BadRequestFromString("start_time must match " + constant.LocalDateTimeFormat)
	}

	end, err := time.ParseInLocation(constant.LocalDateTimeFormat, c.EndTime, loc)
	if err != nil {
		return schedule.Interval{}, failure.BadRequestFromString("end_time must match " + constant.LocalDateTimeFormat)
	}

	return schedule.NewInterval(start, end), nil
}

func (c *CreateMaintenanceRequest) ToModel(user string, interval schedule.Interval, now time.Time) model.Window {
	return model.Window{
		ID:          uuid.NewString(),
		FacilityID:  c.FacilityID,
		StartTime:   interval.Start,
		EndTime:     interval.End,
		Description: c.Description,
		Metadata:    gModel.NewMetadata(now, user),
	}
}

type MaintenanceResponse struct {
	ID          string `json:"id"`
	FacilityID  string `json:"facility_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
	State       string `json:"state"`
	gDto.Metadata
}

func (m *MaintenanceResponse) FromModel(model model.Window, now time.Time) {
	m.ID = model.ID
	m.FacilityID = model.FacilityID
	m.StartTime = model.StartTime.In(now.Location()).Format(constant.LocalDateTimeFormat)
	m.EndTime = model.EndTime.In(now.Location()).Format(constant.LocalDateTimeFormat)
	m.Description = model.Description
	m.State = model.State(now)
	m.Metadata.FromModel(model.Metadata)
}

type GetMaintenanceResponse struct {
	Windows   []MaintenanceResponse `json:"windows"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (g *GetMaintenanceResponse) FromModels(models []model.Window, totalData, limit int, now time.Time) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Windows = make([]MaintenanceResponse, len(models))
	for i, mod := range models {
		g.Windows[i].FromModel(mod, now)
	}
}

// ListMaintenanceRequest narrows a listing to a facility and to the windows
// touching one calendar day.
type ListMaintenanceRequest struct {
	FacilityID string
	Date       string
}

func (l *ListMaintenanceRequest) ToFilter(loc *time.Location) (gDto.FilterGroup, error) {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if l.FacilityID != constant.Empty {
		filter.And(gDto.Filter{Field: model.FieldFacilityID, Value: l.FacilityID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if l.Date != constant.Empty {
		day, err := time.ParseInLocation(constant.DayFormat, l.Date, loc)
		if err != nil {
			return filter, failure.BadRequestFromString("date must match " + constant.DayFormat)
		}

		span := schedule.Day(day)
		filter.And(shared.FilterOverlap(model.TableName, model.FieldStartTime, model.FieldEndTime, span.Start, span.End))
	}

	return filter, nil
}
