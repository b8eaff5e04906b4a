package dto

import (
	"time"

	"arena/internal/domains/reservation/model"
	"arena/internal/domains/schedule"
	"arena/shared"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/failure"
	gModel "arena/shared/model"

	"github.com/google/uuid"
)

// CreateReservationRequest proposes a booking on one calendar day. Times are
// wall-clock values in the application timezone.
type CreateReservationRequest struct {
	FacilityID string `json:"facility_id" validate:"required,uuid"`
	Date       string `json:"date"        validate:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time"  validate:"required,clock"`
	EndTime    string `json:"end_time"    validate:"required,clock"`
	Status     string `json:"status"      validate:"omitempty,oneof=pending confirmed"`
}

// Interval resolves the request to an instant range in loc.
func (c *CreateReservationRequest) Interval(loc *time.Location) (schedule.Interval, error) {
	day, err := time.ParseInLocation(constant.DayFormat, c.Date, loc)
	if err != nil {
		return schedule.Interval{}, failure.BadRequestFromString("date must match " + constant.DayFormat)
	}

	start, err := schedule.ParseTimeOfDay(c.StartTime)
	if err != nil {
		return schedule.Interval{}, failure.BadRequest(err)
	}

	end, err := schedule.ParseTimeOfDay(c.EndTime)
	if err != nil {
		return schedule.Interval{}, failure.BadRequest(err)
	}

	return schedule.NewInterval(start.On(day), end.On(day)), nil
}

// InitialStatus defaults to pending.
func (c *CreateReservationRequest) InitialStatus() string {
	if c.Status == constant.Empty {
		return model.StatusPending
	}

	return c.Status
}

func (c *CreateReservationRequest) ToModel(user string, interval schedule.Interval, price float64, now time.Time) model.Reservation {
	return model.Reservation{
		ID:         uuid.NewString(),
		FacilityID: c.FacilityID,
		UserID:     user,
		StartTime:  interval.Start,
		EndTime:    interval.End,
		Status:     c.InitialStatus(),
		TotalPrice: price,
		Metadata:   gModel.NewMetadata(now, user),
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type ReservationResponse struct {
	ID           string  `json:"id"`
	FacilityID   string  `json:"facility_id"`
	FacilityName string  `json:"facility_name,omitempty"`
	UserID       string  `json:"user_id"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Status       string  `json:"status"`
	TotalPrice   float64 `json:"total_price"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation, loc *time.Location) {
	start := model.StartTime.In(loc)
	end := model.EndTime.In(loc)

	r.ID = model.ID
	r.FacilityID = model.FacilityID
	r.FacilityName = model.FacilityName
	r.UserID = model.UserID
	r.Date = start.Format(constant.DayFormat)
	r.StartTime = start.Format(constant.ClockFormat)
	r.EndTime = end.Format(constant.ClockFormat)
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int, loc *time.Location) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod, loc)
	}
}

// ListReservationsRequest narrows a reservation listing. Empty fields and an
// empty period match everything.
type ListReservationsRequest struct {
	Status     string
	FacilityID string
	UserID     string
	Range      schedule.RangeSpec
}

func (l *ListReservationsRequest) ToFilter(loc *time.Location) (gDto.FilterGroup, error) {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if l.Status != constant.Empty {
		filter.And(gDto.Filter{Field: model.FieldStatus, Value: l.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if l.FacilityID != constant.Empty {
		filter.And(gDto.Filter{Field: model.FieldFacilityID, Value: l.FacilityID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if l.UserID != constant.Empty {
		filter.And(gDto.Filter{Field: model.FieldUserID, Value: l.UserID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if l.Range.Period != constant.Empty {
		span, err := l.Range.Resolve(loc)
		if err != nil {
			return filter, failure.BadRequest(err)
		}

		filter.And(
			gDto.Filter{ArgName: "range_start", Field: model.FieldStartTime, Value: span.Start, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
			gDto.Filter{ArgName: "range_end", Field: model.FieldStartTime, Value: span.End, Operator: gDto.FilterOperatorLess, Table: model.TableName},
		)
	}

	return filter, nil
}
