package dto

import (
	"arena/internal/domains/report/model"
	"arena/internal/domains/schedule"
)

// ReportRequest is read from the query string. Fields of the chosen period are
// checked when the range resolves.
type ReportRequest struct {
	Period string `json:"period" validate:"required,oneof=day month year range"`
	Date   string `json:"date"   validate:"omitempty,datetime=2006-01-02"`
	Month  string `json:"month"  validate:"omitempty,datetime=2006-01"`
	Year   string `json:"year"   validate:"omitempty,datetime=2006"`
	From   string `json:"from"   validate:"omitempty,datetime=2006-01-02"`
	To     string `json:"to"     validate:"omitempty,datetime=2006-01-02"`
}

func (r *ReportRequest) ToRangeSpec() schedule.RangeSpec {
	return schedule.RangeSpec{
		Period: r.Period,
		Date:   r.Date,
		Month:  r.Month,
		Year:   r.Year,
		From:   r.From,
		To:     r.To,
	}
}

type ReportResponse struct {
	model.Report
	GeneratedAt string `json:"generated_at"`
}

type ExportResponse struct {
	URL string `json:"url"`
}
