package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"arena/infras/otel"
	"arena/infras/s3"
	facilityService "arena/internal/domains/facility/service"
	"arena/internal/domains/report/model"
	"arena/internal/domains/report/model/dto"
	reservationModel "arena/internal/domains/reservation/model"
	reservationRepository "arena/internal/domains/reservation/repository"
	"arena/internal/domains/schedule"
	"arena/shared/constant"
	"arena/shared/failure"
	"arena/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	exportDirectory   = "reports"
	exportContentType = "application/json"
	exportStampFormat = "20060102T150405"
)

type Report interface {
	Compute(ctx context.Context, spec schedule.RangeSpec) (dto.ReportResponse, error)
	Export(ctx context.Context, spec schedule.RangeSpec) (dto.ExportResponse, error)
}

type serviceImpl struct {
	facility     facilityService.Facility
	reservations reservationRepository.Reservation
	storage      s3.S3
	otel         otel.Otel
}

func New(facility facilityService.Facility, reservations reservationRepository.Reservation, storage s3.S3, otel otel.Otel) Report {
	return &serviceImpl{
		facility:     facility,
		reservations: reservations,
		storage:      storage,
		otel:         otel,
	}
}

// Compute aggregates the confirmed reservations that start inside the range.
// Bookable slots are counted over the active facilities only.
func (s *serviceImpl) Compute(ctx context.Context, spec schedule.RangeSpec) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Compute")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()

	span, err := spec.Resolve(now.Location())
	if err != nil {
		return res, failure.BadRequest(err)
	}

	facilities, err := s.facility.Active(ctx)
	if err != nil {
		return res, err
	}

	policies := make([]model.FacilityPolicy, 0, len(facilities))

	for _, facility := range facilities {
		policy, err := s.facility.Policy(ctx, facility.ID)
		if err != nil {
			return res, err
		}

		policies = append(policies, model.FacilityPolicy{Facility: facility, Policy: policy})
	}

	confirmed, err := s.reservations.GetConfirmed(ctx, constant.Empty, span)
	if err != nil {
		log.Error().Err(err).Msg("failed to get confirmed reservations")

		return res, fmt.Errorf("failed to get confirmed reservations: %w", err)
	}

	starting := make([]reservationModel.Reservation, 0, len(confirmed))

	for _, reservation := range confirmed {
		if span.Contains(reservation.StartTime) {
			starting = append(starting, reservation)
		}
	}

	monthly, perFacility := model.Aggregate(spec.Label(), span, policies, starting)

	res.Report = model.Report{
		Period:      spec.Period,
		From:        span.Start.Format(constant.DayFormat),
		To:          span.End.AddDate(0, 0, -1).Format(constant.DayFormat),
		Monthly:     monthly,
		PerFacility: perFacility,
	}
	res.GeneratedAt = now.Format(constant.LocalDateTimeFormat)

	return res, nil
}

// Export stores a JSON snapshot of the report and returns where it lives.
func (s *serviceImpl) Export(ctx context.Context, spec schedule.RangeSpec) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	report, err := s.Compute(ctx, spec)
	if err != nil {
		return res, err
	}

	data, err := json.Marshal(report)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal report")

		return res, fmt.Errorf("failed to marshal report: %w", err)
	}

	fileName := fmt.Sprintf("%s-%s-%s.json", spec.Period, strings.ReplaceAll(spec.Label(), "..", "_"), timezone.Now().Format(exportStampFormat))

	url, err := s.storage.UploadFileBytes(ctx, exportDirectory, fileName, exportContentType, data)
	if err != nil {
		return res, failure.Transient(err)
	}

	res.URL = url

	return res, nil
}
