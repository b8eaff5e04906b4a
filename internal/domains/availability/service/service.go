package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"arena/infras/otel"
	"arena/internal/domains/availability/model"
	facilityModel "arena/internal/domains/facility/model"
	facilityService "arena/internal/domains/facility/service"
	maintenanceRepository "arena/internal/domains/maintenance/repository"
	reservationRepository "arena/internal/domains/reservation/repository"
	"arena/internal/domains/schedule"
	"arena/shared/constant"
	"arena/shared/failure"
	"arena/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Availability computes slot grids on every call. Results are never cached
// because any reservation write changes them.
type Availability interface {
	Compute(ctx context.Context, facilityID, date string) ([]model.FacilitySlotReport, error)
}

type serviceImpl struct {
	facility     facilityService.Facility
	reservations reservationRepository.Reservation
	maintenance  maintenanceRepository.Maintenance
	otel         otel.Otel
}

func New(
	facility facilityService.Facility,
	reservations reservationRepository.Reservation,
	maintenance maintenanceRepository.Maintenance,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		facility:     facility,
		reservations: reservations,
		maintenance:  maintenance,
		otel:         otel,
	}
}

// Compute returns the slots of one facility, or of every active facility when
// facilityID is empty, for the local calendar day date.
func (s *serviceImpl) Compute(ctx context.Context, facilityID, date string) (res []model.FacilitySlotReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Compute")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := timezone.Parse(constant.DayFormat, date)
	if err != nil {
		return nil, failure.BadRequestFromString("date must match " + constant.DayFormat)
	}

	var facilities []facilityModel.Facility

	if facilityID != constant.Empty {
		facility, err := s.facility.Lookup(ctx, facilityID)
		if err != nil {
			return nil, err
		}

		facilities = []facilityModel.Facility{facility}
	} else {
		facilities, err = s.facility.Active(ctx)
		if err != nil {
			return nil, err
		}
	}

	span := schedule.Day(day)

	confirmed, err := s.reservations.GetConfirmed(ctx, facilityID, span)
	if err != nil {
		log.Error().Err(err).Msg("failed to get confirmed reservations")

		return nil, fmt.Errorf("failed to get confirmed reservations: %w", err)
	}

	windows, err := s.maintenance.GetActive(ctx, facilityID, span)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance windows")

		return nil, fmt.Errorf("failed to get maintenance windows: %w", err)
	}

	busy := map[string][]schedule.Interval{}

	for _, reservation := range confirmed {
		busy[reservation.FacilityID] = append(busy[reservation.FacilityID], reservation.Interval())
	}

	for _, window := range windows {
		busy[window.FacilityID] = append(busy[window.FacilityID], window.Interval())
	}

	res = make([]model.FacilitySlotReport, 0, len(facilities))

	for _, facility := range facilities {
		policy, err := s.facility.Policy(ctx, facility.ID)
		if err != nil {
			return nil, err
		}

		res = append(res, model.Build(facility, policy, day, busy[facility.ID]))
	}

	scope.SetAttribute("availability.facilities", len(res))

	return res, nil
}
