package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"arena/config"
	"arena/infras/kafka"
	"arena/infras/otel"
	facilityService "arena/internal/domains/facility/service"
	maintenanceModel "arena/internal/domains/maintenance/model"
	maintenanceRepository "arena/internal/domains/maintenance/repository"
	"arena/internal/domains/reservation/model"
	"arena/internal/domains/reservation/model/dto"
	"arena/internal/domains/reservation/repository"
	"arena/internal/domains/schedule"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/failure"
	gRepo "arena/shared/repository"
	"arena/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	busyReservation = "a confirmed reservation"
	busyMaintenance = "a maintenance window"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.ReservationResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Reservation
	maintenance maintenanceRepository.Maintenance
	facility    facilityService.Facility
	kafka       kafka.Client
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Reservation,
	maintenance maintenanceRepository.Maintenance,
	facility facilityService.Facility,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:        repo,
		maintenance: maintenance,
		facility:    facility,
		kafka:       kafka,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) rules() model.Rules {
	return model.Rules{
		HorizonMonths: s.cfg.HorizonMonths(),
		MinDuration:   s.cfg.MinDuration(),
	}
}

// Create runs the booking chain and stores the reservation. Every rejection
// carries the kind of the first rule that failed.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	loc := timezone.GetLocation()

	facility, err := s.facility.LookupFresh(ctx, req.FacilityID)
	if err != nil {
		return res, err
	}

	if !facility.Active {
		return res, failure.BadRequestFromString("facility is not accepting reservations")
	}

	proposed, err := req.Interval(loc)
	if err != nil {
		return res, err
	}

	policy, err := s.facility.Policy(ctx, facility.ID)
	if err != nil {
		return res, err
	}

	now := timezone.Now()

	if err = model.Validate(now, proposed, policy, s.rules()); err != nil {
		return res, err
	}

	confirmed, err := s.repo.GetConfirmed(ctx, facility.ID, proposed)
	if err != nil {
		log.Error().Err(err).Msg("failed to get confirmed reservations")

		return res, fmt.Errorf("failed to get confirmed reservations: %w", err)
	}

	if err = model.CheckOverlap(proposed, model.Intervals(confirmed), busyReservation); err != nil {
		return res, err
	}

	windows, err := s.maintenance.GetActive(ctx, facility.ID, proposed)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance windows")

		return res, fmt.Errorf("failed to get maintenance windows: %w", err)
	}

	if err = model.CheckOverlap(proposed, maintenanceModel.Intervals(windows), busyMaintenance); err != nil {
		return res, err
	}

	reservation := req.ToModel(user, proposed, schedule.Price(proposed, facility.HourlyRate), now)
	reservation.FacilityName = facility.Name

	if err = s.repo.InsertChecked(ctx, reservation); err != nil {
		return res, writeError("create reservation", err)
	}

	s.publish(ctx, model.EventCreated, reservation)

	res.FromModel(reservation, loc)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.List(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, params.Limit, timezone.GetLocation())

	return res, nil
}

// Get hides reservations of other users from non-admin callers.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservation, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("reservationID", id).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if reservation.ID == constant.Empty || (role != constant.RoleAdmin && reservation.UserID != user) {
		return res, failure.NotFound("reservation not found")
	}

	res.FromModel(reservation, timezone.GetLocation())

	return res, nil
}

// UpdateStatus applies an admin status change. Confirming re-checks the
// facility so a reactivated reservation never overlaps a confirmed one.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.repo.UpdateStatusChecked(ctx, id, req.Status, user, timezone.Now())
	if errors.Is(err, repository.ErrInvalidTransition) {
		return res, model.TransitionError(reservation.Status, req.Status)
	}

	if errors.Is(err, gRepo.ErrNotFound) {
		return res, failure.NotFound("reservation not found")
	}

	if err != nil {
		return res, writeError("update reservation status", err)
	}

	s.publish(ctx, model.EventStatusChanged, reservation)

	res.FromModel(reservation, timezone.GetLocation())

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservation, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("reservationID", id).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found")
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("reservationID", id).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.publish(ctx, model.EventDeleted, reservation)

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, reservation model.Reservation) {
	message := kafka.Message{
		Key:   reservation.FacilityID,
		Value: model.NewEvent(eventType, reservation, timezone.Now()),
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Reservation, []kafka.Message{message}); err != nil {
		log.Error().Err(err).Str("event", eventType).Msg("failed to publish reservation event")
	}
}

// writeError maps a checked-write failure onto the rejection callers see. A
// conflict found by storage is the same overlap a pre-check would report.
func writeError(op string, err error) error {
	switch {
	case errors.Is(err, gRepo.ErrConflict):
		return model.OverlapError(busyReservation)
	case errors.Is(err, repository.ErrMaintenanceOverlap):
		return model.OverlapError(busyMaintenance)
	case errors.Is(err, gRepo.ErrNotFound):
		return failure.NotFound("facility not found")
	default:
		log.Error().Err(err).Msgf("failed to %s", op)

		return fmt.Errorf("failed to %s: %w", op, err)
	}
}
