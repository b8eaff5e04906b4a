package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"arena/config"
	"arena/infras/kafka"
	"arena/infras/otel"
	facilityService "arena/internal/domains/facility/service"
	"arena/internal/domains/maintenance/model"
	"arena/internal/domains/maintenance/model/dto"
	"arena/internal/domains/maintenance/repository"
	reservationModel "arena/internal/domains/reservation/model"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/failure"
	gRepo "arena/shared/repository"
	"arena/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Maintenance interface {
	Create(ctx context.Context, req dto.CreateMaintenanceRequest) (dto.MaintenanceResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMaintenanceResponse, error)
	Get(ctx context.Context, id string) (dto.MaintenanceResponse, error)
	FinishEarly(ctx context.Context, id string) (dto.MaintenanceResponse, error)
}

type serviceImpl struct {
	repo     repository.Maintenance
	facility facilityService.Facility
	kafka    kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Maintenance, facility facilityService.Facility, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Maintenance {
	return &serviceImpl{
		repo:     repo,
		facility: facility,
		kafka:    kafka,
		cfg:      cfg,
		otel:     otel,
	}
}

// Create schedules a window unless it would cover a confirmed reservation.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMaintenanceRequest) (res dto.MaintenanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	if _, err = s.facility.Lookup(ctx, req.FacilityID); err != nil {
		return res, err
	}

	interval, err := req.Interval(now.Location())
	if err != nil {
		return res, err
	}

	if interval.IsEmpty() {
		return res, failure.New(http.StatusBadRequest, reservationModel.KindInvalidOrder, "the end time must be after the start time")
	}

	if !interval.End.After(now) {
		return res, failure.BadRequestFromString("the maintenance window has already ended")
	}

	window := req.ToModel(user, interval, now)

	if err = s.repo.InsertChecked(ctx, window); err != nil {
		switch {
		case errors.Is(err, gRepo.ErrConflict):
			return res, failure.New(http.StatusConflict, reservationModel.KindOverlap, "the maintenance window overlaps a confirmed reservation")
		case errors.Is(err, gRepo.ErrNotFound):
			return res, failure.NotFound("facility not found")
		}

		log.Error().Err(err).Msg("failed to create maintenance window")

		return res, fmt.Errorf("failed to create maintenance window: %w", err)
	}

	s.publish(ctx, model.EventCreated, window)

	res.FromModel(window, now)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMaintenanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count maintenance windows")

		return res, fmt.Errorf("failed to count maintenance windows: %w", err)
	}

	models, err := s.repo.List(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance windows")

		return res, fmt.Errorf("failed to get maintenance windows: %w", err)
	}

	res.FromModels(models, total, params.Limit, timezone.Now())

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MaintenanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	window, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("maintenanceID", id).Msg("failed to get maintenance window")

		return res, fmt.Errorf("failed to get maintenance window: %w", err)
	}

	if window.ID == constant.Empty {
		return res, failure.NotFound("maintenance window not found")
	}

	res.FromModel(window, timezone.Now())

	return res, nil
}

// FinishEarly ends an active window now and frees the rest of its slots.
func (s *serviceImpl) FinishEarly(ctx context.Context, id string) (res dto.MaintenanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.FinishEarly")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	window, err := s.repo.Finish(ctx, id, user, now)

	switch {
	case errors.Is(err, gRepo.ErrNotFound):
		return res, failure.NotFound("maintenance window not found")
	case errors.Is(err, repository.ErrJustStarted):
		return res, failure.BadRequestFromString("a maintenance window cannot be finished at the instant it starts")
	case errors.Is(err, repository.ErrNotActive):
		return res, failure.BadRequestFromString(fmt.Sprintf("only an active maintenance window can be finished, this one is %s", window.State(now)))
	case err != nil:
		log.Error().Err(err).Str("maintenanceID", id).Msg("failed to finish maintenance window")

		return res, fmt.Errorf("failed to finish maintenance window: %w", err)
	}

	s.publish(ctx, model.EventFinished, window)

	res.FromModel(window, now)

	return res, nil
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, window model.Window) {
	message := kafka.Message{
		Key:   window.FacilityID,
		Value: model.NewEvent(eventType, window, timezone.Now()),
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Maintenance, []kafka.Message{message}); err != nil {
		log.Error().Err(err).Str("event", eventType).Msg("failed to publish maintenance event")
	}
}
