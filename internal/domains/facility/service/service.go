package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"arena/config"
	"arena/infras/otel"
	"arena/internal/domains/facility/model"
	"arena/internal/domains/facility/model/dto"
	"arena/internal/domains/facility/repository"
	"arena/internal/domains/schedule"
	"arena/shared"
	"arena/shared/cache"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/failure"
	gRepo "arena/shared/repository"
	"arena/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFacility    = "facility:get"
	cacheGetAllFacility = "facility:gets"
	cacheActiveFacility = "facility:active"
	cacheGetHours       = "facility:hours"
)

// Facility is the read side of the facility catalogue plus the operating-hours
// overrides the booking core resolves policies from.
type Facility interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFacilitiesResponse, error)
	Get(ctx context.Context, id string) (dto.FacilityResponse, error)
	Lookup(ctx context.Context, id string) (model.Facility, error)
	LookupFresh(ctx context.Context, id string) (model.Facility, error)
	Active(ctx context.Context) ([]model.Facility, error)
	Policy(ctx context.Context, id string) (schedule.Policy, error)
	Hours(ctx context.Context, id string) (dto.WeekHoursResponse, error)
	ReplaceHours(ctx context.Context, id string, req dto.ReplaceHoursRequest) error
}

type serviceImpl struct {
	repo  repository.Facility
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Facility, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Facility {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFacilitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".facility.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFacility, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for facilities")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count facilities")

		return res, fmt.Errorf("failed to count facilities: %w", err)
	}

	models, err := s.repo.List(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get facilities")

		return res, fmt.Errorf("failed to get facilities: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.CacheTTL()); err != nil {
		log.Error().Err(err).Msg("failed to save facilities to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FacilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".facility.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	facility, err := s.Lookup(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(facility)

	return res, nil
}

// Lookup returns the stored facility or a not-found failure. The result may
// be up to CacheTTL old.
func (s *serviceImpl) Lookup(ctx context.Context, id string) (res model.Facility, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".facility.Lookup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, shared.BuildCacheKey(cacheGetFacility, id), &res); err == nil {
		return res, nil
	}

	return s.load(ctx, id)
}

// LookupFresh skips the cached copy. Booking reads the active flag and the
// hourly rate through it so a price is never taken from a stale snapshot.
func (s *serviceImpl) LookupFresh(ctx context.Context, id string) (res model.Facility, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".facility.LookupFresh")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.load(ctx, id)
}

// load reads the facility from storage and refreshes its cached copy.
func (s *serviceImpl) load(ctx context.Context, id string) (res model.Facility, err error) {
	res, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("facilityID", id).Msg("failed to get facility")

		return res, fmt.Errorf("failed to get facility: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("facility not found")
	}

	if err := s.cache.Save(ctx, shared.BuildCacheKey(cacheGetFacility, id), res, s.cfg.CacheTTL()); err != nil {
		log.Error().Err(err).Msg("failed to save facility to cache")
	}

	return res, nil
}

// Active lists every bookable facility ordered by name.
func (s *serviceImpl) Active(ctx context.Context) (res []model.Facility, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".facility.Active")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, cacheActiveFacility, &res); err == nil {
		return res, nil
	}

	filter := gDto.FilterGroup{}
	filter.And(gDto.Filter{
		Field:    model.FieldActive,
		Value:    true,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	res, err = s.repo.List(ctx, gDto.QueryParams{SortBy: model.FieldName}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active facilities")

		return nil, fmt.Errorf("failed to get active facilities: %w", err)
	}

	if err := s.cache.Save(ctx, cacheActiveFacility, res, s.cfg.CacheTTL()); err != nil {
		log.Error().Err(err).Msg("failed to save active facilities to cache")
	}

	return res, nil
}

// Policy resolves the operating-hours policy of a facility from its override
// rows. A facility without rows uses the default hours every day.
func (s *serviceImpl) Policy(ctx context.Context, id string) (res schedule.Policy, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".facility.Policy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetHours, id)

	var rows []model.OperatingHours

	if err = s.cache.Get(ctx, cacheKey, &rows); err == nil {
		return model.Policy(rows), nil
	}

	rows, err = s.repo.GetHours(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("facilityID", id).Msg("failed to get operating hours")

		return res, fmt.Errorf("failed to get operating hours: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, rows, s.cfg.CacheTTL()); err != nil {
		log.Error().Err(err).Msg("failed to save operating hours to cache")
	}

	return model.Policy(rows), nil
}

func (s *serviceImpl) Hours(ctx context.Context, id string) (res dto.WeekHoursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".facility.Hours")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.Lookup(ctx, id); err != nil {
		return res, err
	}

	policy, err := s.Policy(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromPolicy(id, policy)

	return res, nil
}

func (s *serviceImpl) ReplaceHours(ctx context.Context, id string, req dto.ReplaceHoursRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".facility.ReplaceHours")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rows, err := req.ToModels(id, user, timezone.Now())
	if err != nil {
		return err
	}

	if err = s.repo.ReplaceHours(ctx, id, rows); err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			return failure.NotFound("facility not found")
		}

		log.Error().Err(err).Str("facilityID", id).Msg("failed to replace operating hours")

		return fmt.Errorf("failed to replace operating hours: %w", err)
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetHours, id)); err != nil {
		log.Error().Err(err).Msg("failed to invalidate operating hours cache")
	}

	return nil
}
