package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"arena/config"
	"arena/infras/otel/mocks"
	facilityMocks "arena/internal/domains/facility/mocks"
	"arena/internal/domains/facility/model"
	"arena/internal/domains/facility/model/dto"
	"arena/internal/domains/facility/service"
	"arena/internal/domains/schedule"
	cacheMocks "arena/shared/cache/mocks"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/failure"
	gRepo "arena/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errCacheMiss = errors.New("cache miss")

func newService(t *testing.T) (service.Facility, *facilityMocks.MockFacility, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := facilityMocks.NewMockFacility(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestFacilityService_Lookup(t *testing.T) {
	court := model.Facility{ID: "f-1", Name: "Court 1", Category: model.CategoryBasketball, HourlyRate: 100, Active: true}

	tests := []struct {
		name      string
		setupMock func(repo *facilityMocks.MockFacility, cache *cacheMocks.MockRedisCache)
		wantKind  string
		want      model.Facility
	}{
		{
			name: "cache hit skips storage",
			setupMock: func(_ *facilityMocks.MockFacility, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "facility:get:f-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*model.Facility) = court

						return nil
					})
			},
			want: court,
		},
		{
			name: "cache miss reads storage and saves",
			setupMock: func(repo *facilityMocks.MockFacility, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "facility:get:f-1", gomock.Any()).Return(errCacheMiss)
				repo.EXPECT().Get(gomock.Any(), "f-1").Return(court, nil)
				cache.EXPECT().Save(gomock.Any(), "facility:get:f-1", court, time.Minute).Return(nil)
			},
			want: court,
		},
		{
			name: "missing facility",
			setupMock: func(repo *facilityMocks.MockFacility, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				repo.EXPECT().Get(gomock.Any(), "f-1").Return(model.Facility{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "storage timeout stays transient",
			setupMock: func(repo *facilityMocks.MockFacility, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				repo.EXPECT().Get(gomock.Any(), "f-1").Return(model.Facility{}, failure.Transient(context.DeadlineExceeded))
			},
			wantKind: failure.KindTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			got, err := svc.Lookup(context.Background(), "f-1")

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFacilityService_LookupFresh(t *testing.T) {
	svc, repo, cache := newService(t)

	stale := model.Facility{ID: "f-1", HourlyRate: 100, Active: true}
	current := model.Facility{ID: "f-1", HourlyRate: 140, Active: false}

	cache.EXPECT().Get(gomock.Any(), "facility:get:f-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*model.Facility) = stale

			return nil
		}).Times(0)
	repo.EXPECT().Get(gomock.Any(), "f-1").Return(current, nil)
	cache.EXPECT().Save(gomock.Any(), "facility:get:f-1", current, time.Minute).Return(nil)

	got, err := svc.LookupFresh(context.Background(), "f-1")

	require.NoError(t, err)
	assert.Equal(t, current, got)
}

func TestFacilityService_GetAll(t *testing.T) {
	svc, repo, cache := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 1}
	models := []model.Facility{{ID: "f-1", Name: "Court 1"}}

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	repo.EXPECT().List(gomock.Any(), params, gomock.Any()).Return(models, nil)
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), time.Minute).Return(errors.New("redis down"))

	got, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalData)
	assert.Equal(t, 3, got.TotalPage)
	require.Len(t, got.Facilities, 1)
	assert.Equal(t, "Court 1", got.Facilities[0].Name)
}

func TestFacilityService_Policy(t *testing.T) {
	svc, repo, cache := newService(t)

	rows := []model.OperatingHours{
		{FacilityID: "f-1", DayOfWeek: int(time.Sunday), Opening: schedule.NewTimeOfDay(10, 0), Closing: schedule.NewTimeOfDay(14, 0)},
	}

	cache.EXPECT().Get(gomock.Any(), "facility:hours:f-1", gomock.Any()).Return(errCacheMiss)
	repo.EXPECT().GetHours(gomock.Any(), "f-1").Return(rows, nil)
	cache.EXPECT().Save(gomock.Any(), "facility:hours:f-1", rows, time.Minute).Return(nil)

	policy, err := svc.Policy(context.Background(), "f-1")
	require.NoError(t, err)

	sunday := time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)
	monday := sunday.AddDate(0, 0, 1)

	assert.Equal(t, "10:00-14:00", policy.HoursFor(sunday).String())
	assert.Equal(t, "06:00-22:00", policy.HoursFor(monday).String())
}

func TestFacilityService_Hours(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().Get(gomock.Any(), "facility:get:f-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*model.Facility) = model.Facility{ID: "f-1"}

			return nil
		})
	cache.EXPECT().Get(gomock.Any(), "facility:hours:f-1", gomock.Any()).Return(errCacheMiss)
	repo.EXPECT().GetHours(gomock.Any(), "f-1").Return(nil, nil)
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Hours(context.Background(), "f-1")
	require.NoError(t, err)

	require.Len(t, got.Days, 7)
	assert.Equal(t, "Sunday", got.Days[0].Day)
	assert.Equal(t, "08:00", got.Days[0].Opening)
	assert.Equal(t, "20:00", got.Days[0].Closing)
	assert.Equal(t, "07:00", got.Days[6].Opening)
	assert.False(t, got.Days[3].Overridden)
}

func TestFacilityService_ReplaceHours(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	tests := []struct {
		name      string
		req       dto.ReplaceHoursRequest
		setupMock func(repo *facilityMocks.MockFacility, cache *cacheMocks.MockRedisCache)
		wantKind  string
	}{
		{
			name: "replaces rows and drops the cached policy",
			req: dto.ReplaceHoursRequest{Days: []dto.DayHoursRequest{
				{DayOfWeek: 0, Opening: "09:00", Closing: "13:00"},
			}},
			setupMock: func(repo *facilityMocks.MockFacility, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().ReplaceHours(gomock.Any(), "f-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, rows []model.OperatingHours) error {
						if len(rows) != 1 || rows[0].CreatedBy != "admin-1" || rows[0].Opening != schedule.NewTimeOfDay(9, 0) {
							return fmt.Errorf("unexpected rows %+v", rows)
						}

						return nil
					})
				cache.EXPECT().Delete(gomock.Any(), "facility:hours:f-1").Return(nil)
			},
		},
		{
			name: "opening after closing",
			req: dto.ReplaceHoursRequest{Days: []dto.DayHoursRequest{
				{DayOfWeek: 1, Opening: "18:00", Closing: "08:00"},
			}},
			setupMock: func(*facilityMocks.MockFacility, *cacheMocks.MockRedisCache) {},
			wantKind:  failure.KindBadRequest,
		},
		{
			name: "unknown facility",
			req:  dto.ReplaceHoursRequest{},
			setupMock: func(repo *facilityMocks.MockFacility, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().ReplaceHours(gomock.Any(), "f-1", gomock.Any()).
					Return(fmt.Errorf("failed to replace hours: %w", gRepo.ErrNotFound))
			},
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			err := svc.ReplaceHours(ctx, "f-1", tt.req)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
