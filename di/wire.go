//go:build wireinject
// +build wireinject

package di

import (
	"arena/config"
	"arena/infras/jwt"
	"arena/infras/kafka"
	"arena/infras/otel"
	"arena/infras/postgres"
	"arena/infras/redis"
	"arena/infras/s3"
	"arena/permissions"
	"arena/shared/cache"
	"arena/transport/http"
	"arena/transport/http/middleware"
	"arena/transport/http/router"

	availabilityService "arena/internal/domains/availability/service"
	facilityRepository "arena/internal/domains/facility/repository"
	facilityService "arena/internal/domains/facility/service"
	maintenanceRepository "arena/internal/domains/maintenance/repository"
	maintenanceService "arena/internal/domains/maintenance/service"
	reportService "arena/internal/domains/report/service"
	reservationRepository "arena/internal/domains/reservation/repository"
	reservationService "arena/internal/domains/reservation/service"

	availabilityHandler "arena/internal/handlers/availability"
	facilityHandler "arena/internal/handlers/facility"
	maintenanceHandler "arena/internal/handlers/maintenance"
	reportHandler "arena/internal/handlers/report"
	reservationHandler "arena/internal/handlers/reservation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var facilityDomain = wire.NewSet(
	facilityRepository.New,
	facilityService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var maintenanceDomain = wire.NewSet(
	maintenanceRepository.New,
	maintenanceService.New,
)

var domains = wire.NewSet(
	facilityDomain,
	reservationDomain,
	maintenanceDomain,
	availabilityService.New,
	reportService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	facilityHandler.New,
	availabilityHandler.New,
	reservationHandler.New,
	maintenanceHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
