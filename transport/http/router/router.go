package router

import (
	"arena/internal/handlers/availability"
	"arena/internal/handlers/facility"
	"arena/internal/handlers/maintenance"
	"arena/internal/handlers/report"
	"arena/internal/handlers/reservation"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Facility     facility.Handler
	Availability availability.Handler
	Reservation  reservation.Handler
	Maintenance  maintenance.Handler
	Report       report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Facility.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Maintenance.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
