package availability

import (
	"net/http"

	"arena/infras/otel"
	"arena/internal/domains/availability/service"
	"arena/shared/constant"
	"arena/shared/failure"
	"arena/shared/validator"
	"arena/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAvailability)
	})
}

// GetAvailability returns the hourly slot grid of one or every active facility.
// @Summary Get slot availability
// @Description One-hour slots from opening while the slot ends by closing. Slots overlapping a confirmed reservation or a maintenance window are unavailable.
// @Tags Availability
// @Produce json
// @Param date query string true "Local calendar day" format(date)
// @Param facility_id query string false "Facility ID; all active facilities when empty"
// @Success 200 {object} response.Data[[]model.FacilitySlotReport] "Slot grids"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)
	if date == constant.Empty {
		err := failure.BadRequestFromString("date is required")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	facilityID := r.URL.Query().Get(constant.RequestParamFacilityID)
	if facilityID != constant.Empty {
		if err := validator.ValidateID(facilityID, "facility"); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	reports, err := handler.service.Compute(ctx, facilityID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to compute availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reports)
}
