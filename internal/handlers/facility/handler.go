package facility

import (
	"net/http"

	"arena/infras/otel"
	"arena/internal/domains/facility/model"
	"arena/internal/domains/facility/model/dto"
	"arena/internal/domains/facility/service"
	"arena/shared"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/validator"
	"arena/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Facility
	otel    otel.Otel
}

func New(service service.Facility, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/facilities", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFacilities)
		routerGroup.Get("/{id}", handler.GetFacilityByID)
		routerGroup.Get("/{id}/hours", handler.GetHours)
		routerGroup.Put("/{id}/hours", handler.ReplaceHours)
	})
}

// GetFacilities lists the facility catalogue.
// @Summary Get all facilities
// @Description Retrieve facilities with optional filtering and pagination.
// @Tags Facility
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param category query string false "Filter by category" Enums(soccer, basketball, volleyball, swimming)
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetFacilitiesResponse] "List of facilities"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities [get]
func (handler *Handler) GetFacilities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, model.FieldName, model.FieldHourlyRate, model.FieldCapacity)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if name := r.URL.Query().Get(model.FieldName); name != constant.Empty {
		filterGroup.And(gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: name, Table: model.TableName})
	}

	if category := r.URL.Query().Get(model.FieldCategory); category != constant.Empty {
		if err := validator.ValidateVar(category, "oneof=soccer basketball volleyball swimming"); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		filterGroup.And(gDto.Filter{Field: model.FieldCategory, Operator: gDto.FilterOperatorEq, Value: category, Table: model.TableName})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.And(gDto.Filter{Field: model.FieldActive, Operator: gDto.FilterOperatorEq, Value: *active, Table: model.TableName})
	}

	facilities, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facilities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, facilities)
}

// GetFacilityByID retrieves a facility by its ID.
// @Summary Get a facility by ID
// @Tags Facility
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} response.Data[dto.FacilityResponse] "Facility details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id} [get]
func (handler *Handler) GetFacilityByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilityByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "facility"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	facility, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facility by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, facility)
}

// GetHours returns the resolved weekly hours of a facility.
// @Summary Get facility operating hours
// @Description Seven days starting Sunday; overridden days differ from the global default.
// @Tags Facility
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} response.Data[dto.WeekHoursResponse] "Weekly hours"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id}/hours [get]
func (handler *Handler) GetHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHours")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "facility"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	hours, err := handler.service.Hours(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get operating hours")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hours)
}

// ReplaceHours swaps every override row of a facility.
// @Summary Replace facility operating hours
// @Description Days left out fall back to the global default.
// @Tags Facility
// @Accept json
// @Produce json
// @Param id path string true "Facility ID"
// @Param request body dto.ReplaceHoursRequest true "Override rows"
// @Success 200 {object} response.Message "Operating hours updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id}/hours [put]
// @Security BearerAuth
func (handler *Handler) ReplaceHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplaceHours")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "facility"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	var req dto.ReplaceHoursRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ReplaceHours(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to replace operating hours")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Operating hours replaced by user " + user)

	response.WithMessage(w, http.StatusOK, "Operating hours updated successfully")
}
