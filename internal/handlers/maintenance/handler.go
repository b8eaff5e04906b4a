package maintenance

import (
	"net/http"

	"arena/infras/otel"
	"arena/internal/domains/maintenance/model"
	"arena/internal/domains/maintenance/model/dto"
	"arena/internal/domains/maintenance/service"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/timezone"
	"arena/shared/validator"
	"arena/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Maintenance
	otel    otel.Otel
}

func New(service service.Maintenance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/maintenance", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMaintenance)
		routerGroup.Get("/", handler.GetMaintenance)
		routerGroup.Get("/{id}", handler.GetMaintenanceByID)
		routerGroup.Post("/{id}/finish", handler.FinishMaintenance)
	})
}

// CreateMaintenance schedules a maintenance window.
// @Summary Create a maintenance window
// @Description Rejected with kind overlap when the window covers a confirmed reservation.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body dto.CreateMaintenanceRequest true "Window, local times as YYYY-MM-DDTHH:MM"
// @Success 201 {object} response.Data[dto.MaintenanceResponse] "Maintenance window created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/maintenance [post]
// @Security BearerAuth
func (handler *Handler) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMaintenance")
	defer scope.End()

	var req dto.CreateMaintenanceRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	window, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("facilityID", req.FacilityID).Msg("failed to create maintenance window")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Maintenance window created by user " + user)

	response.WithJSON(w, http.StatusCreated, window)
}

// GetMaintenance lists maintenance windows with their derived state.
// @Summary Get maintenance windows
// @Tags Maintenance
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param facility_id query string false "Filter by facility"
// @Param date query string false "Windows touching this local day" format(date)
// @Success 200 {object} response.Data[dto.GetMaintenanceResponse] "List of maintenance windows"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance [get]
// @Security BearerAuth
func (handler *Handler) GetMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaintenance")
	defer scope.End()

	req := dto.ListMaintenanceRequest{
		FacilityID: r.URL.Query().Get(constant.RequestParamFacilityID),
		Date:       r.URL.Query().Get(constant.RequestParamDate),
	}

	if req.FacilityID != constant.Empty {
		if err := validator.ValidateID(req.FacilityID, "facility"); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	filterGroup, err := req.ToFilter(timezone.GetLocation())
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, model.FieldStartTime, model.FieldEndTime)

	windows, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance windows")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, windows)
}

// GetMaintenanceByID retrieves a maintenance window by its ID.
// @Summary Get a maintenance window by ID
// @Tags Maintenance
// @Produce json
// @Param id path string true "Maintenance window ID"
// @Success 200 {object} response.Data[dto.MaintenanceResponse] "Maintenance window"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetMaintenanceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaintenanceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "maintenance window"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	window, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance window by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, window)
}

// FinishMaintenance ends an active window now.
// @Summary Finish a maintenance window early
// @Description Only active windows can be finished; the end becomes the current time.
// @Tags Maintenance
// @Produce json
// @Param id path string true "Maintenance window ID"
// @Success 200 {object} response.Data[dto.MaintenanceResponse] "Maintenance window finished"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id}/finish [post]
// @Security BearerAuth
func (handler *Handler) FinishMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FinishMaintenance")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "maintenance window"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	window, err := handler.service.FinishEarly(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("maintenanceID", id).Msg("failed to finish maintenance window")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Maintenance window finished by user " + user)

	response.WithJSON(w, http.StatusOK, window)
}
