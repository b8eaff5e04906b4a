package reservation

import (
	"net/http"

	"arena/infras/otel"
	"arena/internal/domains/reservation/model"
	"arena/internal/domains/reservation/model/dto"
	"arena/internal/domains/reservation/service"
	"arena/internal/domains/schedule"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/timezone"
	"arena/shared/validator"
	"arena/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/mine", handler.GetMyReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
		routerGroup.Delete("/{id}", handler.DeleteReservation)
	})
}

func listRequest(r *http.Request) (dto.ListReservationsRequest, error) {
	query := r.URL.Query()

	req := dto.ListReservationsRequest{
		Status:     query.Get(constant.RequestParamStatus),
		FacilityID: query.Get(constant.RequestParamFacilityID),
		Range: schedule.RangeSpec{
			Period: query.Get(constant.RequestParamPeriod),
			Date:   query.Get(constant.RequestParamDate),
			Month:  query.Get(constant.RequestParamMonth),
			Year:   query.Get(constant.RequestParamYear),
			From:   query.Get(constant.RequestParamFrom),
			To:     query.Get(constant.RequestParamTo),
		},
	}

	if req.Status != constant.Empty {
		if err := validator.ValidateVar(req.Status, "oneof=pending confirmed cancelled"); err != nil {
			return req, err
		}
	}

	if req.FacilityID != constant.Empty {
		if err := validator.ValidateID(req.FacilityID, "facility"); err != nil {
			return req, err
		}
	}

	return req, nil
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request, req dto.ListReservationsRequest) {
	ctx := r.Context()

	filterGroup, err := req.ToFilter(timezone.GetLocation())
	if err != nil {
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, model.FieldStartTime, model.FieldStatus, model.FieldTotalPrice)

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

// CreateReservation validates and stores a booking.
// @Summary Create a reservation
// @Description Runs the booking rules in order and rejects with the kind of the first failing rule: past_date, too_far_ahead, past_start_time, invalid_order, outside_operating_hours, too_short, overlap.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Booking"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	var req dto.CreateReservationRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("facilityID", req.FacilityID).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation created by user " + user)

	response.WithJSON(w, http.StatusCreated, reservation)
}

// GetReservations lists every reservation.
// @Summary Get all reservations
// @Tags Reservation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status" Enums(pending, confirmed, cancelled)
// @Param facility_id query string false "Filter by facility"
// @Param period query string false "Start date granularity" Enums(day, month, year, range)
// @Param date query string false "Day when period=day"
// @Param month query string false "YYYY-MM when period=month"
// @Param year query string false "YYYY when period=year"
// @Param from query string false "First day when period=range"
// @Param to query string false "Last day when period=range"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	req, err := listRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	handler.list(w, r.WithContext(ctx), req)
}

// GetMyReservations lists the caller's own reservations.
// @Summary Get my reservations
// @Tags Reservation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status" Enums(pending, confirmed, cancelled)
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyReservations")
	defer scope.End()

	req, err := listRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req.UserID, _ = ctx.Value(constant.ContextKeyUserID).(string)

	handler.list(w, r.WithContext(ctx), req)
}

// GetReservationByID retrieves a reservation by its ID.
// @Summary Get a reservation by ID
// @Description Users only see their own reservations.
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "reservation"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}

// UpdateStatus moves a reservation through its lifecycle.
// @Summary Update reservation status
// @Description pending to confirmed or cancelled, confirmed to cancelled. Confirming re-checks overlap.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reservations/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "reservation"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	var req dto.UpdateStatusRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.UpdateStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("reservationID", id).Msg("failed to update reservation status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation " + req.Status + " by user " + user)

	response.WithJSON(w, http.StatusOK, reservation)
}

// DeleteReservation removes a reservation.
// @Summary Delete a reservation by ID
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Reservation deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "reservation"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Reservation deleted successfully")
}
