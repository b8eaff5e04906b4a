package report

import (
	"net/http"

	"arena/infras/otel"
	"arena/internal/domains/report/model/dto"
	"arena/internal/domains/report/service"
	"arena/shared/constant"
	"arena/shared/validator"
	"arena/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReport)
		routerGroup.Post("/export", handler.ExportReport)
	})
}

func reportRequest(r *http.Request) (dto.ReportRequest, error) {
	query := r.URL.Query()

	req := dto.ReportRequest{
		Period: query.Get(constant.RequestParamPeriod),
		Date:   query.Get(constant.RequestParamDate),
		Month:  query.Get(constant.RequestParamMonth),
		Year:   query.Get(constant.RequestParamYear),
		From:   query.Get(constant.RequestParamFrom),
		To:     query.Get(constant.RequestParamTo),
	}

	return req, validator.ValidateStruct(&req)
}

// GetReport aggregates confirmed reservations over a range.
// @Summary Get reservation report
// @Description Totals, revenue, most reserved facility and occupancy for the range, plus per-facility stats.
// @Tags Report
// @Produce json
// @Param period query string true "Granularity" Enums(day, month, year, range)
// @Param date query string false "Day when period=day"
// @Param month query string false "YYYY-MM when period=month"
// @Param year query string false "YYYY when period=year"
// @Param from query string false "First day when period=range"
// @Param to query string false "Last day when period=range"
// @Success 200 {object} response.Data[dto.ReportResponse] "Report"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reports [get]
// @Security BearerAuth
func (handler *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReport")
	defer scope.End()

	req, err := reportRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	report, err := handler.service.Compute(ctx, req.ToRangeSpec())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("period", req.Period).Msg("failed to compute report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

// ExportReport stores a JSON snapshot of the report in object storage.
// @Summary Export reservation report
// @Tags Report
// @Produce json
// @Param period query string true "Granularity" Enums(day, month, year, range)
// @Param date query string false "Day when period=day"
// @Param month query string false "YYYY-MM when period=month"
// @Param year query string false "YYYY when period=year"
// @Param from query string false "First day when period=range"
// @Param to query string false "Last day when period=range"
// @Success 201 {object} response.Data[dto.ExportResponse] "Snapshot location"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reports/export [post]
// @Security BearerAuth
func (handler *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportReport")
	defer scope.End()

	req, err := reportRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	export, err := handler.service.Export(ctx, req.ToRangeSpec())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("period", req.Period).Msg("failed to export report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Report exported to " + export.URL)

	response.WithJSON(w, http.StatusCreated, export)
}
