package availability

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/gabrielgilbord/Frantana-Booking/infras/otel"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/model"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/model/dto"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/service"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	"github.com/gabrielgilbord/Frantana-Booking/shared/failure"
	"github.com/gabrielgilbord/Frantana-Booking/shared/validator"
	"github.com/gabrielgilbord/Frantana-Booking/transport/http/response"
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
		routerGroup.Get("/check", handler.CheckDate)
		routerGroup.Get("/", handler.GetBlackouts)
		routerGroup.Post("/", handler.MarkUnavailable)
		routerGroup.Post("/range", handler.MarkRangeUnavailable)
		routerGroup.Delete("/{date}", handler.RemoveBlackout)
	})
}

// CheckDate reports whether a date can be selected for a reservation.
// @Summary Check a date
// @Description Report whether the given date is selectable, with any partial blackouts and occupied slots.
// @Tags Availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.DayReport "Day report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/check [get]
func (handler *Handler) CheckDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckDate")
	defer scope.End()

	date := r.URL.Query().Get(model.FieldDate)
	if date == constant.Empty {
		err := failure.BadRequestFromString("date query parameter is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	report, err := handler.service.Check(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check date")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

// GetBlackouts lists upcoming blackout entries.
// @Summary Get upcoming blackouts
// @Description Retrieve all blackout entries from today onward, ordered by date.
// @Tags Availability
// @Produce json
// @Success 200 {object} dto.GetAvailabilityResponse "List of blackouts"
// @Failure 500 {object} response.Error
// @Router /v1/availability [get]
// @Security BearerAuth
func (handler *Handler) GetBlackouts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlackouts")
	defer scope.End()

	blackouts, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blackouts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blackouts retrieved successfully")

	response.WithJSON(w, http.StatusOK, blackouts)
}

// MarkUnavailable creates or replaces a blackout for a single date.
// @Summary Mark a date unavailable
// @Description Create or replace the blackout for the given date. Without times, the whole day is blocked.
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.MarkUnavailableRequest true "Mark Unavailable Request"
// @Success 201 {object} response.Message "Date marked unavailable"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability [post]
// @Security BearerAuth
func (handler *Handler) MarkUnavailable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkUnavailable")
	defer scope.End()

	req := dto.MarkUnavailableRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.MarkUnavailable(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark date unavailable")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Date marked unavailable by " + admin)

	response.WithMessage(w, http.StatusCreated, "Date marked unavailable")
}

// MarkRangeUnavailable creates or replaces blackouts for a date range.
// @Summary Mark a date range unavailable
// @Description Create or replace a blackout for every date in the inclusive range.
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.MarkRangeUnavailableRequest true "Mark Range Unavailable Request"
// @Success 201 {object} response.Message "Date range marked unavailable"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/range [post]
// @Security BearerAuth
func (handler *Handler) MarkRangeUnavailable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRangeUnavailable")
	defer scope.End()

	req := dto.MarkRangeUnavailableRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.MarkRangeUnavailable(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark range unavailable")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Date range marked unavailable by " + admin)

	response.WithMessage(w, http.StatusCreated, "Date range marked unavailable")
}

// RemoveBlackout deletes the blackout for a date, making it available again.
// @Summary Remove a blackout
// @Description Delete the blackout entry for the given date.
// @Tags Availability
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Message "Blackout removed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/{date} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveBlackout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveBlackout")
	defer scope.End()

	date := chi.URLParam(r, model.FieldDate)

	if err := handler.service.Remove(ctx, date); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove blackout")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Blackout removed by " + admin)

	response.WithMessage(w, http.StatusOK, "Blackout removed")
}
