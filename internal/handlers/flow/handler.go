package flow

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/gabrielgilbord/Frantana-Booking/infras/otel"
	bookingFlow "github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/flow"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	"github.com/gabrielgilbord/Frantana-Booking/shared/validator"
	"github.com/gabrielgilbord/Frantana-Booking/transport/http/response"
)

type Handler struct {
	flow bookingFlow.Flow
	otel otel.Otel
}

func New(flow bookingFlow.Flow, otel otel.Otel) Handler {
	return Handler{
		flow: flow,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservation-flow", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.StartFlow)
		routerGroup.Get("/{id}", handler.GetFlow)
		routerGroup.Post("/{id}/event-type", handler.SelectEventType)
		routerGroup.Post("/{id}/date", handler.SelectDate)
		routerGroup.Post("/{id}/time", handler.SelectTime)
		routerGroup.Post("/{id}/back", handler.Back)
		routerGroup.Post("/{id}/submit", handler.Submit)
	})
}

type selectEventTypeRequest struct {
	EventType string `json:"event_type" validate:"required,max=100"`
}

type selectDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type selectTimeRequest struct {
	Time string `json:"time" validate:"required"`
}

// StartFlow opens a new reservation session.
// @Summary Start a reservation session
// @Description Open a new multi-step reservation session. The session expires after a configured idle period.
// @Tags ReservationFlow
// @Produce json
// @Success 201 {object} flow.Session "Session created"
// @Failure 500 {object} response.Error
// @Router /v1/reservation-flow [post]
func (handler *Handler) StartFlow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartFlow")
	defer scope.End()

	session, err := handler.flow.Start(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start reservation session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation session started")

	response.WithJSON(w, http.StatusCreated, session)
}

// GetFlow returns the current state of a reservation session.
// @Summary Get a reservation session
// @Description Retrieve the current step and selections of a reservation session.
// @Tags ReservationFlow
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} flow.Session "Session state"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservation-flow/{id} [get]
func (handler *Handler) GetFlow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlow")
	defer scope.End()

	session, err := handler.flow.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// SelectEventType records the chosen event type.
// @Summary Select the event type
// @Tags ReservationFlow
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body selectEventTypeRequest true "Event type"
// @Success 200 {object} flow.Session "Session state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservation-flow/{id}/event-type [post]
func (handler *Handler) SelectEventType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectEventType")
	defer scope.End()

	req := selectEventTypeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.flow.SelectEventType(ctx, chi.URLParam(r, constant.RequestParamID), req.EventType)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to select event type")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// SelectDate records the chosen date after checking availability.
// @Summary Select the event date
// @Tags ReservationFlow
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body selectDateRequest true "Event date"
// @Success 200 {object} flow.Session "Session state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservation-flow/{id}/date [post]
func (handler *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectDate")
	defer scope.End()

	req := selectDateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.flow.SelectDate(ctx, chi.URLParam(r, constant.RequestParamID), req.Date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to select date")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// SelectTime records the chosen time.
// @Summary Select the event time
// @Tags ReservationFlow
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body selectTimeRequest true "Event time"
// @Success 200 {object} flow.Session "Session state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservation-flow/{id}/time [post]
func (handler *Handler) SelectTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectTime")
	defer scope.End()

	req := selectTimeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.flow.SelectTime(ctx, chi.URLParam(r, constant.RequestParamID), req.Time)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to select time")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// Back returns the session to the previous step.
// @Summary Go back one step
// @Description Return to the previous step of the reservation flow without losing earlier selections.
// @Tags ReservationFlow
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} flow.Session "Session state"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservation-flow/{id}/back [post]
func (handler *Handler) Back(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Back")
	defer scope.End()

	session, err := handler.flow.Back(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to go back one step")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// Submit finishes the flow by creating the booking.
// @Summary Submit the reservation
// @Description Complete the flow with client details and create the pending booking.
// @Tags ReservationFlow
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body flow.DetailsRequest true "Client details"
// @Success 201 {object} flow.Session "Confirmed session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservation-flow/{id}/submit [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	req := bookingFlow.DetailsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, _, err := handler.flow.Submit(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation submitted successfully")

	response.WithJSON(w, http.StatusCreated, session)
}
