package calendar

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	"github.com/gabrielgilbord/Frantana-Booking/shared/failure"
	"github.com/gabrielgilbord/Frantana-Booking/shared/ics"
	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"
	"github.com/gabrielgilbord/Frantana-Booking/transport/http/response"
)

const (
	requestParamTitle       = "title"
	requestParamDate        = "date"
	requestParamTime        = "time"
	requestParamEnd         = "end"
	requestParamLocation    = "location"
	requestParamDescription = "description"
)

type Handler struct {
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Handler {
	return Handler{
		config: config,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/calendar-event", handler.GetCalendarEvent)
}

// GetCalendarEvent serves a downloadable .ics file for an event. The links
// in approval emails point here so clients can add the event to their
// calendars.
// @Summary Download a calendar event
// @Description Generate an iCalendar (.ics) file for the given event details.
// @Tags Calendar
// @Produce text/calendar
// @Param title query string true "Event title"
// @Param date query string true "Event date (YYYY-MM-DD)"
// @Param time query string true "Start time (HH:MM)"
// @Param end query string false "End time (HH:MM), defaults to the configured event duration"
// @Param location query string false "Event location"
// @Param description query string false "Event description"
// @Success 200 {string} string "iCalendar file"
// @Failure 400 {object} response.Error
// @Router /v1/calendar-event [get]
func (handler *Handler) GetCalendarEvent(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendarEvent")
	defer scope.End()

	query := r.URL.Query()

	title := query.Get(requestParamTitle)
	date := query.Get(requestParamDate)
	startTime := query.Get(requestParamTime)

	if title == constant.Empty || date == constant.Empty || startTime == constant.Empty {
		err := failure.BadRequestFromString("title, date and time query parameters are required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	day, err := timezone.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		err = failure.BadRequestFromString("date must be in YYYY-MM-DD format")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	startMinutes, err := timezone.MinutesOfDay(startTime)
	if err != nil {
		err = failure.BadRequestFromString("time must be in HH:MM format")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	endMinutes := startMinutes + handler.config.Booking.EventDurationMinutes
	if end := query.Get(requestParamEnd); end != constant.Empty {
		endMinutes, err = timezone.MinutesOfDay(end)
		if err != nil {
			err = failure.BadRequestFromString("end must be in HH:MM format")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		if endMinutes <= startMinutes {
			err = failure.BadRequestFromString("end must be after time")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}
	}

	event := ics.Event{
		Title:       title,
		Description: query.Get(requestParamDescription),
		Location:    query.Get(requestParamLocation),
		StartDate:   day.Add(time.Duration(startMinutes) * time.Minute),
		EndDate:     day.Add(time.Duration(endMinutes) * time.Minute),
		Organizer: &ics.Organizer{
			Name:  handler.config.Booking.OrganizerName,
			Email: handler.config.Booking.OrganizerEmail,
		},
	}

	log.Info().Str("title", title).Str("date", date).Msg("serving calendar event")
	scope.AddEvent("Calendar event generated for " + title)

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeCalendar)
	w.Header().Set(constant.RequestHeaderContentDisposition, `attachment; filename="`+ics.Filename(title)+`"`)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(ics.Generate(event))); err != nil {
		log.Error().Err(err).Msg("failed to write calendar event")
	}
}
