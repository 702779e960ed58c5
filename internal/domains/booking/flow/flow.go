package flow

//go:generate go run go.uber.org/mock/mockgen -source=./flow.go -destination=./mocks/flow_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel"
	availService "github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/service"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/model/dto"
	bookingService "github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/service"
	"github.com/gabrielgilbord/Frantana-Booking/shared"
	"github.com/gabrielgilbord/Frantana-Booking/shared/cache"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	"github.com/gabrielgilbord/Frantana-Booking/shared/failure"
	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"
)

const (
	cacheFlowSession = "flow:session"

	defaultFlowTTLSeconds = 1800
)

// Steps of the public reservation flow, in order. A session can only move one
// step forward at a time, and Back returns to the previous step without
// losing anything already entered.
const (
	StepSelectEventType = "select_event_type"
	StepSelectDate      = "select_date"
	StepSelectTime      = "select_time"
	StepEnterDetails    = "enter_details"
	StepConfirmed       = "confirmed"
)

// Session is the persisted state of one in-progress reservation.
type Session struct {
	ID        string `json:"id"`
	Step      string `json:"step"`
	EventType string `json:"event_type,omitempty"`
	EventDate string `json:"event_date,omitempty"`
	EventTime string `json:"event_time,omitempty"`
	BookingID string `json:"booking_id,omitempty"`
}

// DetailsRequest carries the final step of the flow. Everything selected in
// earlier steps comes from the session, not the request.
type DetailsRequest struct {
	ClientName      string `json:"client_name"      validate:"required,max=200"`
	ClientEmail     string `json:"client_email"     validate:"required,email"`
	ClientPhone     string `json:"client_phone"     validate:"omitempty,max=30"`
	EventName       string `json:"event_name"       validate:"required,max=200"`
	EventLocation   string `json:"event_location"   validate:"omitempty,max=300"`
	Guests          int    `json:"guests"           validate:"omitempty,min=1"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=1000"`
}

type Flow interface {
	Start(ctx context.Context) (Session, error)
	Get(ctx context.Context, sessionID string) (Session, error)
	SelectEventType(ctx context.Context, sessionID, eventType string) (Session, error)
	SelectDate(ctx context.Context, sessionID, date string) (Session, error)
	SelectTime(ctx context.Context, sessionID, eventTime string) (Session, error)
	Back(ctx context.Context, sessionID string) (Session, error)
	Submit(ctx context.Context, sessionID string, req DetailsRequest) (Session, dto.BookingResponse, error)
}

type flowImpl struct {
	bookings     bookingService.Booking
	availability availService.Availability
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(bookings bookingService.Booking, availability availService.Availability, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Flow {
	return &flowImpl{
		bookings:     bookings,
		availability: availability,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (f *flowImpl) ttl() int {
	if f.cfg.Booking.FlowTTLSeconds > 0 {
		return f.cfg.Booking.FlowTTLSeconds
	}

	return defaultFlowTTLSeconds
}

func (f *flowImpl) save(ctx context.Context, session Session) error {
	key := shared.BuildCacheKey(cacheFlowSession, session.ID)

	if err := f.cache.Save(ctx, key, session, f.ttl()); err != nil {
		log.Error().Err(err).Str("sessionID", session.ID).Msg("failed to save flow session")

		return fmt.Errorf("failed to save flow session: %w", err)
	}

	return nil
}

func (f *flowImpl) load(ctx context.Context, sessionID string) (Session, error) {
	var session Session

	key := shared.BuildCacheKey(cacheFlowSession, sessionID)

	err := f.cache.Get(ctx, key, &session)
	if err != nil {
		if errors.Is(err, cache.Nil) {
			return session, failure.NotFound("reservation session not found or expired") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("sessionID", sessionID).Msg("failed to load flow session")

		return session, fmt.Errorf("failed to load flow session: %w", err)
	}

	return session, nil
}

func (f *flowImpl) Start(ctx context.Context) (session Session, err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FlowStart")
	defer scope.End()
	defer scope.TraceIfError(err)

	session = Session{
		ID:   uuid.NewString(),
		Step: StepSelectEventType,
	}

	if err = f.save(ctx, session); err != nil {
		return session, err
	}

	return session, nil
}

func (f *flowImpl) Get(ctx context.Context, sessionID string) (session Session, err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FlowGet")
	defer scope.End()
	defer scope.TraceIfError(err)

	return f.load(ctx, sessionID)
}

func requireStep(session Session, step string) error {
	if session.Step != step {
		return failure.Conflict(fmt.Sprintf("reservation session is at step %s", session.Step)) // nolint:wrapcheck
	}

	return nil
}

func (f *flowImpl) SelectEventType(ctx context.Context, sessionID, eventType string) (session Session, err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FlowSelectEventType")
	defer scope.End()
	defer scope.TraceIfError(err)

	if eventType == constant.Empty {
		return session, failure.BadRequestFromString("event type is required") // nolint:wrapcheck
	}

	session, err = f.load(ctx, sessionID)
	if err != nil {
		return session, err
	}

	if err = requireStep(session, StepSelectEventType); err != nil {
		return session, err
	}

	session.EventType = eventType
	session.Step = StepSelectDate

	if err = f.save(ctx, session); err != nil {
		return session, err
	}

	return session, nil
}

func (f *flowImpl) SelectDate(ctx context.Context, sessionID, date string) (session Session, err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FlowSelectDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err = f.load(ctx, sessionID)
	if err != nil {
		return session, err
	}

	if err = requireStep(session, StepSelectDate); err != nil {
		return session, err
	}

	report, err := f.availability.Check(ctx, date)
	if err != nil {
		return session, err
	}

	if !report.Selectable {
		return session, failure.Conflict("the selected date is not available") // nolint:wrapcheck
	}

	session.EventDate = report.Date
	session.Step = StepSelectTime

	if err = f.save(ctx, session); err != nil {
		return session, err
	}

	return session, nil
}

func (f *flowImpl) SelectTime(ctx context.Context, sessionID, eventTime string) (session Session, err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FlowSelectTime")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = timezone.MinutesOfDay(eventTime); err != nil {
		return session, failure.BadRequestFromString(fmt.Sprintf("invalid event time: %v", err)) // nolint:wrapcheck
	}

	session, err = f.load(ctx, sessionID)
	if err != nil {
		return session, err
	}

	if err = requireStep(session, StepSelectTime); err != nil {
		return session, err
	}

	session.EventTime = eventTime
	session.Step = StepEnterDetails

	if err = f.save(ctx, session); err != nil {
		return session, err
	}

	return session, nil
}

// Back moves one step towards the beginning. Selections made so far are kept
// so the visitor can change their mind without retyping everything.
func (f *flowImpl) Back(ctx context.Context, sessionID string) (session Session, err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FlowBack")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err = f.load(ctx, sessionID)
	if err != nil {
		return session, err
	}

	switch session.Step {
	case StepSelectDate:
		session.Step = StepSelectEventType
	case StepSelectTime:
		session.Step = StepSelectDate
	case StepEnterDetails:
		session.Step = StepSelectTime
	case StepSelectEventType:
		return session, failure.Conflict("reservation session is already at the first step") // nolint:wrapcheck
	default:
		return session, failure.Conflict("a confirmed reservation cannot be changed") // nolint:wrapcheck
	}

	if err = f.save(ctx, session); err != nil {
		return session, err
	}

	return session, nil
}

// Submit finishes the flow by creating the booking. On failure the session
// stays at the details step so the visitor can retry.
func (f *flowImpl) Submit(ctx context.Context, sessionID string, req DetailsRequest) (session Session, res dto.BookingResponse, err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FlowSubmit")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err = f.load(ctx, sessionID)
	if err != nil {
		return session, res, err
	}

	if err = requireStep(session, StepEnterDetails); err != nil {
		return session, res, err
	}

	res, err = f.bookings.Create(ctx, dto.CreateBookingRequest{
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		EventDate:       session.EventDate,
		EventTime:       session.EventTime,
		EventType:       session.EventType,
		EventName:       req.EventName,
		EventLocation:   req.EventLocation,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return session, res, err
	}

	session.Step = StepConfirmed
	session.BookingID = res.ID

	if err = f.save(ctx, session); err != nil {
		return session, res, err
	}

	return session, res, nil
}
