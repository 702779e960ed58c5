package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/model"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/model/dto"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/repository"
	slotModel "github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/model"
	slotRepo "github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/repository"
	"github.com/gabrielgilbord/Frantana-Booking/internal/notifier"
	"github.com/gabrielgilbord/Frantana-Booking/shared"
	"github.com/gabrielgilbord/Frantana-Booking/shared/cache"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	gDto "github.com/gabrielgilbord/Frantana-Booking/shared/dto"
	"github.com/gabrielgilbord/Frantana-Booking/shared/failure"
	gModel "github.com/gabrielgilbord/Frantana-Booking/shared/model"
	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	// Approved events occupy the calendar until this time at the latest.
	endOfDay = "23:59:00"

	defaultEventDurationMinutes = 120
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, status string) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Approve(ctx context.Context, id string, req dto.ReviewBookingRequest) (dto.ApproveBookingResponse, error)
	Reject(ctx context.Context, id string, req dto.ReviewBookingRequest) error
	Promote(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	slotRepo slotRepo.Slot
	notifier notifier.Notifier
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Booking, slotRepo slotRepo.Slot, notifier notifier.Notifier, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		slotRepo: slotRepo,
		notifier: notifier,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = timezone.MinutesOfDay(req.EventTime); err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid event time: %v", err)) // nolint:wrapcheck
	}

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid booking request: %v", err)) // nolint:wrapcheck
	}

	if booking.EventDate.Before(timezone.Today()) {
		return res, failure.BadRequestFromString("event date must not be in the past") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	// Admin notification is best effort and never blocks the visitor.
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.BookingReceived(c, booking); err != nil {
			log.Warn().Err(err).Str("bookingID", booking.ID).Msg("failed to notify about new booking")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking, cacheCountBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

// statusFilter narrows bookings to a single review status. An empty value
// keeps everything.
func statusFilter(status string) (gDto.FilterGroup, error) {
	switch status {
	case constant.Empty:
		return gDto.FilterGroup{}, nil
	case model.StatusPending, model.StatusApproved, model.StatusRejected:
		return gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldStatus,
					Operator: gDto.FilterOperatorEq,
					Value:    status,
					Table:    model.TableName,
				},
			},
		}, nil
	default:
		return gDto.FilterGroup{}, failure.BadRequestFromString("status must be one of pending approved rejected") // nolint:wrapcheck
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, status string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter, err := statusFilter(status)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllBooking, status), req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getPending(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status != model.StatusPending {
		return booking, failure.Conflict(fmt.Sprintf("booking is already %s", booking.Status)) // nolint:wrapcheck
	}

	return booking, nil
}

// eventWindow computes the occupied window for a confirmed event. The end is
// the start plus the configured duration, clamped to the end of the day.
func (s *serviceImpl) eventWindow(eventTime string) (startTime, endTime string, err error) {
	start, err := timezone.MinutesOfDay(eventTime)
	if err != nil {
		return constant.Empty, constant.Empty, failure.BadRequestFromString(fmt.Sprintf("invalid event time: %v", err)) // nolint:wrapcheck
	}

	duration := s.cfg.Booking.EventDurationMinutes
	if duration <= 0 {
		duration = defaultEventDurationMinutes
	}

	end := start + duration
	if end >= 24*constant.MinutesPerHour {
		return formatMinutes(start), endOfDay, nil
	}

	return formatMinutes(start), formatMinutes(end), nil
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/constant.MinutesPerHour, minutes%constant.MinutesPerHour)
}

// occupySlot inserts the occupied slot for an approved booking unless an
// identical one already exists. Failures are reported, never fatal: the
// approval itself is already committed.
func (s *serviceImpl) occupySlot(ctx context.Context, booking model.Booking, username string) error {
	startTime, endTime, err := s.eventWindow(booking.EventTime)
	if err != nil {
		return err
	}

	exist, err := s.slotRepo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    slotModel.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    timezone.Format(booking.EventDate, constant.DateOnlyFormat),
				Table:    slotModel.TableName,
			},
			gDto.Filter{
				Field:    slotModel.FieldStartTime,
				Operator: gDto.FilterOperatorEq,
				Value:    startTime,
				Table:    slotModel.TableName,
			},
			gDto.Filter{
				Field:    slotModel.FieldEventName,
				Operator: gDto.FilterOperatorEq,
				Value:    booking.EventName,
				Table:    slotModel.TableName,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to check for an existing slot: %w", err)
	}

	if exist {
		log.Info().Str("bookingID", booking.ID).Msg("slot already occupied for booking")

		return nil
	}

	notes := fmt.Sprintf("Reserva de %s (%s)", booking.ClientName, booking.ClientEmail)

	slot := slotModel.Slot{
		ID:        uuid.NewString(),
		Date:      booking.EventDate,
		StartTime: startTime,
		EndTime:   endTime,
		EventName: booking.EventName,
		Notes:     &notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}

	if err = s.slotRepo.Insert(ctx, slot); err != nil {
		return fmt.Errorf("failed to insert slot: %w", err)
	}

	return nil
}

func (s *serviceImpl) Approve(ctx context.Context, id string, req dto.ReviewBookingRequest) (res dto.ApproveBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Approve")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	booking, err := s.getPending(ctx, id)
	if err != nil {
		return res, err
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusApproved,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}

	if req.Notes != constant.Empty {
		updatedFields[model.FieldNotes] = req.Notes
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to approve booking")

		return res, fmt.Errorf("failed to approve booking: %w", err)
	}

	booking.Status = model.StatusApproved

	res.ID = booking.ID
	res.Status = booking.Status
	res.SlotCreated = true

	// The approval is committed even if the slot cannot be created. The
	// warning tells the admin to reconcile the calendar through Promote.
	if slotErr := s.occupySlot(ctx, booking, username); slotErr != nil {
		log.Warn().Err(slotErr).Str("bookingID", id).Msg("approved booking without occupying its slot")

		res.SlotCreated = false
		res.Warning = fmt.Sprintf("booking approved but its slot was not created (%v); promote the booking to retry", slotErr)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.BookingApproved(c, booking); err != nil {
			log.Warn().Err(err).Str("bookingID", id).Msg("failed to send approval mail")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) Reject(ctx context.Context, id string, req dto.ReviewBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	booking, err := s.getPending(ctx, id)
	if err != nil {
		return err
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusRejected,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}

	if req.Notes != constant.Empty {
		updatedFields[model.FieldNotes] = req.Notes
		notes := req.Notes
		booking.Notes = &notes
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to reject booking")

		return fmt.Errorf("failed to reject booking: %w", err)
	}

	booking.Status = model.StatusRejected

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.BookingRejected(c, booking); err != nil {
			log.Warn().Err(err).Str("bookingID", id).Msg("failed to send rejection mail")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking, cacheCountBooking)
	}()

	return nil
}

// Promote creates the occupied slot for an already approved booking. It is
// the recovery path for approvals whose slot insert failed, and a no-op when
// the slot already exists.
func (s *serviceImpl) Promote(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Promote")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status != model.StatusApproved {
		return failure.Conflict("only approved bookings can be promoted") // nolint:wrapcheck
	}

	if err = s.occupySlot(ctx, booking, username); err != nil {
		log.Error().Err(err).Msg("failed to promote booking")

		return fmt.Errorf("failed to promote booking: %w", err)
	}

	return nil
}
