package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/model"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/model/dto"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/repository"
	slotModel "github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/model"
	slotRepo "github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/repository"
	"github.com/gabrielgilbord/Frantana-Booking/shared"
	"github.com/gabrielgilbord/Frantana-Booking/shared/cache"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	gDto "github.com/gabrielgilbord/Frantana-Booking/shared/dto"
	"github.com/gabrielgilbord/Frantana-Booking/shared/failure"
	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"
)

// Day reports are never cached: slot mutations would not invalidate them, so
// Check always reads the store.
const cacheGetAllAvailability = "availability:gets"

type Availability interface {
	Check(ctx context.Context, date string) (dto.DayReport, error)
	MarkUnavailable(ctx context.Context, req dto.MarkUnavailableRequest) error
	MarkRangeUnavailable(ctx context.Context, req dto.MarkRangeUnavailableRequest) error
	Remove(ctx context.Context, date string) error
	GetAll(ctx context.Context) (dto.GetAvailabilityResponse, error)
}

type serviceImpl struct {
	repo     repository.Availability
	slotRepo slotRepo.Slot
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Availability, slotRepo slotRepo.Slot, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		repo:     repo,
		slotRepo: slotRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func filterByDate(date time.Time, field, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    timezone.Format(date, constant.DateOnlyFormat),
				Table:    table,
			},
		},
	}
}

// validateBlackoutWindow enforces the partial-blackout rules: either both
// times or neither, and the window must end after it starts.
func validateBlackoutWindow(startTime, endTime string) error {
	if (startTime == constant.Empty) != (endTime == constant.Empty) {
		return failure.BadRequestFromString("start time and end time must be provided together") // nolint:wrapcheck
	}

	if startTime == constant.Empty {
		return nil
	}

	start, err := timezone.MinutesOfDay(startTime)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid start time: %v", err)) // nolint:wrapcheck
	}

	end, err := timezone.MinutesOfDay(endTime)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid end time: %v", err)) // nolint:wrapcheck
	}

	if end <= start {
		return failure.BadRequestFromString("end time must be after start time") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Check(ctx context.Context, date string) (res dto.DayReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := timezone.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date: %v", err)) // nolint:wrapcheck
	}

	res.Date = timezone.Format(day, constant.DateOnlyFormat)
	res.PartialWindows = []dto.TimeWindow{}
	res.OccupiedSlots = []dto.TimeWindow{}

	blackout, err := s.repo.Get(ctx, filterByDate(day, model.FieldDate, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get blackout")

		return res, fmt.Errorf("failed to get blackout: %w", err)
	}

	if blackout.ID != constant.Empty {
		if blackout.WholeDay() {
			res.WholeDayBlackout = true
		} else {
			window := dto.TimeWindow{}
			if blackout.StartTime != nil {
				window.StartTime = *blackout.StartTime
			}
			if blackout.EndTime != nil {
				window.EndTime = *blackout.EndTime
			}
			if blackout.Notes != nil {
				window.Notes = *blackout.Notes
			}

			res.PartialWindows = append(res.PartialWindows, window)
		}
	}

	// Occupied slots never block selection, they only inform the visitor.
	slots, err := s.slotRepo.GetAll(ctx, gDto.QueryParams{}, filterByDate(day, slotModel.FieldDate, slotModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupied slots")

		return res, fmt.Errorf("failed to get occupied slots: %w", err)
	}

	for _, slot := range slots {
		res.OccupiedSlots = append(res.OccupiedSlots, dto.TimeWindow{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			EventName: slot.EventName,
		})
	}

	res.Selectable = !res.WholeDayBlackout && !day.Before(timezone.Today())

	return res, nil
}

func (s *serviceImpl) MarkUnavailable(ctx context.Context, req dto.MarkUnavailableRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkUnavailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	if err = validateBlackoutWindow(req.StartTime, req.EndTime); err != nil {
		return err
	}

	day, err := timezone.Parse(constant.DateOnlyFormat, req.Date)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid date: %v", err)) // nolint:wrapcheck
	}

	if err = s.upsertBlackout(ctx, req, day, username); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAvailability)
	}()

	return nil
}

func (s *serviceImpl) MarkRangeUnavailable(ctx context.Context, req dto.MarkRangeUnavailableRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRangeUnavailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	if err = validateBlackoutWindow(req.StartTime, req.EndTime); err != nil {
		return err
	}

	start, err := timezone.Parse(constant.DateOnlyFormat, req.StartDate)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid start date: %v", err)) // nolint:wrapcheck
	}

	end, err := timezone.Parse(constant.DateOnlyFormat, req.EndDate)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid end date: %v", err)) // nolint:wrapcheck
	}

	if end.Before(start) {
		return failure.BadRequestFromString("end date must not be before start date") // nolint:wrapcheck
	}

	// One blackout row per calendar day, inclusive on both ends.
	single := dto.MarkUnavailableRequest{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err = s.upsertBlackout(ctx, single, day, username); err != nil {
			return err
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAvailability)
	}()

	return nil
}

func (s *serviceImpl) upsertBlackout(ctx context.Context, req dto.MarkUnavailableRequest, day time.Time, username string) error {
	blackout := req.ToModel(day, username)

	err := s.repo.Upsert(ctx, blackout,
		[]string{model.FieldDate},
		[]string{
			model.FieldIsAvailable,
			model.FieldStartTime,
			model.FieldEndTime,
			model.FieldNotes,
			constant.FieldModifiedAt,
			constant.FieldModifiedBy,
		},
	)
	if err != nil {
		log.Error().Err(err).Str("date", timezone.Format(day, constant.DateOnlyFormat)).Msg("failed to upsert blackout")

		return fmt.Errorf("failed to upsert blackout: %w", err)
	}

	return nil
}

func (s *serviceImpl) Remove(ctx context.Context, date string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := timezone.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid date: %v", err)) // nolint:wrapcheck
	}

	filter := filterByDate(day, model.FieldDate, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if blackout exists")

		return fmt.Errorf("failed to check if blackout exists: %w", err)
	}

	if !exist {
		return failure.NotFound("blackout not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to remove blackout")

		return fmt.Errorf("failed to remove blackout: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAvailability)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := timezone.Format(timezone.Today(), constant.DateOnlyFormat)
	cacheKey := shared.BuildCacheKey(cacheGetAllAvailability, today)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for blackouts")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsAvailable,
				Operator: gDto.FilterOperatorEq,
				Value:    false,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    today,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldDate,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blackouts")

		return res, fmt.Errorf("failed to get blackouts: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blackouts to cache")
		}
	}()

	return res, nil
}
