package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/model"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/model/dto"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/repository"
	"github.com/gabrielgilbord/Frantana-Booking/shared"
	"github.com/gabrielgilbord/Frantana-Booking/shared/cache"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	gDto "github.com/gabrielgilbord/Frantana-Booking/shared/dto"
	"github.com/gabrielgilbord/Frantana-Booking/shared/failure"
	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"
)

const (
	cacheGetSlot    = "slot:get"
	cacheGetAllSlot = "slot:gets"
	cacheCountSlot  = "slot:count"

	WhenFuture = "future"
	WhenPast   = "past"
)

type Slot interface {
	Create(ctx context.Context, req dto.CreateSlotRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, when string) (dto.GetSlotsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.SlotResponse, error)
	Update(ctx context.Context, req dto.UpdateSlotRequest, id string) error
	Delete(ctx context.Context, id string) error
	MarkInvoiced(ctx context.Context, id string, req dto.MarkInvoicedRequest) error
}

type serviceImpl struct {
	repo  repository.Slot
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Slot, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Slot {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// validateWindow rejects windows that do not end after they start. Times are
// compared as minutes since midnight.
func validateWindow(startTime, endTime string) error {
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

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSlotRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	if err = validateWindow(req.StartTime, req.EndTime); err != nil {
		return err
	}

	if req.IsInvoiced {
		if err = validateInvoiceFields(req.InvoiceMethod, req.InvoiceAmount); err != nil {
			return err
		}
	}

	slot, err := req.ToModel(username)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse slot request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid slot request: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, slot); err != nil {
		log.Error().Err(err).Msg("failed to create slot")

		return fmt.Errorf("failed to create slot: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSlot, cacheCountSlot)
	}()

	return nil
}

// whenFilter narrows slots to those on or after today (future) or strictly
// before today (past). An empty value keeps everything.
func whenFilter(when string) (gDto.FilterGroup, error) {
	today := timezone.Format(timezone.Today(), constant.DateOnlyFormat)

	switch when {
	case constant.Empty:
		return gDto.FilterGroup{}, nil
	case WhenFuture:
		return gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldDate,
					Operator: gDto.FilterOperatorGreaterEq,
					Value:    today,
					Table:    model.TableName,
				},
			},
		}, nil
	case WhenPast:
		return gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldDate,
					Operator: gDto.FilterOperatorLess,
					Value:    today,
					Table:    model.TableName,
				},
			},
		}, nil
	default:
		return gDto.FilterGroup{}, failure.BadRequestFromString("when must be one of future past") // nolint:wrapcheck
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, when string) (res dto.GetSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter, err := whenFilter(when)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllSlot, when), req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for slots")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count slots")

		return res, fmt.Errorf("failed to count slots: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get slots")

		return res, fmt.Errorf("failed to get slots: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save slots to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountSlot, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for slot count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count slots")

		return res, fmt.Errorf("failed to count slots: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save slot count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSlot, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for slot")

		return res, nil
	}

	slot, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get slot")

		return res, fmt.Errorf("failed to get slot: %w", err)
	}

	if slot.ID == constant.Empty {
		return res, failure.NotFound("slot not found") // nolint:wrapcheck
	}

	res.FromModel(slot)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save slot to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSlotRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateSlotRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	slot, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get slot")

		return fmt.Errorf("failed to get slot: %w", err)
	}

	if slot.ID == constant.Empty {
		return failure.NotFound("slot not found") // nolint:wrapcheck
	}

	// Invoiced slots are closed records.
	if slot.IsInvoiced {
		return failure.Conflict("slot is already invoiced") // nolint:wrapcheck
	}

	startTime := slot.StartTime
	if req.StartTime != "" {
		startTime = req.StartTime
	}

	endTime := slot.EndTime
	if req.EndTime != "" {
		endTime = req.EndTime
	}

	if err = validateWindow(startTime, endTime); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, username)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update slot")

		return fmt.Errorf("failed to update slot: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSlot, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete slot from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSlot, cacheCountSlot)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	slot, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get slot")

		return fmt.Errorf("failed to get slot: %w", err)
	}

	if slot.ID == constant.Empty {
		return failure.NotFound("slot not found") // nolint:wrapcheck
	}

	if slot.IsInvoiced {
		return failure.Conflict("slot is already invoiced") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete slot")

		return fmt.Errorf("failed to delete slot: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSlot, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete slot from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSlot, cacheCountSlot)
	}()

	return nil
}

func validateInvoiceFields(method, amount string) error {
	if method == constant.Empty {
		return failure.BadRequestFromString("invoice method is required") // nolint:wrapcheck
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid invoice amount: %v", err)) // nolint:wrapcheck
	}

	if !parsed.IsPositive() {
		return failure.BadRequestFromString("invoice amount must be greater than zero") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) MarkInvoiced(ctx context.Context, id string, req dto.MarkInvoicedRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkInvoiced")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	// All invoice fields are validated before anything is written.
	if err = validateInvoiceFields(req.InvoiceMethod, req.InvoiceAmount); err != nil {
		return err
	}

	amount, _ := decimal.NewFromString(req.InvoiceAmount)

	invoiceDate := timezone.Today()

	if req.InvoiceDate != constant.Empty {
		invoiceDate, err = timezone.Parse(constant.DateOnlyFormat, req.InvoiceDate)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid invoice date: %v", err)) // nolint:wrapcheck
		}
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if slot exists")

		return fmt.Errorf("failed to check if slot exists: %w", err)
	}

	if !exist {
		return failure.NotFound("slot not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldIsInvoiced:    true,
		model.FieldInvoiceMethod: req.InvoiceMethod,
		model.FieldInvoiceAmount: amount,
		model.FieldInvoiceDate:   invoiceDate,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}

	if req.InvoiceNotes != constant.Empty {
		updatedFields[model.FieldInvoiceNotes] = req.InvoiceNotes
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark slot invoiced")

		return fmt.Errorf("failed to mark slot invoiced: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSlot, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete slot from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSlot, cacheCountSlot)
	}()

	return nil
}
