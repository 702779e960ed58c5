package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel/mocks"
	bookingMocks "github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/mocks"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/model"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/model/dto"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/service"
	slotMocks "github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/mocks"
	slotModel "github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/model"
	notifierMocks "github.com/gabrielgilbord/Frantana-Booking/internal/notifier/mocks"
	cacheMocks "github.com/gabrielgilbord/Frantana-Booking/shared/cache/mocks"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	gDto "github.com/gabrielgilbord/Frantana-Booking/shared/dto"
	"github.com/gabrielgilbord/Frantana-Booking/shared/failure"
	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"
)

type fixture struct {
	svc      service.Booking
	repo     *bookingMocks.MockBooking
	slotRepo *slotMocks.MockSlot
	notifier *notifierMocks.MockNotifier
	cache    *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockSlotRepo := slotMocks.NewMockSlot(ctrl)
	mockNotifier := notifierMocks.NewMockNotifier(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Booking.EventDurationMinutes = 120

	return fixture{
		svc:      service.New(mockRepo, mockSlotRepo, mockNotifier, cfg, mockCache, mocks.NewOtel()),
		repo:     mockRepo,
		slotRepo: mockSlotRepo,
		notifier: mockNotifier,
		cache:    mockCache,
	}
}

func (f fixture) allowAsyncSideEffects() {
	f.notifier.EXPECT().BookingReceived(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.notifier.EXPECT().BookingApproved(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.notifier.EXPECT().BookingRejected(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func pendingBooking(id string) model.Booking {
	return model.Booking{
		ID:          id,
		ClientName:  "Ana García",
		ClientEmail: "ana@example.com",
		EventDate:   timezone.Today().AddDate(0, 0, 14),
		EventTime:   "18:00:00",
		EventType:   "boda",
		EventName:   "Boda de Ana",
		Status:      model.StatusPending,
	}
}

func TestBookingService_Create(t *testing.T) {
	futureDate := timezone.Format(timezone.Today().AddDate(0, 0, 14), constant.DateOnlyFormat)

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.allowAsyncSideEffects()

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, model.StatusPending, booking.Status)
				assert.NotEmpty(t, booking.ID)
				// HH:MM input is stored with seconds.
				assert.Equal(t, "18:00:00", booking.EventTime)
				return nil
			})

		res, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{
			ClientName:  "Ana García",
			ClientEmail: "ana@example.com",
			EventDate:   futureDate,
			EventTime:   "18:00",
			EventType:   "boda",
			EventName:   "Boda de Ana",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("past event date is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{
			ClientName:  "Ana García",
			ClientEmail: "ana@example.com",
			EventDate:   "2020-01-01",
			EventTime:   "18:00",
			EventType:   "boda",
			EventName:   "Boda de Ana",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unparseable event time is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{
			ClientName:  "Ana García",
			ClientEmail: "ana@example.com",
			EventDate:   futureDate,
			EventTime:   "six pm",
			EventType:   "boda",
			EventName:   "Boda de Ana",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Approve(t *testing.T) {
	t.Run("approving occupies a two hour slot", func(t *testing.T) {
		f := newFixture(t)
		f.allowAsyncSideEffects()

		booking := pendingBooking("bk-1")

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusApproved, fields[model.FieldStatus])
				return nil
			})
		f.slotRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.slotRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, slot slotModel.Slot) error {
				assert.Equal(t, "18:00:00", slot.StartTime)
				assert.Equal(t, "20:00:00", slot.EndTime)
				assert.Equal(t, "Boda de Ana", slot.EventName)
				return nil
			})

		res, err := f.svc.Approve(context.Background(), "bk-1", dto.ReviewBookingRequest{})

		assert.NoError(t, err)
		assert.Equal(t, model.StatusApproved, res.Status)
		assert.True(t, res.SlotCreated)
		assert.Empty(t, res.Warning)
		time.Sleep(10 * time.Millisecond)
	})

	t.Run("late events are clamped to the end of the day", func(t *testing.T) {
		f := newFixture(t)
		f.allowAsyncSideEffects()

		booking := pendingBooking("bk-1")
		booking.EventTime = "23:00:00"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.slotRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.slotRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, slot slotModel.Slot) error {
				assert.Equal(t, "23:00:00", slot.StartTime)
				assert.Equal(t, "23:59:00", slot.EndTime)
				return nil
			})

		_, err := f.svc.Approve(context.Background(), "bk-1", dto.ReviewBookingRequest{})

		assert.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	})

	t.Run("an identical slot is not duplicated", func(t *testing.T) {
		f := newFixture(t)
		f.allowAsyncSideEffects()

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking("bk-1"), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.slotRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		res, err := f.svc.Approve(context.Background(), "bk-1", dto.ReviewBookingRequest{})

		assert.NoError(t, err)
		assert.True(t, res.SlotCreated)
		time.Sleep(10 * time.Millisecond)
	})

	t.Run("a failed slot insert keeps the approval and warns the admin", func(t *testing.T) {
		f := newFixture(t)
		f.allowAsyncSideEffects()

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking("bk-1"), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.slotRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.slotRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(assert.AnError)

		res, err := f.svc.Approve(context.Background(), "bk-1", dto.ReviewBookingRequest{})

		assert.NoError(t, err)
		assert.Equal(t, model.StatusApproved, res.Status)
		assert.False(t, res.SlotCreated)
		assert.Contains(t, res.Warning, "promote")
		time.Sleep(10 * time.Millisecond)
	})

	t.Run("already reviewed booking", func(t *testing.T) {
		f := newFixture(t)

		booking := pendingBooking("bk-1")
		booking.Status = model.StatusApproved

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		_, err := f.svc.Approve(context.Background(), "bk-1", dto.ReviewBookingRequest{})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Approve(context.Background(), "bk-404", dto.ReviewBookingRequest{})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Reject(t *testing.T) {
	t.Run("success with notes", func(t *testing.T) {
		f := newFixture(t)
		f.allowAsyncSideEffects()

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking("bk-1"), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusRejected, fields[model.FieldStatus])
				assert.Equal(t, "fecha no disponible", fields[model.FieldNotes])
				return nil
			})

		err := f.svc.Reject(context.Background(), "bk-1", dto.ReviewBookingRequest{Notes: "fecha no disponible"})

		assert.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	})

	t.Run("already reviewed booking", func(t *testing.T) {
		f := newFixture(t)

		booking := pendingBooking("bk-1")
		booking.Status = model.StatusRejected

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		err := f.svc.Reject(context.Background(), "bk-1", dto.ReviewBookingRequest{})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestBookingService_Promote(t *testing.T) {
	t.Run("creates the missing slot for an approved booking", func(t *testing.T) {
		f := newFixture(t)

		booking := pendingBooking("bk-1")
		booking.Status = model.StatusApproved

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.slotRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.slotRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Promote(context.Background(), "bk-1")

		assert.NoError(t, err)
	})

	t.Run("is idempotent when the slot already exists", func(t *testing.T) {
		f := newFixture(t)

		booking := pendingBooking("bk-1")
		booking.Status = model.StatusApproved

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.slotRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.svc.Promote(context.Background(), "bk-1")

		assert.NoError(t, err)
	})

	t.Run("pending booking cannot be promoted", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking("bk-1"), nil)

		err := f.svc.Promote(context.Background(), "bk-1")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestBookingService_GetAll(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "archived")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("filters by status", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{pendingBooking("bk-1")}, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, model.StatusPending)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, model.StatusPending, res.Bookings[0].Status)

		time.Sleep(10 * time.Millisecond)
	})
}
