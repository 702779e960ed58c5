package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel/mocks"
	availMocks "github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/mocks"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/model"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/model/dto"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/service"
	slotMocks "github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/mocks"
	slotModel "github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/model"
	cacheMocks "github.com/gabrielgilbord/Frantana-Booking/shared/cache/mocks"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	"github.com/gabrielgilbord/Frantana-Booking/shared/failure"
	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"
)

func strPtr(s string) *string {
	return &s
}

func newService(t *testing.T) (service.Availability, *availMocks.MockAvailability, *slotMocks.MockSlot, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := availMocks.NewMockAvailability(ctrl)
	mockSlotRepo := slotMocks.NewMockSlot(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockSlotRepo, &config.Config{}, mockCache, mockOtel)

	return svc, mockRepo, mockSlotRepo, mockCache
}

func TestAvailabilityService_MarkUnavailable(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.MarkUnavailableRequest
		setupMock func(repo *availMocks.MockAvailability, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "whole day blackout",
			req: dto.MarkUnavailableRequest{
				Date:  "2025-12-24",
				Notes: "cerrado por navidad",
			},
			setupMock: func(repo *availMocks.MockAvailability, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "partial blackout with valid window",
			req: dto.MarkUnavailableRequest{
				Date:      "2025-12-24",
				StartTime: "10:00:00",
				EndTime:   "14:00:00",
			},
			setupMock: func(repo *availMocks.MockAvailability, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "start time without end time is rejected before any write",
			req: dto.MarkUnavailableRequest{
				Date:      "2025-12-24",
				StartTime: "10:00:00",
			},
			setupMock: func(repo *availMocks.MockAvailability, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
		},
		{
			name: "end before start is rejected before any write",
			req: dto.MarkUnavailableRequest{
				Date:      "2025-12-24",
				StartTime: "14:00:00",
				EndTime:   "10:00:00",
			},
			setupMock: func(repo *availMocks.MockAvailability, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
		},
		{
			name: "end equal to start is rejected",
			req: dto.MarkUnavailableRequest{
				Date:      "2025-12-24",
				StartTime: "10:00:00",
				EndTime:   "10:00:00",
			},
			setupMock: func(repo *availMocks.MockAvailability, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
		},
		{
			name: "invalid date",
			req: dto.MarkUnavailableRequest{
				Date: "24-12-2025",
			},
			setupMock: func(repo *availMocks.MockAvailability, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.MarkUnavailable(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("invalidates only the blackout list cache", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		mockCache.EXPECT().Clear(gomock.Any(), "availability:gets*").Return(nil).AnyTimes()

		err := svc.MarkUnavailable(context.Background(), dto.MarkUnavailableRequest{Date: "2025-12-24"})

		assert.NoError(t, err)

		// Give the async invalidation a moment so a Clear with any other
		// prefix would trip the mock before the controller finishes.
		time.Sleep(10 * time.Millisecond)
	})
}

func TestAvailabilityService_MarkRangeUnavailable(t *testing.T) {
	t.Run("expands to one upsert per day inclusive", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		// 2025-12-24 .. 2025-12-26 = 3 days
		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(3)
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.MarkRangeUnavailable(context.Background(), dto.MarkRangeUnavailableRequest{
			StartDate: "2025-12-24",
			EndDate:   "2025-12-26",
			Notes:     "vacaciones",
		})

		assert.NoError(t, err)
	})

	t.Run("single day range upserts once", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.MarkRangeUnavailable(context.Background(), dto.MarkRangeUnavailableRequest{
			StartDate: "2025-12-24",
			EndDate:   "2025-12-24",
		})

		assert.NoError(t, err)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		svc, _, _, _ := newService(t)

		err := svc.MarkRangeUnavailable(context.Background(), dto.MarkRangeUnavailableRequest{
			StartDate: "2025-12-26",
			EndDate:   "2025-12-24",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestAvailabilityService_Check(t *testing.T) {
	future := timezone.Today().AddDate(0, 0, 7)
	futureStr := timezone.Format(future, constant.DateOnlyFormat)

	t.Run("whole day blackout makes the day unselectable", func(t *testing.T) {
		svc, mockRepo, mockSlotRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Availability{
				ID:          "blk-1",
				Date:        future,
				IsAvailable: false,
			}, nil)
		mockSlotRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		report, err := svc.Check(context.Background(), futureStr)

		assert.NoError(t, err)
		assert.True(t, report.WholeDayBlackout)
		assert.False(t, report.Selectable)
	})

	t.Run("partial blackout keeps the day selectable", func(t *testing.T) {
		svc, mockRepo, mockSlotRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Availability{
				ID:          "blk-1",
				Date:        future,
				IsAvailable: false,
				StartTime:   strPtr("10:00:00"),
				EndTime:     strPtr("14:00:00"),
			}, nil)
		mockSlotRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		report, err := svc.Check(context.Background(), futureStr)

		assert.NoError(t, err)
		assert.False(t, report.WholeDayBlackout)
		assert.True(t, report.Selectable)
		assert.Len(t, report.PartialWindows, 1)
		assert.Equal(t, "10:00:00", report.PartialWindows[0].StartTime)
	})

	t.Run("occupied slots are informational only", func(t *testing.T) {
		svc, mockRepo, mockSlotRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Availability{}, nil)
		mockSlotRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]slotModel.Slot{
				{
					ID:        "slot-1",
					Date:      future,
					StartTime: "18:00:00",
					EndTime:   "20:00:00",
					EventName: "Boda de Ana",
				},
			}, nil)

		report, err := svc.Check(context.Background(), futureStr)

		assert.NoError(t, err)
		assert.True(t, report.Selectable)
		assert.Len(t, report.OccupiedSlots, 1)
		assert.Equal(t, "Boda de Ana", report.OccupiedSlots[0].EventName)
	})

	t.Run("past date is unselectable even without blackout", func(t *testing.T) {
		svc, mockRepo, mockSlotRepo, _ := newService(t)

		past := timezone.Today().AddDate(0, 0, -1)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Availability{}, nil)
		mockSlotRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		report, err := svc.Check(context.Background(), timezone.Format(past, constant.DateOnlyFormat))

		assert.NoError(t, err)
		assert.False(t, report.Selectable)
		assert.False(t, report.WholeDayBlackout)
	})
}

func TestAvailabilityService_Remove(t *testing.T) {
	t.Run("removing a blackout makes the date available again", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Remove(context.Background(), "2025-12-24")

		assert.NoError(t, err)
	})

	t.Run("unknown blackout", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Remove(context.Background(), "2025-12-24")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestAvailabilityService_GetAll(t *testing.T) {
	svc, mockRepo, _, mockCache := newService(t)

	future := timezone.Today().AddDate(0, 0, 3)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Availability{
			{
				ID:          "blk-1",
				Date:        future,
				IsAvailable: false,
				Notes:       strPtr("mantenimiento"),
			},
		}, nil)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.False(t, res.Blackouts[0].IsAvailable)
	assert.Equal(t, "mantenimiento", res.Blackouts[0].Notes)

	// Give the async cache save a moment so the mock expectation is met.
	time.Sleep(10 * time.Millisecond)
}
