package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel/mocks"
	cacheMocks "github.com/gabrielgilbord/Frantana-Booking/shared/cache/mocks"
	slotMocks "github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/mocks"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/model"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/service"

	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/model/dto"
	gDto "github.com/gabrielgilbord/Frantana-Booking/shared/dto"
	"github.com/gabrielgilbord/Frantana-Booking/shared/failure"
)

func gDtoParams() gDto.QueryParams {
	return gDto.QueryParams{Page: 1, Limit: 10}
}

func newService(t *testing.T) (service.Slot, *slotMocks.MockSlot, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := slotMocks.NewMockSlot(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestSlotService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateSlotRequest
		setupMock func(repo *slotMocks.MockSlot, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "valid slot",
			req: dto.CreateSlotRequest{
				Date:      "2025-07-01",
				StartTime: "18:00:00",
				EndTime:   "20:00:00",
				EventName: "Boda de Ana",
			},
			setupMock: func(repo *slotMocks.MockSlot, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "end before start is rejected before any write",
			req: dto.CreateSlotRequest{
				Date:      "2025-07-01",
				StartTime: "20:00:00",
				EndTime:   "18:00:00",
				EventName: "Boda de Ana",
			},
			setupMock: func(repo *slotMocks.MockSlot, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
		},
		{
			name: "end equal to start is rejected",
			req: dto.CreateSlotRequest{
				Date:      "2025-07-01",
				StartTime: "18:00:00",
				EndTime:   "18:00:00",
				EventName: "Boda de Ana",
			},
			setupMock: func(repo *slotMocks.MockSlot, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
		},
		{
			name: "invoiced on creation requires a positive amount",
			req: dto.CreateSlotRequest{
				Date:          "2025-07-01",
				StartTime:     "18:00:00",
				EndTime:       "20:00:00",
				EventName:     "Boda de Ana",
				IsInvoiced:    true,
				InvoiceMethod: "transfer",
				InvoiceAmount: "0",
			},
			setupMock: func(repo *slotMocks.MockSlot, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
		},
		{
			name: "insert error surfaces",
			req: dto.CreateSlotRequest{
				Date:      "2025-07-01",
				StartTime: "18:00:00",
				EndTime:   "20:00:00",
				EventName: "Boda de Ana",
			},
			setupMock: func(repo *slotMocks.MockSlot, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlotService_Update_InvoicedIsClosed(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	invoiced := model.Slot{
		ID:         "slot-1",
		Date:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  "18:00:00",
		EndTime:    "20:00:00",
		EventName:  "Boda de Ana",
		IsInvoiced: true,
	}

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(invoiced, nil)

	err := svc.Update(context.Background(), dto.UpdateSlotRequest{EventName: "Otro"}, "slot-1")

	assert.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestSlotService_Delete_InvoicedIsClosed(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	invoiced := model.Slot{
		ID:         "slot-1",
		IsInvoiced: true,
		StartTime:  "18:00:00",
		EndTime:    "20:00:00",
	}

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(invoiced, nil)

	err := svc.Delete(context.Background(), "slot-1")

	assert.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestSlotService_Delete(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	open := model.Slot{
		ID:        "slot-1",
		StartTime: "18:00:00",
		EndTime:   "20:00:00",
	}

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(open, nil)
	mockRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	err := svc.Delete(context.Background(), "slot-1")

	assert.NoError(t, err)
}

func TestSlotService_MarkInvoiced(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.MarkInvoicedRequest
		setupMock func(repo *slotMocks.MockSlot, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "valid invoice",
			req: dto.MarkInvoicedRequest{
				InvoiceMethod: "transfer",
				InvoiceAmount: "1500.50",
			},
			setupMock: func(repo *slotMocks.MockSlot, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "empty method rejected before any write",
			req: dto.MarkInvoicedRequest{
				InvoiceMethod: "",
				InvoiceAmount: "1500.50",
			},
			setupMock: func(repo *slotMocks.MockSlot, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
		},
		{
			name: "zero amount rejected before any write",
			req: dto.MarkInvoicedRequest{
				InvoiceMethod: "transfer",
				InvoiceAmount: "0",
			},
			setupMock: func(repo *slotMocks.MockSlot, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
		},
		{
			name: "negative amount rejected before any write",
			req: dto.MarkInvoicedRequest{
				InvoiceMethod: "transfer",
				InvoiceAmount: "-10",
			},
			setupMock: func(repo *slotMocks.MockSlot, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
		},
		{
			name: "unknown slot",
			req: dto.MarkInvoicedRequest{
				InvoiceMethod: "transfer",
				InvoiceAmount: "1500.50",
			},
			setupMock: func(repo *slotMocks.MockSlot, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.MarkInvoiced(context.Background(), "slot-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlotService_GetAll_InvalidWhen(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.GetAll(context.Background(), gDtoParams(), "yesterday")

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}
