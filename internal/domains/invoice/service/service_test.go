package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel/mocks"
	invoiceMocks "github.com/gabrielgilbord/Frantana-Booking/internal/domains/invoice/mocks"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/invoice/model"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/invoice/service"
	cacheMocks "github.com/gabrielgilbord/Frantana-Booking/shared/cache/mocks"
	gDto "github.com/gabrielgilbord/Frantana-Booking/shared/dto"
	"github.com/gabrielgilbord/Frantana-Booking/shared/failure"
	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"

	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/invoice/model/dto"
)

func newService(t *testing.T) (service.Invoice, *invoiceMocks.MockInvoice, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := invoiceMocks.NewMockInvoice(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestInvoiceService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateInvoiceRequest
		setupMock func(repo *invoiceMocks.MockInvoice, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "success",
			req: dto.CreateInvoiceRequest{
				InvoiceNumber: "INV-2025-001",
				Description:   "alquiler de sala",
				InvoiceMethod: "transferencia",
				InvoiceAmount: "350.00",
			},
			setupMock: func(repo *invoiceMocks.MockInvoice, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "duplicate invoice number",
			req: dto.CreateInvoiceRequest{
				InvoiceNumber: "INV-2025-001",
				Description:   "alquiler de sala",
				InvoiceMethod: "transferencia",
				InvoiceAmount: "350.00",
			},
			setupMock: func(repo *invoiceMocks.MockInvoice, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "zero amount is rejected before any write",
			req: dto.CreateInvoiceRequest{
				InvoiceNumber: "INV-2025-002",
				Description:   "alquiler de sala",
				InvoiceMethod: "efectivo",
				InvoiceAmount: "0",
			},
			setupMock: func(repo *invoiceMocks.MockInvoice, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "negative amount is rejected before any write",
			req: dto.CreateInvoiceRequest{
				InvoiceNumber: "INV-2025-003",
				Description:   "alquiler de sala",
				InvoiceMethod: "efectivo",
				InvoiceAmount: "-10.50",
			},
			setupMock: func(repo *invoiceMocks.MockInvoice, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "unparseable amount",
			req: dto.CreateInvoiceRequest{
				InvoiceNumber: "INV-2025-004",
				Description:   "alquiler de sala",
				InvoiceMethod: "efectivo",
				InvoiceAmount: "diez",
			},
			setupMock: func(repo *invoiceMocks.MockInvoice, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
			wantCode:  400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInvoiceService_Get(t *testing.T) {
	t.Run("unknown invoice", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Invoice{}, nil)

		_, err := svc.Get(context.Background(), "inv-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Invoice{
			ID:            "inv-1",
			InvoiceNumber: "INV-2025-001",
			Description:   "alquiler de sala",
			InvoiceMethod: "transferencia",
			InvoiceAmount: decimal.NewFromFloat(350),
			InvoiceDate:   timezone.Today(),
		}, nil)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Get(context.Background(), "inv-1")

		assert.NoError(t, err)
		assert.Equal(t, "INV-2025-001", res.InvoiceNumber)
		assert.Equal(t, "350", res.InvoiceAmount)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestInvoiceService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Invoice{
			{
				ID:            "inv-1",
				InvoiceNumber: "INV-2025-001",
				InvoiceAmount: decimal.NewFromFloat(99.95),
				InvoiceDate:   timezone.Today(),
			},
		}, nil)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "99.95", res.Invoices[0].InvoiceAmount)

	time.Sleep(10 * time.Millisecond)
}

func TestInvoiceService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Delete(context.Background(), "inv-1")

		assert.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	})

	t.Run("unknown invoice", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "inv-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
