package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel/mocks"
	availDto "github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/model/dto"
	availServiceMocks "github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/service/mocks"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/flow"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/model/dto"
	bookingServiceMocks "github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/service/mocks"
	cacheMocks "github.com/gabrielgilbord/Frantana-Booking/shared/cache/mocks"
	"github.com/gabrielgilbord/Frantana-Booking/shared/failure"
)

type fixture struct {
	flow         flow.Flow
	bookings     *bookingServiceMocks.MockBooking
	availability *availServiceMocks.MockAvailability
	cache        *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockBookings := bookingServiceMocks.NewMockBooking(ctrl)
	mockAvailability := availServiceMocks.NewMockAvailability(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Booking.FlowTTLSeconds = 1800

	return fixture{
		flow:         flow.New(mockBookings, mockAvailability, cfg, mockCache, mocks.NewOtel()),
		bookings:     mockBookings,
		availability: mockAvailability,
		cache:        mockCache,
	}
}

// expectLoad makes the next cache read return the given session.
func (f fixture) expectLoad(session flow.Session) {
	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, target any) error {
			*(target.(*flow.Session)) = session
			return nil
		})
}

func TestFlow_Start(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 1800).
		Return(nil)

	session, err := f.flow.Start(context.Background())

	assert.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, flow.StepSelectEventType, session.Step)
}

func TestFlow_HappyPath(t *testing.T) {
	f := newFixture(t)

	session := flow.Session{ID: "sess-1", Step: flow.StepSelectEventType}

	// Event type
	f.expectLoad(session)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	session, err := f.flow.SelectEventType(context.Background(), "sess-1", "boda")
	assert.NoError(t, err)
	assert.Equal(t, flow.StepSelectDate, session.Step)
	assert.Equal(t, "boda", session.EventType)

	// Date
	f.expectLoad(session)
	f.availability.EXPECT().
		Check(gomock.Any(), "2025-12-20").
		Return(availDto.DayReport{Date: "2025-12-20", Selectable: true}, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	session, err = f.flow.SelectDate(context.Background(), "sess-1", "2025-12-20")
	assert.NoError(t, err)
	assert.Equal(t, flow.StepSelectTime, session.Step)
	assert.Equal(t, "2025-12-20", session.EventDate)

	// Time
	f.expectLoad(session)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	session, err = f.flow.SelectTime(context.Background(), "sess-1", "18:00:00")
	assert.NoError(t, err)
	assert.Equal(t, flow.StepEnterDetails, session.Step)

	// Details
	f.expectLoad(session)
	f.bookings.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
			assert.Equal(t, "boda", req.EventType)
			assert.Equal(t, "2025-12-20", req.EventDate)
			assert.Equal(t, "18:00:00", req.EventTime)
			return dto.BookingResponse{ID: "bk-1", Status: "pending"}, nil
		})
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	session, res, err := f.flow.Submit(context.Background(), "sess-1", flow.DetailsRequest{
		ClientName:  "Ana García",
		ClientEmail: "ana@example.com",
		EventName:   "Boda de Ana",
	})

	assert.NoError(t, err)
	assert.Equal(t, flow.StepConfirmed, session.Step)
	assert.Equal(t, "bk-1", session.BookingID)
	assert.Equal(t, "bk-1", res.ID)
}

func TestFlow_SelectDate(t *testing.T) {
	t.Run("unavailable date is refused", func(t *testing.T) {
		f := newFixture(t)

		f.expectLoad(flow.Session{ID: "sess-1", Step: flow.StepSelectDate, EventType: "boda"})
		f.availability.EXPECT().
			Check(gomock.Any(), "2025-12-24").
			Return(availDto.DayReport{Date: "2025-12-24", Selectable: false, WholeDayBlackout: true}, nil)

		_, err := f.flow.SelectDate(context.Background(), "sess-1", "2025-12-24")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("wrong step", func(t *testing.T) {
		f := newFixture(t)

		f.expectLoad(flow.Session{ID: "sess-1", Step: flow.StepSelectEventType})

		_, err := f.flow.SelectDate(context.Background(), "sess-1", "2025-12-20")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestFlow_Back(t *testing.T) {
	t.Run("keeps earlier selections", func(t *testing.T) {
		f := newFixture(t)

		f.expectLoad(flow.Session{
			ID:        "sess-1",
			Step:      flow.StepEnterDetails,
			EventType: "boda",
			EventDate: "2025-12-20",
			EventTime: "18:00:00",
		})
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		session, err := f.flow.Back(context.Background(), "sess-1")

		assert.NoError(t, err)
		assert.Equal(t, flow.StepSelectTime, session.Step)
		assert.Equal(t, "boda", session.EventType)
		assert.Equal(t, "2025-12-20", session.EventDate)
		assert.Equal(t, "18:00:00", session.EventTime)
	})

	t.Run("cannot go back from the first step", func(t *testing.T) {
		f := newFixture(t)

		f.expectLoad(flow.Session{ID: "sess-1", Step: flow.StepSelectEventType})

		_, err := f.flow.Back(context.Background(), "sess-1")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("cannot change a confirmed reservation", func(t *testing.T) {
		f := newFixture(t)

		f.expectLoad(flow.Session{ID: "sess-1", Step: flow.StepConfirmed, BookingID: "bk-1"})

		_, err := f.flow.Back(context.Background(), "sess-1")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestFlow_Submit(t *testing.T) {
	t.Run("a failed submit keeps the session at the details step", func(t *testing.T) {
		f := newFixture(t)

		session := flow.Session{
			ID:        "sess-1",
			Step:      flow.StepEnterDetails,
			EventType: "boda",
			EventDate: "2025-12-20",
			EventTime: "18:00:00",
		}

		f.expectLoad(session)
		f.bookings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.BookingResponse{}, assert.AnError)

		got, _, err := f.flow.Submit(context.Background(), "sess-1", flow.DetailsRequest{
			ClientName:  "Ana García",
			ClientEmail: "ana@example.com",
			EventName:   "Boda de Ana",
		})

		assert.Error(t, err)
		assert.Equal(t, flow.StepEnterDetails, got.Step)
	})
}
