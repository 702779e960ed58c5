package notifier_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	mailerMocks "github.com/gabrielgilbord/Frantana-Booking/infras/mailer/mocks"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel/mocks"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/model"
	"github.com/gabrielgilbord/Frantana-Booking/internal/notifier"
)

func newNotifier(t *testing.T, cfg *config.Config) (notifier.Notifier, *mailerMocks.MockMailer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockMailer := mailerMocks.NewMockMailer(ctrl)

	return notifier.New(mockMailer, cfg, mocks.NewOtel()), mockMailer
}

func testBooking() model.Booking {
	location := "Finca Frantana"

	return model.Booking{
		ID:            "bk-1",
		ClientName:    "Ana García",
		ClientEmail:   "ana@example.com",
		EventDate:     time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		EventTime:     "18:00:00",
		EventType:     "boda",
		EventName:     "Boda de Ana",
		EventLocation: &location,
		Status:        model.StatusPending,
	}
}

func TestNotifier_BookingReceived(t *testing.T) {
	t.Run("notifies configured recipients", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Booking.NotifyRecipients = []string{"admin@frantana.com"}

		n, mockMailer := newNotifier(t, cfg)

		mockMailer.EXPECT().
			Send(gomock.Any(), []string{"admin@frantana.com"}, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ []string, subject, textBody, htmlBody string) error {
				assert.Contains(t, subject, "Boda de Ana")
				assert.Contains(t, textBody, "ana@example.com")
				assert.Contains(t, htmlBody, "<br>")
				return nil
			})

		err := n.BookingReceived(context.Background(), testBooking())

		assert.NoError(t, err)
	})

	t.Run("no recipients configured skips delivery", func(t *testing.T) {
		n, _ := newNotifier(t, &config.Config{})

		err := n.BookingReceived(context.Background(), testBooking())

		assert.NoError(t, err)
	})
}

func TestNotifier_BookingApproved(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.BaseURL = "https://frantana.com/"

	n, mockMailer := newNotifier(t, cfg)

	mockMailer.EXPECT().
		Send(gomock.Any(), []string{"ana@example.com"}, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []string, subject, textBody, _ string) error {
			assert.Contains(t, subject, "confirmada")
			assert.Contains(t, textBody, "https://frantana.com/v1/calendar-event?")
			assert.Contains(t, textBody, "date=2025-06-14")
			return nil
		})

	err := n.BookingApproved(context.Background(), testBooking())

	assert.NoError(t, err)
}

func TestNotifier_BookingRejected(t *testing.T) {
	reason := "fecha no disponible"
	booking := testBooking()
	booking.Notes = &reason

	n, mockMailer := newNotifier(t, &config.Config{})

	mockMailer.EXPECT().
		Send(gomock.Any(), []string{"ana@example.com"}, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []string, _, textBody, _ string) error {
			assert.Contains(t, textBody, "fecha no disponible")
			return nil
		})

	err := n.BookingRejected(context.Background(), booking)

	assert.NoError(t, err)
}
