package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/gabrielgilbord/Frantana-Booking/config"
	"github.com/gabrielgilbord/Frantana-Booking/infras/mailer"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel"
	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/model"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"
)

// Notifier sends booking lifecycle emails. Delivery is best effort: a failed
// notification never fails the operation that triggered it.
type Notifier interface {
	BookingReceived(ctx context.Context, booking model.Booking) error
	BookingApproved(ctx context.Context, booking model.Booking) error
	BookingRejected(ctx context.Context, booking model.Booking) error
}

type notifierImpl struct {
	mailer mailer.Mailer
	cfg    *config.Config
	otel   otel.Otel
}

func New(mailer mailer.Mailer, cfg *config.Config, otel otel.Otel) Notifier {
	return &notifierImpl{
		mailer: mailer,
		cfg:    cfg,
		otel:   otel,
	}
}

// htmlize converts a plain text body into a minimal HTML alternative.
func htmlize(text string) string {
	return strings.ReplaceAll(text, "\n", "<br>")
}

func (n *notifierImpl) BookingReceived(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelNotifierScopeName, constant.OtelNotifierScopeName+".BookingReceived")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(n.cfg.Booking.NotifyRecipients) == 0 {
		log.Warn().Msg("no notification recipients configured, skipping booking received mail")

		return nil
	}

	subject := fmt.Sprintf("Nueva solicitud de reserva: %s", booking.EventName)

	var sb strings.Builder

	sb.WriteString("Se ha recibido una nueva solicitud de reserva.\n\n")
	sb.WriteString(fmt.Sprintf("Cliente: %s\n", booking.ClientName))
	sb.WriteString(fmt.Sprintf("Email: %s\n", booking.ClientEmail))

	if booking.ClientPhone != nil {
		sb.WriteString(fmt.Sprintf("Teléfono: %s\n", *booking.ClientPhone))
	}

	sb.WriteString(fmt.Sprintf("Evento: %s (%s)\n", booking.EventName, booking.EventType))
	sb.WriteString(fmt.Sprintf("Fecha: %s a las %s\n", timezone.Format(booking.EventDate, constant.DateOnlyFormat), booking.EventTime))

	if booking.Guests != nil {
		sb.WriteString(fmt.Sprintf("Invitados: %d\n", *booking.Guests))
	}

	if booking.SpecialRequests != nil {
		sb.WriteString(fmt.Sprintf("Peticiones especiales: %s\n", *booking.SpecialRequests))
	}

	body := sb.String()

	if err = n.mailer.Send(ctx, n.cfg.Booking.NotifyRecipients, subject, body, htmlize(body)); err != nil {
		return fmt.Errorf("failed to send booking received mail: %w", err)
	}

	return nil
}

// calendarLink builds the public download URL for the approved event's
// calendar file.
func (n *notifierImpl) calendarLink(booking model.Booking) string {
	params := url.Values{}
	params.Set("title", booking.EventName)
	params.Set("date", timezone.Format(booking.EventDate, constant.DateOnlyFormat))
	params.Set("time", booking.EventTime)

	if booking.EventLocation != nil {
		params.Set("location", *booking.EventLocation)
	}

	return fmt.Sprintf("%s/v1/calendar-event?%s", strings.TrimRight(n.cfg.App.BaseURL, "/"), params.Encode())
}

func (n *notifierImpl) BookingApproved(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelNotifierScopeName, constant.OtelNotifierScopeName+".BookingApproved")
	defer scope.End()
	defer scope.TraceIfError(err)

	subject := fmt.Sprintf("Reserva confirmada: %s", booking.EventName)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Hola %s,\n\n", booking.ClientName))
	sb.WriteString("Tu reserva ha sido confirmada.\n\n")
	sb.WriteString(fmt.Sprintf("Evento: %s\n", booking.EventName))
	sb.WriteString(fmt.Sprintf("Fecha: %s a las %s\n", timezone.Format(booking.EventDate, constant.DateOnlyFormat), booking.EventTime))

	if booking.EventLocation != nil {
		sb.WriteString(fmt.Sprintf("Lugar: %s\n", *booking.EventLocation))
	}

	sb.WriteString(fmt.Sprintf("\nAñade el evento a tu calendario: %s\n", n.calendarLink(booking)))
	sb.WriteString("\nGracias por confiar en nosotros.\n")

	body := sb.String()

	if err = n.mailer.Send(ctx, []string{booking.ClientEmail}, subject, body, htmlize(body)); err != nil {
		return fmt.Errorf("failed to send booking approved mail: %w", err)
	}

	return nil
}

func (n *notifierImpl) BookingRejected(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelNotifierScopeName, constant.OtelNotifierScopeName+".BookingRejected")
	defer scope.End()
	defer scope.TraceIfError(err)

	subject := fmt.Sprintf("Reserva no disponible: %s", booking.EventName)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Hola %s,\n\n", booking.ClientName))
	sb.WriteString("Lamentablemente no podemos atender tu solicitud de reserva para la fecha indicada.\n\n")
	sb.WriteString(fmt.Sprintf("Evento: %s\n", booking.EventName))
	sb.WriteString(fmt.Sprintf("Fecha solicitada: %s a las %s\n", timezone.Format(booking.EventDate, constant.DateOnlyFormat), booking.EventTime))

	if booking.Notes != nil {
		sb.WriteString(fmt.Sprintf("\nMotivo: %s\n", *booking.Notes))
	}

	sb.WriteString("\nNo dudes en contactarnos para buscar una fecha alternativa.\n")

	body := sb.String()

	if err = n.mailer.Send(ctx, []string{booking.ClientEmail}, subject, body, htmlize(body)); err != nil {
		return fmt.Errorf("failed to send booking rejected mail: %w", err)
	}

	return nil
}
