package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	gomail "github.com/wneessen/go-mail"

	"github.com/gabrielgilbord/Frantana-Booking/config"
)

var (
	// ErrNotConfigured is returned when SMTP credentials are absent. Mail
	// delivery fails closed rather than attempting anonymous relay.
	ErrNotConfigured = errors.New("smtp credentials are not configured")
)

// Mailer delivers a single message over SMTP.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, textBody, htmlBody string) error
}

type smtpMailer struct {
	config *config.Config
}

func New(cfg *config.Config) Mailer {
	if cfg.SMTP.Username == "" || cfg.SMTP.Password == "" {
		log.Warn().Msg("SMTP credentials missing, outgoing mail is disabled")
	}

	return &smtpMailer{
		config: cfg,
	}
}

// Send implements Mailer.
func (m *smtpMailer) Send(ctx context.Context, to []string, subject, textBody, htmlBody string) error {
	if m.config.SMTP.Username == "" || m.config.SMTP.Password == "" {
		return ErrNotConfigured
	}

	msg := gomail.NewMsg()

	if err := msg.From(m.config.SMTP.From); err != nil {
		return fmt.Errorf("failed to set mail sender: %w", err)
	}

	if err := msg.To(to...); err != nil {
		return fmt.Errorf("failed to set mail recipients: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, textBody)

	if htmlBody != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, htmlBody)
	}

	client, err := gomail.NewClient(
		m.config.SMTP.Host,
		gomail.WithPort(m.config.SMTP.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.config.SMTP.Username),
		gomail.WithPassword(m.config.SMTP.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Strs("to", to).Str("subject", subject).Msg("mail sent")

	return nil
}
