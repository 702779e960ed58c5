package mail

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/gabrielgilbord/Frantana-Booking/infras/mailer"
	"github.com/gabrielgilbord/Frantana-Booking/infras/otel"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	"github.com/gabrielgilbord/Frantana-Booking/shared/failure"
	"github.com/gabrielgilbord/Frantana-Booking/shared/validator"
	"github.com/gabrielgilbord/Frantana-Booking/transport/http/response"
)

type Handler struct {
	mailer mailer.Mailer
	otel   otel.Otel
}

func New(mailer mailer.Mailer, otel otel.Otel) Handler {
	return Handler{
		mailer: mailer,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/email", handler.SendEmail)
}

// recipients accepts either a single address or a list of addresses.
type recipients []string

func (r *recipients) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*r = recipients{single}

		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("to must be a string or an array of strings: %w", err)
	}

	*r = recipients(many)

	return nil
}

type sendEmailRequest struct {
	To      recipients `json:"to" validate:"required,min=1,dive,email"`
	Subject string     `json:"subject" validate:"required,max=255"`
	Message string     `json:"message" validate:"required"`
}

// SendEmail delivers an ad hoc message over the configured SMTP account.
// @Summary Send an email
// @Description Send a plain message to one or more recipients. Newlines become line breaks in the HTML body.
// @Tags Mail
// @Accept json
// @Produce json
// @Param request body sendEmailRequest true "Send Email Request"
// @Success 200 {object} response.Message "Email sent successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/email [post]
// @Security BearerAuth
func (handler *Handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendEmail")
	defer scope.End()

	req := sendEmailRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	htmlBody := strings.ReplaceAll(req.Message, "\n", "<br>")

	if err := handler.mailer.Send(ctx, req.To, req.Subject, req.Message, htmlBody); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send email")

		if errors.Is(err, mailer.ErrNotConfigured) {
			response.WithError(w, failure.BadRequestFromString("outgoing mail is not configured"))

			return
		}

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Email sent successfully by " + admin)

	response.WithMessage(w, http.StatusOK, "Email sent successfully")
}
