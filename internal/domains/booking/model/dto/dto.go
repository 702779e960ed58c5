package dto

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/booking/model"
	"github.com/gabrielgilbord/Frantana-Booking/shared"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	gDto "github.com/gabrielgilbord/Frantana-Booking/shared/dto"
	gModel "github.com/gabrielgilbord/Frantana-Booking/shared/model"
	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"
)

type CreateBookingRequest struct {
	ClientName      string `json:"client_name"      validate:"required,max=200"`
	ClientEmail     string `json:"client_email"     validate:"required,email"`
	ClientPhone     string `json:"client_phone"     validate:"omitempty,max=30"`
	EventDate       string `json:"event_date"       validate:"required,datetime=2006-01-02"`
	EventTime       string `json:"event_time"       validate:"required"`
	EventType       string `json:"event_type"       validate:"required,max=100"`
	EventName       string `json:"event_name"       validate:"required,max=200"`
	EventLocation   string `json:"event_location"   validate:"omitempty,max=300"`
	Guests          int    `json:"guests"           validate:"omitempty,min=1"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=1000"`
}

func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	date, err := timezone.Parse(constant.DateOnlyFormat, c.EventDate)
	if err != nil {
		return model.Booking{}, err
	}

	// Stored times always carry seconds, whichever form the visitor typed.
	minutes, err := timezone.MinutesOfDay(c.EventTime)
	if err != nil {
		return model.Booking{}, err
	}

	booking := model.Booking{
		ID:          uuid.NewString(),
		ClientName:  c.ClientName,
		ClientEmail: c.ClientEmail,
		EventDate:   date,
		EventTime:   fmt.Sprintf("%02d:%02d:00", minutes/constant.MinutesPerHour, minutes%constant.MinutesPerHour),
		EventType:   c.EventType,
		EventName:   c.EventName,
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextPublic,
			ModifiedBy: constant.ContextPublic,
		},
	}

	if c.ClientPhone != "" {
		booking.ClientPhone = &c.ClientPhone
	}

	if c.EventLocation != "" {
		booking.EventLocation = &c.EventLocation
	}

	if c.Guests > 0 {
		guests := c.Guests
		booking.Guests = &guests
	}

	if c.SpecialRequests != "" {
		booking.SpecialRequests = &c.SpecialRequests
	}

	return booking, nil
}

type ReviewBookingRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=1000"`
}

// ApproveBookingResponse reports the outcome of an approval. The approval
// itself is always committed; SlotCreated is false when the occupied slot
// could not be created, and Warning then tells the admin to promote the
// booking once the underlying problem is resolved.
type ApproveBookingResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	SlotCreated bool   `json:"slot_created"`
	Warning     string `json:"warning,omitempty"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email"`
	ClientPhone     string `json:"client_phone,omitempty"`
	EventDate       string `json:"event_date"`
	EventTime       string `json:"event_time"`
	EventType       string `json:"event_type"`
	EventName       string `json:"event_name"`
	EventLocation   string `json:"event_location,omitempty"`
	Guests          int    `json:"guests,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
	Status          string `json:"status"`
	Notes           string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.ClientName = mod.ClientName
	r.ClientEmail = mod.ClientEmail
	r.EventDate = timezone.Format(mod.EventDate, constant.DateOnlyFormat)
	r.EventTime = mod.EventTime
	r.EventType = mod.EventType
	r.EventName = mod.EventName
	r.Status = mod.Status

	if mod.ClientPhone != nil {
		r.ClientPhone = *mod.ClientPhone
	}

	if mod.EventLocation != nil {
		r.EventLocation = *mod.EventLocation
	}

	if mod.Guests != nil {
		r.Guests = *mod.Guests
	}

	if mod.SpecialRequests != nil {
		r.SpecialRequests = *mod.SpecialRequests
	}

	if mod.Notes != nil {
		r.Notes = *mod.Notes
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
