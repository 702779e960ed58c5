package model

import (
	"time"

	"github.com/gabrielgilbord/Frantana-Booking/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldClientName      = "client_name"
	FieldClientEmail     = "client_email"
	FieldClientPhone     = "client_phone"
	FieldEventDate       = "event_date"
	FieldEventTime       = "event_time"
	FieldEventType       = "event_type"
	FieldEventName       = "event_name"
	FieldEventLocation   = "event_location"
	FieldGuests          = "guests"
	FieldSpecialRequests = "special_requests"
	FieldStatus          = "status"
	FieldNotes           = "notes"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Booking is a reservation request submitted by a visitor. It stays pending
// until an admin approves or rejects it.
type Booking struct {
	ID              string    `db:"id"`
	ClientName      string    `db:"client_name"`
	ClientEmail     string    `db:"client_email"`
	ClientPhone     *string   `db:"client_phone"`
	EventDate       time.Time `db:"event_date"`
	EventTime       string    `db:"event_time"`
	EventType       string    `db:"event_type"`
	EventName       string    `db:"event_name"`
	EventLocation   *string   `db:"event_location"`
	Guests          *int      `db:"guests"`
	SpecialRequests *string   `db:"special_requests"`
	Status          string    `db:"status"`
	Notes           *string   `db:"notes"`
	model.Metadata
}
