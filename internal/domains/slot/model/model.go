package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gabrielgilbord/Frantana-Booking/shared/model"
)

const (
	TableName  = "occupied_slots"
	EntityName = "slot"

	FieldID            = "id"
	FieldDate          = "date"
	FieldStartTime     = "start_time"
	FieldEndTime       = "end_time"
	FieldEventName     = "event_name"
	FieldNotes         = "notes"
	FieldIsInvoiced    = "is_invoiced"
	FieldInvoiceMethod = "invoice_method"
	FieldInvoiceAmount = "invoice_amount"
	FieldInvoiceDate   = "invoice_date"
	FieldInvoiceNotes  = "invoice_notes"
)

type Slot struct {
	ID            string              `db:"id"`
	Date          time.Time           `db:"date"`
	StartTime     string              `db:"start_time"`
	EndTime       string              `db:"end_time"`
	EventName     string              `db:"event_name"`
	Notes         *string             `db:"notes"`
	IsInvoiced    bool                `db:"is_invoiced"`
	InvoiceMethod *string             `db:"invoice_method"`
	InvoiceAmount decimal.NullDecimal `db:"invoice_amount"`
	InvoiceDate   *time.Time          `db:"invoice_date"`
	InvoiceNotes  *string             `db:"invoice_notes"`
	model.Metadata
}
