package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gabrielgilbord/Frantana-Booking/shared/model"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	FieldID            = "id"
	FieldInvoiceNumber = "invoice_number"
	FieldDescription   = "description"
	FieldInvoiceMethod = "invoice_method"
	FieldInvoiceAmount = "invoice_amount"
	FieldInvoiceDate   = "invoice_date"
	FieldInvoiceNotes  = "invoice_notes"
)

// Invoice is a standalone invoice, not tied to an occupied slot.
type Invoice struct {
	ID            string          `db:"id"`
	InvoiceNumber string          `db:"invoice_number"`
	Description   string          `db:"description"`
	InvoiceMethod string          `db:"invoice_method"`
	InvoiceAmount decimal.Decimal `db:"invoice_amount"`
	InvoiceDate   time.Time       `db:"invoice_date"`
	InvoiceNotes  *string         `db:"invoice_notes"`
	model.Metadata
}
