package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/slot/model"
	"github.com/gabrielgilbord/Frantana-Booking/shared"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	gDto "github.com/gabrielgilbord/Frantana-Booking/shared/dto"
	gModel "github.com/gabrielgilbord/Frantana-Booking/shared/model"
	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"
)

type CreateSlotRequest struct {
	Date          string `json:"date"           validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"start_time"     validate:"required"`
	EndTime       string `json:"end_time"       validate:"required"`
	EventName     string `json:"event_name"     validate:"required,max=200"`
	Notes         string `json:"notes"          validate:"omitempty"`
	IsInvoiced    bool   `json:"is_invoiced"    validate:"omitempty"`
	InvoiceMethod string `json:"invoice_method" validate:"omitempty,max=100"`
	InvoiceAmount string `json:"invoice_amount" validate:"omitempty"`
	InvoiceNotes  string `json:"invoice_notes"  validate:"omitempty"`
}

func (c *CreateSlotRequest) ToModel(username string) (model.Slot, error) {
	date, err := timezone.Parse(constant.DateOnlyFormat, c.Date)
	if err != nil {
		return model.Slot{}, err
	}

	slot := model.Slot{
		ID:         uuid.NewString(),
		Date:       date,
		StartTime:  c.StartTime,
		EndTime:    c.EndTime,
		EventName:  c.EventName,
		IsInvoiced: c.IsInvoiced,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}

	if c.Notes != "" {
		slot.Notes = &c.Notes
	}

	if c.IsInvoiced {
		slot.InvoiceMethod = &c.InvoiceMethod

		amount, err := decimal.NewFromString(c.InvoiceAmount)
		if err != nil {
			return model.Slot{}, err
		}

		slot.InvoiceAmount = decimal.NewNullDecimal(amount)

		today := timezone.Today()
		slot.InvoiceDate = &today

		if c.InvoiceNotes != "" {
			slot.InvoiceNotes = &c.InvoiceNotes
		}
	}

	return slot, nil
}

type UpdateSlotRequest struct {
	Date      string `db:"date"       json:"date"       validate:"omitempty,datetime=2006-01-02"`
	StartTime string `db:"start_time" json:"start_time" validate:"omitempty"`
	EndTime   string `db:"end_time"   json:"end_time"   validate:"omitempty"`
	EventName string `db:"event_name" json:"event_name" validate:"omitempty,max=200"`
	Notes     string `db:"notes"      json:"notes"      validate:"omitempty"`
}

type MarkInvoicedRequest struct {
	InvoiceMethod string `json:"invoice_method" validate:"required,max=100"`
	InvoiceAmount string `json:"invoice_amount" validate:"required"`
	InvoiceDate   string `json:"invoice_date"   validate:"omitempty,datetime=2006-01-02"`
	InvoiceNotes  string `json:"invoice_notes"  validate:"omitempty"`
}

type SlotResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	EventName     string `json:"event_name"`
	Notes         string `json:"notes,omitempty"`
	IsInvoiced    bool   `json:"is_invoiced"`
	InvoiceMethod string `json:"invoice_method,omitempty"`
	InvoiceAmount string `json:"invoice_amount,omitempty"`
	InvoiceDate   string `json:"invoice_date,omitempty"`
	InvoiceNotes  string `json:"invoice_notes,omitempty"`
	gDto.Metadata
}

func (r *SlotResponse) FromModel(mod model.Slot) {
	r.ID = mod.ID
	r.Date = timezone.Format(mod.Date, constant.DateOnlyFormat)
	r.StartTime = mod.StartTime
	r.EndTime = mod.EndTime
	r.EventName = mod.EventName
	r.IsInvoiced = mod.IsInvoiced

	if mod.Notes != nil {
		r.Notes = *mod.Notes
	}

	if mod.InvoiceMethod != nil {
		r.InvoiceMethod = *mod.InvoiceMethod
	}

	if mod.InvoiceAmount.Valid {
		r.InvoiceAmount = mod.InvoiceAmount.Decimal.String()
	}

	if mod.InvoiceDate != nil {
		r.InvoiceDate = timezone.Format(*mod.InvoiceDate, constant.DateOnlyFormat)
	}

	if mod.InvoiceNotes != nil {
		r.InvoiceNotes = *mod.InvoiceNotes
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetSlotsResponse struct {
	Slots     []SlotResponse `json:"slots"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetSlotsResponse) FromModels(models []model.Slot, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Slots = make([]SlotResponse, len(models))
	for i, mod := range models {
		r.Slots[i].FromModel(mod)
	}
}
