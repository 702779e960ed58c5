package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/invoice/model"
	"github.com/gabrielgilbord/Frantana-Booking/shared"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	gDto "github.com/gabrielgilbord/Frantana-Booking/shared/dto"
	gModel "github.com/gabrielgilbord/Frantana-Booking/shared/model"
	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"
)

type CreateInvoiceRequest struct {
	InvoiceNumber string `json:"invoice_number" validate:"required,max=50"`
	Description   string `json:"description"    validate:"required,max=500"`
	InvoiceMethod string `json:"invoice_method" validate:"required,max=100"`
	InvoiceAmount string `json:"invoice_amount" validate:"required"`
	InvoiceDate   string `json:"invoice_date"   validate:"omitempty,datetime=2006-01-02"`
	InvoiceNotes  string `json:"invoice_notes"  validate:"omitempty"`
}

func (c *CreateInvoiceRequest) ToModel(username string) (model.Invoice, error) {
	amount, err := decimal.NewFromString(c.InvoiceAmount)
	if err != nil {
		return model.Invoice{}, err
	}

	invoiceDate := timezone.Today()

	if c.InvoiceDate != "" {
		invoiceDate, err = timezone.Parse(constant.DateOnlyFormat, c.InvoiceDate)
		if err != nil {
			return model.Invoice{}, err
		}
	}

	invoice := model.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: c.InvoiceNumber,
		Description:   c.Description,
		InvoiceMethod: c.InvoiceMethod,
		InvoiceAmount: amount,
		InvoiceDate:   invoiceDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}

	if c.InvoiceNotes != "" {
		invoice.InvoiceNotes = &c.InvoiceNotes
	}

	return invoice, nil
}

type InvoiceResponse struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	Description   string `json:"description"`
	InvoiceMethod string `json:"invoice_method"`
	InvoiceAmount string `json:"invoice_amount"`
	InvoiceDate   string `json:"invoice_date"`
	InvoiceNotes  string `json:"invoice_notes,omitempty"`
	gDto.Metadata
}

func (r *InvoiceResponse) FromModel(mod model.Invoice) {
	r.ID = mod.ID
	r.InvoiceNumber = mod.InvoiceNumber
	r.Description = mod.Description
	r.InvoiceMethod = mod.InvoiceMethod
	r.InvoiceAmount = mod.InvoiceAmount.String()
	r.InvoiceDate = timezone.Format(mod.InvoiceDate, constant.DateOnlyFormat)

	if mod.InvoiceNotes != nil {
		r.InvoiceNotes = *mod.InvoiceNotes
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInvoicesResponse) FromModels(models []model.Invoice, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Invoices = make([]InvoiceResponse, len(models))
	for i, mod := range models {
		r.Invoices[i].FromModel(mod)
	}
}
