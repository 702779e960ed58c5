package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/gabrielgilbord/Frantana-Booking/internal/domains/availability/model"
	"github.com/gabrielgilbord/Frantana-Booking/shared/constant"
	gDto "github.com/gabrielgilbord/Frantana-Booking/shared/dto"
	gModel "github.com/gabrielgilbord/Frantana-Booking/shared/model"
	"github.com/gabrielgilbord/Frantana-Booking/shared/timezone"
)

type MarkUnavailableRequest struct {
	Date      string `json:"date"       validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"omitempty"`
	EndTime   string `json:"end_time"   validate:"omitempty"`
	Notes     string `json:"notes"      validate:"omitempty"`
}

func (c *MarkUnavailableRequest) ToModel(date time.Time, username string) model.Availability {
	blackout := model.Availability{
		ID:          uuid.NewString(),
		Date:        date,
		IsAvailable: false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}

	if c.StartTime != "" {
		blackout.StartTime = &c.StartTime
	}

	if c.EndTime != "" {
		blackout.EndTime = &c.EndTime
	}

	if c.Notes != "" {
		blackout.Notes = &c.Notes
	}

	return blackout
}

type MarkRangeUnavailableRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"omitempty"`
	EndTime   string `json:"end_time"   validate:"omitempty"`
	Notes     string `json:"notes"      validate:"omitempty"`
}

type AvailabilityResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	IsAvailable bool   `json:"is_available"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Notes       string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *AvailabilityResponse) FromModel(mod model.Availability) {
	r.ID = mod.ID
	r.Date = timezone.Format(mod.Date, constant.DateOnlyFormat)
	r.IsAvailable = mod.IsAvailable

	if mod.StartTime != nil {
		r.StartTime = *mod.StartTime
	}

	if mod.EndTime != nil {
		r.EndTime = *mod.EndTime
	}

	if mod.Notes != nil {
		r.Notes = *mod.Notes
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetAvailabilityResponse struct {
	Blackouts []AvailabilityResponse `json:"blackouts"`
	TotalData int                    `json:"total_data"`
}

func (r *GetAvailabilityResponse) FromModels(models []model.Availability) {
	r.TotalData = len(models)

	r.Blackouts = make([]AvailabilityResponse, len(models))
	for i, mod := range models {
		r.Blackouts[i].FromModel(mod)
	}
}

// TimeWindow is a partial blackout or occupied window within a day.
type TimeWindow struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	EventName string `json:"event_name,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// DayReport describes what a visitor may do with a given date.
// Partial blackouts and occupied slots are informational only: they never
// make the day unselectable.
type DayReport struct {
	Date             string       `json:"date"`
	Selectable       bool         `json:"selectable"`
	WholeDayBlackout bool         `json:"whole_day_blackout"`
	PartialWindows   []TimeWindow `json:"partial_windows"`
	OccupiedSlots    []TimeWindow `json:"occupied_slots"`
}
