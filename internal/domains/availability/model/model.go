package model

import (
	"time"

	"github.com/gabrielgilbord/Frantana-Booking/shared/model"
)

const (
	TableName  = "availability"
	EntityName = "availability"

	FieldID          = "id"
	FieldDate        = "date"
	FieldIsAvailable = "is_available"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldNotes       = "notes"
)

// Availability rows are blackouts. A stored row always carries
// is_available=false; the absence of a row means the date is open.
// Both times set marks a partial-day window, both NULL a whole-day blackout.
type Availability struct {
	ID          string    `db:"id"`
	Date        time.Time `db:"date"`
	IsAvailable bool      `db:"is_available"`
	StartTime   *string   `db:"start_time"`
	EndTime     *string   `db:"end_time"`
	Notes       *string   `db:"notes"`
	model.Metadata
}

// WholeDay reports whether the blackout covers the entire date.
func (a *Availability) WholeDay() bool {
	return a.StartTime == nil && a.EndTime == nil
}
