package model

import (
	"time"

	"github.com/gabrielgilbord/Frantana-Booking/shared/model"
)

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID        = "id"
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldEmail     = "email"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

type Admin struct {
	ID        string     `db:"id"`
	Username  string     `db:"username"`
	Password  string     `db:"password"`
	Email     string     `db:"email"`
	LastLogin *time.Time `db:"last_login"`
	Active    bool       `db:"active"`
	model.Metadata
}
