package model

import (
	"time"

	"airtech/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID                = "id"
	FieldUsername          = "username"
	FieldEmail             = "email"
	FieldPassword          = "password"
	FieldRole              = "role"
	FieldPassportURL       = "passport_url"
	FieldPassportObjectKey = "passport_object_key"
	FieldActive            = "active"
	FieldLastLogin         = "last_login"
)

type User struct {
	ID                string     `db:"id"`
	Username          string     `db:"username"`
	Email             string     `db:"email"`
	Password          string     `db:"password"`
	Role              string     `db:"role"`
	PassportURL       *string    `db:"passport_url"`
	PassportObjectKey *string    `db:"passport_object_key"`
	Active            bool       `db:"active"`
	LastLogin         *time.Time `db:"last_login"`
	model.Metadata
}
