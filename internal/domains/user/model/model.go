package model

import (
	"time"

	"hotel/permissions"
	"hotel/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID          = "id"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldFullName    = "full_name"
	FieldRole        = "role"
	FieldPermissions = "permissions"
	FieldLastLogin   = "last_login"
	FieldActive      = "active"
)

// User is a back-office account.
type User struct {
	ID          string                `db:"id"`
	Email       string                `db:"email"`
	Password    string                `db:"password"`
	FullName    *string               `db:"full_name"`
	Role        string                `db:"role"`
	Permissions permissions.AccessMap `db:"permissions"`
	LastLogin   *time.Time            `db:"last_login"`
	Active      bool                  `db:"active"`
	model.Metadata
}

// Subject resolves the stored role (legacy spellings included) for permission checks.
// An unrecognised role falls back to custom, which only grants what the map grants.
func (u User) Subject() permissions.Subject {
	role, _ := permissions.ParseRole(u.Role)

	return permissions.Subject{
		Role:        role,
		Email:       u.Email,
		Permissions: u.Permissions,
	}
}
