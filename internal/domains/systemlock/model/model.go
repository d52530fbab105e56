package model

import (
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "system_locks"
	EntityName = "system_lock"

	FieldID           = "id"
	FieldResourceType = "resource_type"
	FieldResourceID   = "resource_id"
	FieldReason       = "reason"
	FieldLockedBy     = "locked_by"
	FieldLockedAt     = "locked_at"
	FieldExpiresAt    = "expires_at"
	FieldActive       = "active"
)

const (
	ResourceFolio = "folio"
	ResourceRoom  = "room"
)

type SystemLock struct {
	ID           string     `db:"id"`
	ResourceType string     `db:"resource_type"`
	ResourceID   string     `db:"resource_id"`
	Reason       string     `db:"reason"`
	LockedBy     string     `db:"locked_by"`
	LockedAt     time.Time  `db:"locked_at"`
	ExpiresAt    *time.Time `db:"expires_at"`
	Active       bool       `db:"active"`
	model.Metadata
}

// Resource names one lockable thing.
type Resource struct {
	Type string
	ID   string
}

// HeldAt reports whether the lock still blocks at now.
func (l SystemLock) HeldAt(now time.Time) bool {
	return l.Active && (l.ExpiresAt == nil || now.Before(*l.ExpiresAt))
}
