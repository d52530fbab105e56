package model

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "audit_logs"
	EntityName = "audit_log"

	FieldID         = "id"
	FieldCategory   = "category"
	FieldAction     = "action"
	FieldEntityType = "entity_type"
	FieldEntityID   = "entity_id"
	FieldActorID    = "actor_id"
	FieldActorEmail = "actor_email"
	FieldDetails    = "details"
	FieldCreatedAt  = "created_at"
)

const (
	CategoryMasterData = "master_data"
	CategoryUsers      = "users"
	CategoryLocks      = "locks"
	CategoryBookings   = "bookings"
	CategoryBilling    = "billing"
	CategoryFolio      = "folio"
)

const (
	ActionCreate    = "create"
	ActionUpdate    = "update"
	ActionDelete    = "delete"
	ActionAcquire   = "acquire"
	ActionRelease   = "release"
	ActionCheckOut  = "check_out"
	ActionTransit   = "status_change"
	ActionGenerate  = "generate"
	ActionPost      = "post"
	ActionAccess    = "access_change"
	ActionDeleteReq = "deletion_request"
)

// Log is append-only.
type Log struct {
	ID         string         `db:"id"`
	Category   string         `db:"category"`
	Action     string         `db:"action"`
	EntityType string         `db:"entity_type"`
	EntityID   string         `db:"entity_id"`
	ActorID    string         `db:"actor_id"`
	ActorEmail string         `db:"actor_email"`
	Details    types.JSONText `db:"details"`
	CreatedAt  time.Time      `db:"created_at"`
}
