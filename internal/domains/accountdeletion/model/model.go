package model

import "time"

const (
	TableName  = "account_deletion_requests"
	EntityName = "account_deletion_request"

	FieldID     = "id"
	FieldEmail  = "email"
	FieldStatus = "status"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

type Request struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Reason    string    `db:"reason"`
	Comments  string    `db:"comments"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
