package model

import (
	"hotel/shared/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "activities"
	EntityName = "activity"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldSchedule    = "schedule"
	FieldPrice       = "price"
	FieldImages      = "images"
	FieldActive      = "active"
)

// Activity is an experience listed on the public activities page.
type Activity struct {
	ID          string          `db:"id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Schedule    string          `db:"schedule"`
	Price       decimal.Decimal `db:"price"`
	Images      pq.StringArray  `db:"images"`
	Active      bool            `db:"active"`
	model.Metadata
}
