package model

import (
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldKind        = "kind"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldCapacity    = "capacity"
	FieldNightlyRate = "nightly_rate"
	FieldTaxRate     = "tax_rate"
	FieldImage       = "image"
	FieldActive      = "active"
)

const (
	KindRoom  = "room"
	KindVilla = "villa"
)

type Room struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Kind        string          `db:"kind"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	Capacity    int             `db:"capacity"`
	NightlyRate decimal.Decimal `db:"nightly_rate"`
	TaxRate     decimal.Decimal `db:"tax_rate"`
	Image       string          `db:"image"`
	Active      bool            `db:"active"`
	model.Metadata
}
