package model

import (
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/shared/model"
)

const (
	FieldID            = "id"
	FieldName          = "name"
	FieldContactPerson = "contact_person"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldAddress       = "address"
	FieldCountry       = "country"
	FieldActive        = "active"
)

// Collection names a master data table. Companies and travel agents share one shape.
type Collection string

const (
	CollectionCompanies    Collection = "companies"
	CollectionTravelAgents Collection = "travel_agents"
)

var Collections = []Collection{CollectionCompanies, CollectionTravelAgents}

func (c Collection) Valid() bool {
	return c == CollectionCompanies || c == CollectionTravelAgents
}

func (c Collection) TableName() string {
	return string(c)
}

func (c Collection) EntityName() string {
	if c == CollectionTravelAgents {
		return "travel_agent"
	}

	return "company"
}

// ReferenceField is the bookings column pointing at this collection.
func (c Collection) ReferenceField() string {
	if c == CollectionTravelAgents {
		return bookingModel.FieldTravelAgentID
	}

	return bookingModel.FieldCompanyID
}

type Entry struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	ContactPerson string `db:"contact_person"`
	Email         string `db:"email"`
	Phone         string `db:"phone"`
	Address       string `db:"address"`
	Country       string `db:"country"`
	Active        bool   `db:"active"`
	model.Metadata

	Collection Collection
}
