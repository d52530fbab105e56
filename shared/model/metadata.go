package model

import "time"

// Metadata is the audit column set shared by every mutable table.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}

// Stamp returns metadata for a row created by user at the given instant.
func Stamp(user string, at time.Time) Metadata {
	return Metadata{
		CreatedAt:  at,
		ModifiedAt: at,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

// Touch records a modification by user.
func (m *Metadata) Touch(user string, at time.Time) {
	m.ModifiedAt = at
	m.ModifiedBy = user
}
