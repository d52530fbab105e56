package permissions

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strings"
)

// Role is the admin role stored on a user.
type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleManager      Role = "manager"
	RoleReceptionist Role = "receptionist"
	RoleChef         Role = "chef"
	RoleHousekeeper  Role = "housekeeper"
	RoleAuditor      Role = "auditor"
	RoleAccountant   Role = "accountant"
	RoleCustom       Role = "custom"
)

var knownRoles = []Role{
	RoleSuperAdmin, RoleManager, RoleReceptionist, RoleChef,
	RoleHousekeeper, RoleAuditor, RoleAccountant, RoleCustom,
}

// Older user records carry these spellings.
var legacyRoles = map[string]Role{
	"superadmin": RoleSuperAdmin,
	"admin":      RoleSuperAdmin,
	"owner":      RoleSuperAdmin,
	"front_desk": RoleReceptionist,
	"frontdesk":  RoleReceptionist,
	"kitchen":    RoleChef,
	"finance":    RoleAccountant,
}

var ErrUnknownRole = errors.New("unknown role")

// ParseRole normalises a stored role, mapping legacy spellings onto the current enum.
func ParseRole(value string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))

	for _, role := range knownRoles {
		if string(role) == normalized {
			return role, nil
		}
	}

	if role, ok := legacyRoles[normalized]; ok {
		return role, nil
	}

	return RoleCustom, fmt.Errorf("%w: %q", ErrUnknownRole, value)
}

// HasFullAccess reports whether the role bypasses the permission map.
func (r Role) HasFullAccess() bool {
	return r == RoleSuperAdmin || r == RoleManager
}

type AccessLevel string

const (
	AccessRead      AccessLevel = "read"
	AccessReadWrite AccessLevel = "read_write"
)

func (l AccessLevel) Valid() bool {
	return l == AccessRead || l == AccessReadWrite
}

func (l AccessLevel) CanWrite() bool {
	return l == AccessReadWrite
}

type PortalAccess struct {
	Enabled  bool                   `json:"enabled"`
	Sections map[string]AccessLevel `json:"sections"`
}

// AccessMap is the per-user permission document, keyed by portal.
type AccessMap map[string]PortalAccess

// Value implements driver.Valuer so the map can be stored in a JSONB column.
func (m AccessMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal permissions: %w", err)
	}

	return raw, nil
}

// Scan implements sql.Scanner.
func (m *AccessMap) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		*m = AccessMap{}

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported permissions type %T", src)
	}

	decoded := AccessMap{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("failed to unmarshal permissions: %w", err)
	}

	*m = decoded

	return nil
}

func (m AccessMap) Clone() AccessMap {
	cloned := make(AccessMap, len(m))

	for portal, access := range m {
		cloned[portal] = PortalAccess{
			Enabled:  access.Enabled,
			Sections: maps.Clone(access.Sections),
		}
	}

	return cloned
}

// WithSection returns a copy with the section set to level. A section entry always enables its portal.
func (m AccessMap) WithSection(portal, section string, level AccessLevel) AccessMap {
	cloned := m.Clone()
	access := cloned[portal]

	if access.Sections == nil {
		access.Sections = map[string]AccessLevel{}
	}

	access.Sections[section] = level
	access.Enabled = true
	cloned[portal] = access

	return cloned
}

// WithoutSection returns a copy with the section entry removed. The portal flag is left alone.
func (m AccessMap) WithoutSection(portal, section string) AccessMap {
	cloned := m.Clone()

	access, ok := cloned[portal]
	if !ok {
		return cloned
	}

	delete(access.Sections, section)
	cloned[portal] = access

	return cloned
}

// Toggle flips a section the way the permission grid does: on means read_write, off removes the entry.
func (m AccessMap) Toggle(portal, section string, enabled bool) AccessMap {
	if enabled {
		return m.WithSection(portal, section, AccessReadWrite)
	}

	return m.WithoutSection(portal, section)
}

// Validate checks every key against the catalog and enforces that sections imply an enabled portal.
func (m AccessMap) Validate(catalog *Catalog) error {
	for portal, access := range m {
		if _, ok := catalog.FindPortal(portal); !ok {
			return fmt.Errorf("unknown portal %q", portal)
		}

		if len(access.Sections) > 0 && !access.Enabled {
			return fmt.Errorf("portal %q has sections but is not enabled", portal)
		}

		for section, level := range access.Sections {
			if !catalog.HasSection(portal, section) {
				return fmt.Errorf("unknown section %q in portal %q", section, portal)
			}

			if !level.Valid() {
				return fmt.Errorf("invalid access level %q for %s.%s", level, portal, section)
			}
		}
	}

	return nil
}
