package permissions

import (
	"strings"

	"hotel/config"
)

// Subject is whoever is asking for access: the signed-in admin user.
type Subject struct {
	Role        Role
	Email       string
	Permissions AccessMap
}

type SectionState struct {
	Key      string      `json:"key"`
	Label    string      `json:"label"`
	Unlocked bool        `json:"unlocked"`
	Level    AccessLevel `json:"level,omitempty"`
}

type PortalState struct {
	Key      string         `json:"key"`
	Label    string         `json:"label"`
	Unlocked bool           `json:"unlocked"`
	Sections []SectionState `json:"sections"`
}

type Resolver struct {
	catalog     *Catalog
	adminEmails map[string]struct{}
}

func NewResolver(cfg *config.Config) *Resolver {
	return newResolver(Get(), cfg.App.AdminEmails)
}

func newResolver(catalog *Catalog, adminEmails []string) *Resolver {
	emails := make(map[string]struct{}, len(adminEmails))

	for _, email := range adminEmails {
		email = normalizeEmail(email)
		if email != "" {
			emails[email] = struct{}{}
		}
	}

	return &Resolver{catalog: catalog, adminEmails: emails}
}

func (r *Resolver) Catalog() *Catalog {
	return r.catalog
}

// IsAllowlisted reports whether the email is on the configured super admin allowlist.
func (r *Resolver) IsAllowlisted(email string) bool {
	_, ok := r.adminEmails[normalizeEmail(email)]

	return ok
}

// HasFullAccess is evaluated before any map lookup. A full access subject never consults its permission map.
func (r *Resolver) HasFullAccess(subject Subject) bool {
	return subject.Role.HasFullAccess() || r.IsAllowlisted(subject.Email)
}

func (r *Resolver) HasPortalAccess(subject Subject, portal string) bool {
	if _, ok := r.catalog.FindPortal(portal); !ok {
		return false
	}

	if r.HasFullAccess(subject) {
		return true
	}

	return subject.Permissions[portal].Enabled
}

// SectionLevel returns the granted level for a section. A missing entry is no access even when the portal is enabled.
func (r *Resolver) SectionLevel(subject Subject, portal, section string) (AccessLevel, bool) {
	if !r.catalog.HasSection(portal, section) {
		return "", false
	}

	if r.HasFullAccess(subject) {
		return AccessReadWrite, true
	}

	access, ok := subject.Permissions[portal]
	if !ok || !access.Enabled {
		return "", false
	}

	level, ok := access.Sections[section]
	if !ok || !level.Valid() {
		return "", false
	}

	return level, true
}

func (r *Resolver) HasSectionAccess(subject Subject, portal, section string) bool {
	_, ok := r.SectionLevel(subject, portal, section)

	return ok
}

func (r *Resolver) CanWrite(subject Subject, portal, section string) bool {
	level, ok := r.SectionLevel(subject, portal, section)

	return ok && level.CanWrite()
}

// Matrix renders the whole catalog with the subject's lock state, for the admin navigation.
func (r *Resolver) Matrix(subject Subject) []PortalState {
	states := make([]PortalState, 0, len(r.catalog.Portals))

	for _, portal := range r.catalog.Portals {
		state := PortalState{
			Key:      portal.Key,
			Label:    portal.Label,
			Unlocked: r.HasPortalAccess(subject, portal.Key),
			Sections: make([]SectionState, 0, len(portal.Sections)),
		}

		for _, section := range portal.Sections {
			level, ok := r.SectionLevel(subject, portal.Key, section.Key)
			state.Sections = append(state.Sections, SectionState{
				Key:      section.Key,
				Label:    section.Label,
				Unlocked: ok,
				Level:    level,
			})
		}

		states = append(states, state)
	}

	return states
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
