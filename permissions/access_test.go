package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{name: "current", input: "receptionist", want: RoleReceptionist},
		{name: "mixed case", input: " Manager ", want: RoleManager},
		{name: "legacy superadmin", input: "superadmin", want: RoleSuperAdmin},
		{name: "legacy admin", input: "admin", want: RoleSuperAdmin},
		{name: "legacy kitchen", input: "kitchen", want: RoleChef},
		{name: "legacy finance", input: "finance", want: RoleAccountant},
		{name: "unknown", input: "janitor", want: RoleCustom, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRole)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccessMap_ScanValue(t *testing.T) {
	original := AccessMap{}.WithSection(PortalFrontOffice, SectionRooms, AccessRead)

	raw, err := original.Value()
	require.NoError(t, err)

	var scanned AccessMap
	require.NoError(t, scanned.Scan(raw))
	assert.Equal(t, original, scanned)

	var empty AccessMap
	require.NoError(t, empty.Scan(nil))
	assert.Empty(t, empty)

	assert.Error(t, empty.Scan(42))
}

func TestAccessMap_Toggle(t *testing.T) {
	base := AccessMap{}

	on := base.Toggle(PortalAccounts, SectionBilling, true)
	assert.True(t, on[PortalAccounts].Enabled)
	assert.Equal(t, AccessReadWrite, on[PortalAccounts].Sections[SectionBilling])
	assert.Empty(t, base, "toggle must not mutate the receiver")

	off := on.Toggle(PortalAccounts, SectionBilling, false)
	assert.True(t, off[PortalAccounts].Enabled)
	assert.NotContains(t, off[PortalAccounts].Sections, SectionBilling)
	assert.Contains(t, on[PortalAccounts].Sections, SectionBilling)
}

func TestAccessMap_Validate(t *testing.T) {
	catalog := Get()

	assert.NoError(t, AccessMap{}.WithSection(PortalFrontOffice, SectionRooms, AccessRead).Validate(catalog))
	assert.Error(t, AccessMap{"spa": {Enabled: true}}.Validate(catalog))
	assert.Error(t, AccessMap{PortalFrontOffice: {Enabled: true, Sections: map[string]AccessLevel{"kitchen": AccessRead}}}.Validate(catalog))
	assert.Error(t, AccessMap{PortalFrontOffice: {Enabled: true, Sections: map[string]AccessLevel{SectionRooms: "admin"}}}.Validate(catalog))
	assert.Error(t, AccessMap{PortalFrontOffice: {Enabled: false, Sections: map[string]AccessLevel{SectionRooms: AccessRead}}}.Validate(catalog))
}

func TestResolver_SectionGating(t *testing.T) {
	resolver := newResolver(Get(), nil)

	subject := Subject{
		Role: RoleCustom,
		Permissions: AccessMap{
			PortalFrontOffice: {Enabled: true, Sections: map[string]AccessLevel{}},
		},
	}

	assert.True(t, resolver.HasPortalAccess(subject, PortalFrontOffice))
	assert.False(t, resolver.HasSectionAccess(subject, PortalFrontOffice, SectionRooms), "enabled portal without the section stays locked")

	subject.Permissions = subject.Permissions.WithSection(PortalFrontOffice, SectionRooms, AccessReadWrite)

	assert.True(t, resolver.HasSectionAccess(subject, PortalFrontOffice, SectionRooms))
	assert.True(t, resolver.CanWrite(subject, PortalFrontOffice, SectionRooms))
	assert.False(t, resolver.HasSectionAccess(subject, PortalFrontOffice, SectionBookings))
	assert.False(t, resolver.HasPortalAccess(subject, PortalAccounts))
}

func TestResolver_ReadOnly(t *testing.T) {
	resolver := newResolver(Get(), nil)
	subject := Subject{
		Role:        RoleAuditor,
		Permissions: AccessMap{}.WithSection(PortalAdministration, SectionAuditLogs, AccessRead),
	}

	assert.True(t, resolver.HasSectionAccess(subject, PortalAdministration, SectionAuditLogs))
	assert.False(t, resolver.CanWrite(subject, PortalAdministration, SectionAuditLogs))
}

func TestResolver_FullAccessPrecedence(t *testing.T) {
	resolver := newResolver(Get(), []string{"Owner@Hotel.test "})

	tests := []struct {
		name    string
		subject Subject
	}{
		{name: "super admin with empty map", subject: Subject{Role: RoleSuperAdmin}},
		{name: "manager with empty map", subject: Subject{Role: RoleManager, Permissions: AccessMap{}}},
		{name: "allowlisted custom user", subject: Subject{Role: RoleCustom, Email: "owner@hotel.test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, resolver.HasFullAccess(tt.subject))
			assert.True(t, resolver.HasPortalAccess(tt.subject, PortalAdministration))
			assert.True(t, resolver.CanWrite(tt.subject, PortalAdministration, SectionUsers))
		})
	}

	assert.False(t, resolver.HasSectionAccess(Subject{Role: RoleSuperAdmin}, PortalFrontOffice, "spa"), "unknown sections stay closed")
}

func TestResolver_Matrix(t *testing.T) {
	resolver := newResolver(Get(), nil)
	subject := Subject{Role: RoleChef, Permissions: Get().DefaultAccess(RoleChef)}

	matrix := resolver.Matrix(subject)
	require.Len(t, matrix, len(Get().Portals))

	for _, portal := range matrix {
		if portal.Key == PortalFoodBeverage {
			assert.True(t, portal.Unlocked)
			assert.True(t, portal.Sections[0].Unlocked)

			continue
		}

		assert.False(t, portal.Unlocked, portal.Key)
	}
}
