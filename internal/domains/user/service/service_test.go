package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	auditMocks "hotel/internal/domains/audit/service/mocks"
	userMocks "hotel/internal/domains/user/mocks"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/service"
	"hotel/permissions"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc   service.User
	repo  *userMocks.MockUser
	audit *auditMocks.MockAudit
	cache *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.App.AdminEmails = []string{"Owner@Hotel.test"}

	f := fixture{
		repo:  userMocks.NewMockUser(ctrl),
		audit: auditMocks.NewMockAudit(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, permissions.NewResolver(cfg), f.audit, cfg, f.cache, otelMocks.NewOtel())

	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func actorContext(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "seeds the role defaults",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user model.User) error {
					assert.Equal(t, "chef@hotel.test", user.Email)
					assert.Equal(t, string(permissions.RoleChef), user.Role)
					assert.NotEqual(t, "secret-pass", user.Password)
					assert.True(t, user.Active)

					return nil
				})
				f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "duplicate email",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "insert failure",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Create(actorContext("admin-1"), dto.CreateUserRequest{
				Email:    " Chef@Hotel.test ",
				Password: "secret-pass",
				Role:     string(permissions.RoleChef),
			})

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	role := string(permissions.RoleAuditor)
	inactive := false

	tests := []struct {
		name      string
		actor     string
		req       dto.UpdateUserRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:  "changes the role",
			actor: "admin-1",
			req:   dto.UpdateUserRequest{Role: &role},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "u-1", Role: "front_desk"}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, &role, fields[model.FieldRole])

						return nil
					})
				f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "empty request",
			actor:     "admin-1",
			setupMock: func(f fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "cannot deactivate self",
			actor:     "u-1",
			req:       dto.UpdateUserRequest{Active: &inactive},
			setupMock: func(f fixture) {},
			wantCode:  http.StatusUnprocessableEntity,
		},
		{
			name:  "unknown user",
			actor: "admin-1",
			req:   dto.UpdateUserRequest{Active: &inactive},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(actorContext(tt.actor), tt.req, "u-1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUserService_ToggleSection(t *testing.T) {
	enabled, disabled := true, false

	t.Run("enabling grants read_write and enables the portal", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "u-1", Role: "custom"}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.ToggleSection(actorContext("admin-1"), dto.ToggleSectionRequest{
			Portal: permissions.PortalAccounts, Section: permissions.SectionExports, Enabled: &enabled,
		}, "u-1")

		require.NoError(t, err)
		assert.True(t, res.Permissions[permissions.PortalAccounts].Enabled)
		assert.Equal(t, permissions.AccessReadWrite, res.Permissions[permissions.PortalAccounts].Sections[permissions.SectionExports])
	})

	t.Run("disabling removes the entry", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{
			ID:   "u-1",
			Role: "custom",
			Permissions: permissions.AccessMap{
				permissions.PortalAccounts: {Enabled: true, Sections: map[string]permissions.AccessLevel{
					permissions.SectionExports: permissions.AccessRead,
				}},
			},
		}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.ToggleSection(actorContext("admin-1"), dto.ToggleSectionRequest{
			Portal: permissions.PortalAccounts, Section: permissions.SectionExports, Enabled: &disabled,
		}, "u-1")

		require.NoError(t, err)
		assert.NotContains(t, res.Permissions[permissions.PortalAccounts].Sections, permissions.SectionExports)
	})

	t.Run("unknown section", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ToggleSection(actorContext("admin-1"), dto.ToggleSectionRequest{
			Portal: permissions.PortalAccounts, Section: "spa", Enabled: &enabled,
		}, "u-1")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestUserService_ReplacePermissions(t *testing.T) {
	t.Run("section without enabled portal is rejected", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.ReplacePermissions(actorContext("admin-1"), dto.ReplacePermissionsRequest{
			Permissions: permissions.AccessMap{
				permissions.PortalFrontOffice: {Enabled: false, Sections: map[string]permissions.AccessLevel{
					permissions.SectionBookings: permissions.AccessRead,
				}},
			},
		}, "u-1")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("stores a valid map", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "u-1"}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.ReplacePermissions(actorContext("admin-1"), dto.ReplacePermissionsRequest{
			Permissions: permissions.AccessMap{
				permissions.PortalFrontOffice: {Enabled: true, Sections: map[string]permissions.AccessLevel{
					permissions.SectionBookings: permissions.AccessRead,
				}},
			},
		}, "u-1")

		assert.NoError(t, err)
	})
}

func TestUserService_Access(t *testing.T) {
	tests := []struct {
		name           string
		user           model.User
		wantCode       int
		wantFullAccess bool
	}{
		{
			name:           "legacy admin alias gets everything",
			user:           model.User{ID: "u-1", Role: "admin", Active: true},
			wantFullAccess: true,
		},
		{
			name:           "allowlisted email",
			user:           model.User{ID: "u-1", Role: "custom", Email: "owner@hotel.test", Active: true},
			wantFullAccess: true,
		},
		{
			name: "custom role only sees its map",
			user: model.User{ID: "u-1", Role: "custom", Active: true},
		},
		{
			name:     "deactivated",
			user:     model.User{ID: "u-1", Role: "manager"},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "deleted",
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.user, nil)

			res, err := f.svc.Access(context.Background(), "u-1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFullAccess, res.FullAccess)
			assert.NotEmpty(t, res.Portals)

			for _, portal := range res.Portals {
				assert.Equal(t, tt.wantFullAccess, portal.Unlocked)
			}
		})
	}
}

func TestUserService_RevokedSectionLocksImmediately(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	repo := userMocks.NewMockUser(ctrl)
	audit := auditMocks.NewMockAudit(ctrl)
	resolver := permissions.NewResolver(cfg)
	svc := service.New(repo, resolver, audit, cfg, cache.NewRedisCache(client, otelMocks.NewOtel()), otelMocks.NewOtel())

	stored := model.User{
		ID:     "u-1",
		Role:   "custom",
		Active: true,
		Permissions: permissions.AccessMap{
			permissions.PortalFrontOffice: {Enabled: true, Sections: map[string]permissions.AccessLevel{
				permissions.SectionRooms:    permissions.AccessReadWrite,
				permissions.SectionBookings: permissions.AccessRead,
			}},
		},
	}

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, gDto.FilterGroup, ...string) (model.User, error) {
		return stored, nil
	}).AnyTimes()
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
		stored.Permissions = fields[model.FieldPermissions].(permissions.AccessMap)

		return nil
	})
	audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	ctx := actorContext("admin-1")

	// Warm every read path first.
	_, err := svc.Get(ctx, "u-1")
	require.NoError(t, err)

	before, err := svc.Subject(ctx, "u-1")
	require.NoError(t, err)
	require.True(t, resolver.HasSectionAccess(before, permissions.PortalFrontOffice, permissions.SectionRooms))

	disabled := false
	_, err = svc.ToggleSection(ctx, dto.ToggleSectionRequest{
		Portal: permissions.PortalFrontOffice, Section: permissions.SectionRooms, Enabled: &disabled,
	}, "u-1")
	require.NoError(t, err)

	after, err := svc.Subject(ctx, "u-1")
	require.NoError(t, err)
	assert.False(t, resolver.HasSectionAccess(after, permissions.PortalFrontOffice, permissions.SectionRooms))
	assert.True(t, resolver.HasSectionAccess(after, permissions.PortalFrontOffice, permissions.SectionBookings))

	access, err := svc.Access(ctx, "u-1")
	require.NoError(t, err)

	for _, portal := range access.Portals {
		if portal.Key != permissions.PortalFrontOffice {
			continue
		}

		for _, section := range portal.Sections {
			if section.Key == permissions.SectionRooms {
				assert.False(t, section.Unlocked)
			}
		}
	}

	detail, err := svc.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.NotContains(t, detail.Permissions[permissions.PortalFrontOffice].Sections, permissions.SectionRooms)
}
