package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/middleware"
	"hotel/transport/http/middleware/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func receptionistDesk() permissions.AccessMap {
	return permissions.AccessMap{}.
		WithSection(permissions.PortalFrontOffice, permissions.SectionBookings, permissions.AccessReadWrite).
		WithSection(permissions.PortalFrontOffice, permissions.SectionRooms, permissions.AccessRead)
}

func TestAccessMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		userID    string
		write     bool
		section   string
		setupMock func(m *mocks.MockSubjectLoader)
		wantCode  int
	}{
		{
			name:     "anonymous caller",
			section:  permissions.SectionBookings,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "read granted",
			userID:  "u-1",
			section: permissions.SectionRooms,
			setupMock: func(m *mocks.MockSubjectLoader) {
				m.EXPECT().Subject(gomock.Any(), "u-1").
					Return(permissions.Subject{Role: permissions.RoleCustom, Permissions: receptionistDesk()}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:    "read only section refuses writes",
			userID:  "u-1",
			write:   true,
			section: permissions.SectionRooms,
			setupMock: func(m *mocks.MockSubjectLoader) {
				m.EXPECT().Subject(gomock.Any(), "u-1").
					Return(permissions.Subject{Role: permissions.RoleCustom, Permissions: receptionistDesk()}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:    "read write section accepts writes",
			userID:  "u-1",
			write:   true,
			section: permissions.SectionBookings,
			setupMock: func(m *mocks.MockSubjectLoader) {
				m.EXPECT().Subject(gomock.Any(), "u-1").
					Return(permissions.Subject{Role: permissions.RoleCustom, Permissions: receptionistDesk()}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:    "section missing from the map",
			userID:  "u-1",
			section: permissions.SectionCheckout,
			setupMock: func(m *mocks.MockSubjectLoader) {
				m.EXPECT().Subject(gomock.Any(), "u-1").
					Return(permissions.Subject{Role: permissions.RoleCustom, Permissions: receptionistDesk()}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:    "manager bypasses the map",
			userID:  "u-2",
			write:   true,
			section: permissions.SectionCheckout,
			setupMock: func(m *mocks.MockSubjectLoader) {
				m.EXPECT().Subject(gomock.Any(), "u-2").Return(permissions.Subject{Role: permissions.RoleManager}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:    "deactivated account",
			userID:  "u-3",
			section: permissions.SectionBookings,
			setupMock: func(m *mocks.MockSubjectLoader) {
				m.EXPECT().Subject(gomock.Any(), "u-3").Return(permissions.Subject{}, failure.Forbidden("account is deactivated"))
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := mocks.NewMockSubjectLoader(gomock.NewController(t))
			if tt.setupMock != nil {
				tt.setupMock(loader)
			}

			access := middleware.NewAccessMiddleware(loader, permissions.NewResolver(&config.Config{}), otelMocks.NewOtel())

			gate := access.Read(permissions.PortalFrontOffice, tt.section)
			if tt.write {
				gate = access.Write(permissions.PortalFrontOffice, tt.section)
			}

			handler := gate(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			if tt.userID != "" {
				req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, tt.userID))
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAccessMiddleware_InternalCall(t *testing.T) {
	loader := mocks.NewMockSubjectLoader(gomock.NewController(t))
	access := middleware.NewAccessMiddleware(loader, permissions.NewResolver(&config.Config{}), otelMocks.NewOtel())

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"
	auth := middleware.NewAuthMiddleware(nil, otelMocks.NewOtel(), cfg)

	handler := auth.APIKey(access.Write(permissions.PortalAdministration, permissions.SectionUsers)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})))

	req := httptest.NewRequest(http.MethodDelete, "/v1/users/u-9", nil)
	req.Header.Set("X-API-Key", "internal-key")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
