package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service/mocks"
	"hotel/internal/handlers/auth"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockAuth) {
	t.Helper()

	svc := mocks.NewMockAuth(gomock.NewController(t))
	handler := auth.New(svc, otelMocks.NewOtel())

	signedIn := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, "u-1")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	router := chi.NewRouter()
	handler.Router(router, signedIn)

	return router, svc
}

func send(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_Login(t *testing.T) {
	t.Run("returns the token pair", func(t *testing.T) {
		router, svc := newRouter(t)

		res := dto.LoginResponse{User: dto.Profile{ID: "u-1", Role: "manager"}}
		res.AccessToken = "access"
		svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{Email: "desk@hotel.test", Password: "secret"}).Return(res, nil)

		recorder := send(router, http.MethodPost, "/auth/login", `{"email":"desk@hotel.test","password":"secret"}`)

		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Data dto.LoginResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "access", body.Data.AccessToken)
		assert.Equal(t, "manager", body.Data.User.Role)
	})

	t.Run("invalid body never reaches the service", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder := send(router, http.MethodPost, "/auth/login", `{"email":"not-an-email","password":"secret"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{}, failure.Unauthorized("invalid email or password"))

		recorder := send(router, http.MethodPost, "/auth/login", `{"email":"desk@hotel.test","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "invalid email or password")
	})
}

func TestHandler_Register(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil)

	recorder := send(router, http.MethodPost, "/auth/register", `{"email":"new@hotel.test","password":"long-enough"}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestHandler_ChangePassword_UsesSignedInUser(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), "u-1").Return(nil)

	recorder := send(router, http.MethodPatch, "/auth/password", `{"current_password":"old-password","new_password":"new-password"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
