package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotel/config"
	"hotel/infras/jwt"
	jwtMocks "hotel/infras/jwt/mocks"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	userMocks "hotel/internal/domains/user/mocks"
	userModel "hotel/internal/domains/user/model"
	"hotel/permissions"
	"hotel/shared/failure"
	"hotel/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Auth, *userMocks.MockUser, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := userMocks.NewMockUser(ctrl)
	jwtService := jwtMocks.NewMockJWT(ctrl)

	return service.New(repo, &config.Config{}, mocks.NewOtel(), jwtService), repo, jwtService
}

func hashed(t *testing.T, plain string) string {
	t.Helper()

	hash, err := password.Hash(plain)
	require.NoError(t, err)

	return hash
}

func TestAuthService_Login(t *testing.T) {
	hash := hashed(t, "password")

	activeUser := userModel.User{
		ID:       "user-id-123",
		Email:    "front@hotel.test",
		Password: hash,
		Role:     "front_desk",
		Active:   true,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT)
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "Front@Hotel.test", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser, nil)
				jwtService.EXPECT().
					GenerateTokenPair(gomock.Any(), activeUser.ID, activeUser.Email, activeUser.Role).
					Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "last login failure does not block",
			req:  dto.LoginRequest{Email: "front@hotel.test", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser, nil)
				jwtService.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&jwt.TokenPair{AccessToken: "access-token"}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "ghost@hotel.test", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "front@hotel.test", Password: "wrong"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "pending activation",
			req:  dto.LoginRequest{Email: "front@hotel.test", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				inactive := activeUser
				inactive.Active = false

				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "corrupt stored hash",
			req:  dto.LoginRequest{Email: "front@hotel.test", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				broken := activeUser
				broken.Password = "not-a-bcrypt-hash"

				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(broken, nil)
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "wrong password on an inactive account",
			req:  dto.LoginRequest{Email: "front@hotel.test", Password: "wrong"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				inactive := activeUser
				inactive.Active = false

				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "token generation failure",
			req:  dto.LoginRequest{Email: "front@hotel.test", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser, nil)
				jwtService.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("signing failed"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, jwtService := newService(t)
			tt.setupMock(repo, jwtService)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, activeUser.ID, res.User.ID)
			assert.Equal(t, "front_desk", res.User.Role)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser)
		wantCode  int
	}{
		{
			name: "creates an inactive custom account",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user userModel.User) error {
					assert.False(t, user.Active)
					assert.Equal(t, string(permissions.RoleCustom), user.Role)
					assert.Empty(t, user.Permissions)
					assert.NoError(t, password.Verify("long-enough", user.Password))

					return nil
				})
			},
		},
		{
			name: "email taken",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "exist check fails",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.Register(context.Background(), dto.RegisterRequest{Email: "new@hotel.test", Password: "long-enough"})

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		svc, _, jwtService := newService(t)
		jwtService.EXPECT().RefreshTokens(gomock.Any(), "refresh").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("expired token", func(t *testing.T) {
		svc, _, jwtService := newService(t)
		jwtService.EXPECT().RefreshTokens(gomock.Any(), gomock.Any()).Return(nil, jwt.ErrExpiredToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "stale"})
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	hash := hashed(t, "current-pass")

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(repo *userMocks.MockUser)
		wantCode  int
	}{
		{
			name: "changes the password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "current-pass", NewPassword: "brand-new-pass"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "u-1", Password: hash}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						stored, ok := fields[userModel.FieldPassword].(string)
						require.True(t, ok)
						assert.NoError(t, password.Verify("brand-new-pass", stored))

						return nil
					})
			},
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "guess", NewPassword: "brand-new-pass"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "u-1", Password: hash}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "user gone",
			req:  dto.ChangePasswordRequest{CurrentPassword: "current-pass", NewPassword: "brand-new-pass"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.ChangePassword(context.Background(), tt.req, "u-1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
