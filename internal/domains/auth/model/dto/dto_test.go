package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"hotel/infras/jwt"
	"hotel/internal/domains/auth/model/dto"
	userModel "hotel/internal/domains/user/model"
	"hotel/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}
	name := "Front Desk"

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)
	response.SetUser(userModel.User{ID: "u-1", Email: "desk@hotel.test", FullName: &name, Role: "receptionist", Password: "secret-hash"})

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(900), response.ExpiresIn)
	assert.Equal(t, dto.Profile{ID: "u-1", Email: "desk@hotel.test", FullName: &name, Role: "receptionist"}, response.User)

	encoded, err := json.Marshal(response)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "secret-hash")
	assert.Contains(t, string(encoded), `"access_token":"test-access-token"`)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	name := "Night Auditor"
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	req := dto.RegisterRequest{Email: "  Night@Hotel.Test ", Password: "ignored", FullName: &name}
	user := req.ToUserModel("hashed", now)

	assert.Equal(t, "night@hotel.test", user.Email)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, string(permissions.RoleCustom), user.Role)
	assert.Empty(t, user.Permissions)
	assert.False(t, user.Active)
	assert.Equal(t, user.ID, user.CreatedBy)
	assert.Equal(t, now, user.CreatedAt)
}
