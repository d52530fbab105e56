package dto

import (
	"time"

	"hotel/infras/jwt"
	userModel "hotel/internal/domains/user/model"
	"hotel/permissions"
	"hotel/shared"
	gModel "hotel/shared/model"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string  `json:"email"               validate:"required,email"`
	Password string  `json:"password"            validate:"required,min=8,max=72"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=150"`
}

// ToUserModel creates an inactive custom account with no permissions. An administrator activates it.
func (r *RegisterRequest) ToUserModel(hashedPassword string, now time.Time) userModel.User {
	id := uuid.NewString()

	return userModel.User{
		ID:          id,
		Email:       shared.NormalizeEmail(r.Email),
		Password:    hashedPassword,
		FullName:    r.FullName,
		Role:        string(permissions.RoleCustom),
		Permissions: permissions.AccessMap{},
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required,max=72"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

// Column updates fed to shared.TransformFields.
type (
	LastLoginUpdate struct {
		LastLogin time.Time `db:"last_login"`
	}

	PasswordUpdate struct {
		Password string `db:"password"`
	}
)

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (t *TokenResponse) FromTokenPair(pair *jwt.TokenPair) {
	t.AccessToken = pair.AccessToken
	t.RefreshToken = pair.RefreshToken
	t.TokenType = pair.TokenType
	t.ExpiresIn = pair.ExpiresIn
}

// Profile is the signed-in account as the back office shows it.
type Profile struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
	Role     string  `json:"role"`
}

type LoginResponse struct {
	TokenResponse
	User Profile `json:"user"`
}

func (l *LoginResponse) SetUser(user userModel.User) {
	l.User = Profile{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}
}

type RefreshTokenResponse struct {
	TokenResponse
}
