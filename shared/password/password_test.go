package password_test

import (
	"strings"
	"testing"

	"hotel/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "front desk password", password: "Reception#204"},
		{name: "unicode", password: "пароль123"},
		{name: "exactly the bcrypt limit", password: strings.Repeat("a", password.MaxLength)},
		{name: "empty", password: "", wantErr: password.ErrEmptyPassword},
		{name: "over the bcrypt limit", password: strings.Repeat("a", password.MaxLength+1), wantErr: password.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$2a$"))
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestHash_Salted(t *testing.T) {
	first, err := password.Hash("housekeeping")
	require.NoError(t, err)

	second, err := password.Hash("housekeeping")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("night-audit")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "match", password: "night-audit", hash: hash},
		{name: "wrong password", password: "night-audit!", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "night-audit", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "corrupt hash", password: "night-audit", hash: "not-a-bcrypt-hash", wantErr: password.ErrVerifyingPassword},
		{name: "truncated hash", password: "night-audit", hash: hash[:10], wantErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
