package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/spende/internal/common"
	"github.com/dmitrijs2005/spende/internal/server/auth"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		op   operation
		err  error
		want apiError
	}{
		{"no token", opAuthenticate, common.ErrNoToken, apiError{401, "Unauthorized", "No token provided"}},
		{"bad signature", opAuthenticate, auth.ErrSignatureMismatch, apiError{401, "Unauthorized", "Invalid token"}},
		{"expired", opAuthenticate, fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired), apiError{401, "Unauthorized", "Invalid token"}},
		{"deleted subject", opAuthenticate, fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrNotFound), apiError{401, "Unauthorized", "Invalid token"}},
		{"guard storage failure", opAuthenticate, boom, apiError{401, "Unauthorized", "Invalid token"}},
		{"login", opLogin, common.ErrInvalidCredentials, apiError{401, "Invalid credentials", "Invalid username or password"}},
		{"login storage", opLogin, boom, apiError{500, "Failed to login", "boom"}},
		{"old password", opUpdateUser, common.ErrInvalidOldPassword, apiError{401, "Invalid credentials", "Invalid old password"}},
		{"old password missing", opUpdateUser, common.ErrOldPasswordRequired, apiError{400, "Invalid request", "Old password is required"}},
		{"id generation", opCreateWallet, fmt.Errorf("%w: clock moved backwards", common.ErrIDGeneration), apiError{500, "Failed to generate id", "failed to generate id: clock moved backwards"}},
		{"hashing", opCreateUser, fmt.Errorf("%w: cost", common.ErrHashing), apiError{500, "Failed to hash password", "failed to hash password: cost"}},
		{"duplicate username", opCreateUser, fmt.Errorf("error creating user: %w", common.ErrConflict), apiError{422, "Failed to create user", "error creating user: already exists"}},
		{"user update", opUpdateUser, boom, apiError{422, "Failed to update user", "boom"}},
		{"user delete", opDeleteUser, boom, apiError{422, "Failed to delete user", "boom"}},
		{"wallet list", opListWallets, boom, apiError{500, "Failed to get wallets", "boom"}},
		{"wallet get missing", opGetWallet, fmt.Errorf("x: %w", common.ErrNotFound), apiError{404, "Wallet not found", "not found"}},
		{"wallet update missing", opUpdateWallet, common.ErrNotFound, apiError{404, "Wallet not found", "not found"}},
		{"wallet delete missing", opDeleteWallet, common.ErrNotFound, apiError{404, "Wallet not found", "not found"}},
		{"wallet create", opCreateWallet, boom, apiError{422, "Failed to create wallet", "boom"}},
		{"wallet update", opUpdateWallet, boom, apiError{422, "Failed to update wallet", "boom"}},
		{"body", opCreateWallet, &bodyError{"missing field `name`"}, apiError{400, "Invalid Body", "missing field `name`"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.op, tt.err))
		})
	}
}

func TestBodyError_IsInvalidBody(t *testing.T) {
	assert.ErrorIs(t, &bodyError{"x"}, common.ErrInvalidBody)
	assert.Equal(t, http.StatusBadRequest, classify(opLogin, &bodyError{"x"}).Code)
}
