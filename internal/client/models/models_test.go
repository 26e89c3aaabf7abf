package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallet_String(t *testing.T) {
	w := &Wallet{ID: "42", Name: "Cash", Currency: "EUR", Rational: 0.5, Balance: 12.345}
	s := w.String()

	assert.Contains(t, s, "42")
	assert.Contains(t, s, "Cash")
	assert.Contains(t, s, "12.35 EUR")
	assert.Contains(t, s, "rational 0.5")
}

func TestWalletUpdate_OmitsUnsetFields(t *testing.T) {
	name := "Savings"
	b, err := json.Marshal(WalletUpdate{Name: &name})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Savings"}`, string(b))
}

func TestNewWallet_RationalOptional(t *testing.T) {
	b, err := json.Marshal(NewWallet{Name: "Cash", Currency: "EUR"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Cash","currency":"EUR"}`, string(b))

	zero := 0.0
	b, err = json.Marshal(NewWallet{Name: "Cash", Currency: "EUR", Rational: &zero})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Cash","currency":"EUR","rational":0}`, string(b))
}

func TestUserUpdate_PasswordChange(t *testing.T) {
	pw, old := "new", "old"
	b, err := json.Marshal(UserUpdate{Password: &pw, OldPassword: &old})
	require.NoError(t, err)
	assert.JSONEq(t, `{"password":"new","old_password":"old"}`, string(b))
}
