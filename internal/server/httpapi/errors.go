// Package httpapi is the HTTP surface of the server: chi routing, the session
// guard, request decoding and the JSON envelopes.
//
// Successful responses are {"data": ...}. Failures are
// {"error": {"code", "reason", "description"}} and are produced only by
// classify, which collapses internal errors into the public taxonomy.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/spende/internal/common"
)

type apiError struct {
	Code        int    `json:"code"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

type dataEnvelope struct {
	Data any `json:"data"`
}

// operation names the handler an error came from and how an otherwise
// unclassified failure of it is reported.
type operation struct {
	status int
	reason string
}

var (
	opAuthenticate = operation{http.StatusUnauthorized, "Unauthorized"}
	opCreateUser   = operation{http.StatusUnprocessableEntity, "Failed to create user"}
	opLogin        = operation{http.StatusInternalServerError, "Failed to login"}
	opUpdateUser   = operation{http.StatusUnprocessableEntity, "Failed to update user"}
	opDeleteUser   = operation{http.StatusUnprocessableEntity, "Failed to delete user"}
	opListWallets  = operation{http.StatusInternalServerError, "Failed to get wallets"}
	opGetWallet    = operation{http.StatusInternalServerError, "Failed to get wallet"}
	opCreateWallet = operation{http.StatusUnprocessableEntity, "Failed to create wallet"}
	opUpdateWallet = operation{http.StatusUnprocessableEntity, "Failed to update wallet"}
	opDeleteWallet = operation{http.StatusUnprocessableEntity, "Failed to delete wallet"}
)

func (op operation) isWallet() bool {
	switch op {
	case opGetWallet, opUpdateWallet, opDeleteWallet:
		return true
	}
	return false
}

// classify maps an internal error to the wire error. Order matters: the token
// errors are checked before anything a wrapped cause could also match.
func classify(op operation, err error) apiError {
	var be *bodyError
	switch {
	case errors.As(err, &be):
		return apiError{http.StatusBadRequest, "Invalid Body", be.msg}
	case errors.Is(err, common.ErrNoToken):
		return apiError{http.StatusUnauthorized, "Unauthorized", "No token provided"}
	case errors.Is(err, common.ErrInvalidToken):
		return apiError{http.StatusUnauthorized, "Unauthorized", "Invalid token"}
	case errors.Is(err, common.ErrInvalidCredentials):
		return apiError{http.StatusUnauthorized, "Invalid credentials", "Invalid username or password"}
	case errors.Is(err, common.ErrInvalidOldPassword):
		return apiError{http.StatusUnauthorized, "Invalid credentials", "Invalid old password"}
	case errors.Is(err, common.ErrOldPasswordRequired):
		return apiError{http.StatusBadRequest, "Invalid request", "Old password is required"}
	case errors.Is(err, common.ErrIDGeneration):
		return apiError{http.StatusInternalServerError, "Failed to generate id", err.Error()}
	case errors.Is(err, common.ErrHashing):
		return apiError{http.StatusInternalServerError, "Failed to hash password", err.Error()}
	case op.isWallet() && errors.Is(err, common.ErrNotFound):
		return apiError{http.StatusNotFound, "Wallet not found", common.ErrNotFound.Error()}
	case op == opAuthenticate:
		return apiError{http.StatusUnauthorized, "Unauthorized", "Invalid token"}
	default:
		return apiError{op.status, op.reason, err.Error()}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, dataEnvelope{Data: data})
}

func writeAPIError(w http.ResponseWriter, e apiError) {
	writeJSON(w, e.Code, errorEnvelope{Error: e})
}
