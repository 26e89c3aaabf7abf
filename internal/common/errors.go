// Package common defines shared constants and sentinel errors used across
// the spende server and its CLI client. Callers should use errors.Is to
// match these values; the HTTP layer turns them into the wire envelope.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// Session errors. Every token failure wraps ErrInvalidToken so callers
	// can treat them alike.
	ErrNoToken      = errors.New("no token provided")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Credential errors.
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidOldPassword  = errors.New("invalid old password")
	ErrOldPasswordRequired = errors.New("old password is required")

	// Request errors.
	ErrInvalidBody = errors.New("invalid body")

	// Internal failures of external collaborators.
	ErrHashing      = errors.New("failed to hash password")
	ErrIDGeneration = errors.New("failed to generate id")
)
