package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is the decoded {"error": {...}} envelope.
type APIError struct {
	Code        int    `json:"code"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%d %s", e.Code, e.Reason)
	}
	return fmt.Sprintf("%d %s: %s", e.Code, e.Reason, e.Description)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Code == http.StatusUnauthorized
}
