package common

import "time"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// DefaultSessionValidity bounds the lifetime of a session token and its cookie.
const DefaultSessionValidity = 7 * 24 * time.Hour

// RequestIDHeaderName is echoed back on every response and may be supplied
// by callers to correlate logs.
const RequestIDHeaderName = "X-Request-ID"
