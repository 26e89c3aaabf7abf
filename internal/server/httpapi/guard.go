package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/spende/internal/server/models"
)

type userCtxKey struct{}

// Guard resolves the session cookie to a stored user before calling next.
// Requests without a valid session get 401 and never reach next.
func (h *Handler) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := h.users.Authenticate(r.Context(), sessionToken(r))
		if err != nil {
			h.fail(w, r, opAuthenticate, err)
			return
		}
		ctx := context.WithValue(r.Context(), userCtxKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the user resolved by Guard.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userCtxKey{}).(*models.User)
	return u, ok && u != nil
}

// mustUser is used by handlers mounted behind Guard.
func mustUser(r *http.Request) *models.User {
	u, ok := UserFromContext(r.Context())
	if !ok {
		panic("httpapi: handler mounted without Guard")
	}
	return u
}
