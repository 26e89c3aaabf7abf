package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/spende/internal/logging"
	"github.com/dmitrijs2005/spende/internal/server/models"
	"github.com/dmitrijs2005/spende/internal/server/services"
)

// UserService is what the handlers need from services.UserService.
type UserService interface {
	Register(ctx context.Context, in services.NewUser) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	Update(ctx context.Context, user *models.User, upd services.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, user *models.User) (*models.User, error)
	TokenValidity() time.Duration
}

// WalletService is what the handlers need from services.WalletService.
type WalletService interface {
	List(ctx context.Context, userID string) ([]*models.Wallet, error)
	Get(ctx context.Context, userID, walletID string) (*models.Wallet, error)
	Create(ctx context.Context, userID string, in services.NewWallet) (*models.Wallet, error)
	Update(ctx context.Context, userID, walletID string, upd services.WalletUpdate) (*models.Wallet, error)
	Delete(ctx context.Context, userID, walletID string) (*models.Wallet, error)
}

// Handler holds the HTTP handlers and the guard.
type Handler struct {
	users   UserService
	wallets WalletService
	log     logging.Logger
}

func NewHandler(users UserService, wallets WalletService, log logging.Logger) *Handler {
	return &Handler{users: users, wallets: wallets, log: log}
}

// fail writes the classified error and logs the internal one.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op operation, err error) {
	e := classify(op, err)
	switch {
	case e.Code >= http.StatusInternalServerError:
		h.log.Error(r.Context(), "request failed", "status", e.Code, "reason", e.Reason, "error", err)
	case op == opAuthenticate:
		h.log.Warn(r.Context(), "unauthenticated request", "path", r.URL.Path, "error", err)
	default:
		h.log.Debug(r.Context(), "request rejected", "status", e.Code, "reason", e.Reason, "error", err)
	}
	writeAPIError(w, e)
}
