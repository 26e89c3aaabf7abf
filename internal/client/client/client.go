// Package client talks to the spende HTTP API.
//
// HTTPClient keeps the session cookie itself rather than relying on a cookie
// jar, so a Secure cookie still reaches a plain-HTTP development server.
// Failures come back as *APIError; 401 answers also match ErrUnauthorized and
// transport failures match ErrUnavailable.
package client

import (
	"context"

	"github.com/dmitrijs2005/spende/internal/client/models"
)

type Client interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, name, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateUser(ctx context.Context, upd models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context) (*models.User, error)
	ListWallets(ctx context.Context) ([]*models.Wallet, error)
	GetWallet(ctx context.Context, id string) (*models.Wallet, error)
	CreateWallet(ctx context.Context, w models.NewWallet) (*models.Wallet, error)
	UpdateWallet(ctx context.Context, id string, upd models.WalletUpdate) (*models.Wallet, error)
	DeleteWallet(ctx context.Context, id string) (*models.Wallet, error)
}
