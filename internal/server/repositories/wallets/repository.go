package wallets

import (
	"context"

	"github.com/dmitrijs2005/spende/internal/server/models"
)

// Repository stores wallets. Every read and write is filtered by owner:
// a wallet of another user behaves exactly like a missing one
// (common.ErrNotFound).
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Wallet, error)
	GetForUser(ctx context.Context, id, userID string) (*models.Wallet, error)
	Create(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error)
	Update(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error)
	Delete(ctx context.Context, id, userID string) error
}
