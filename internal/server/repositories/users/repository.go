package users

import (
	"context"

	"github.com/dmitrijs2005/spende/internal/server/models"
)

// Repository is the credential store. Lookups return common.ErrNotFound
// when no row matches; username collisions return common.ErrConflict.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
