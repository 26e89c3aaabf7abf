package cli

import (
	"context"
	"errors"
	"log"

	"github.com/dmitrijs2005/spende/internal/client/client"
	"github.com/dmitrijs2005/spende/internal/client/models"
)

// The cache is best effort: failures are logged and never fail a command.

func (a *App) canUseCache() bool {
	return a.cache != nil && a.user != nil
}

// offline reports whether err means the server could not be reached and a
// cached answer may be shown instead.
func (a *App) offline(err error) bool {
	return errors.Is(err, client.ErrUnavailable) && a.canUseCache()
}

func (a *App) cacheAll(ctx context.Context, ws []*models.Wallet) {
	if !a.canUseCache() {
		return
	}
	if err := a.cache.ReplaceAll(ctx, a.user.Username, ws); err != nil {
		log.Printf("cache: %v", err)
	}
}

func (a *App) cacheOne(ctx context.Context, w *models.Wallet) {
	if !a.canUseCache() {
		return
	}
	if err := a.cache.Upsert(ctx, a.user.Username, w); err != nil {
		log.Printf("cache: %v", err)
	}
}

func (a *App) uncache(ctx context.Context, id string) {
	if !a.canUseCache() {
		return
	}
	if err := a.cache.DeleteByID(ctx, a.user.Username, id); err != nil {
		log.Printf("cache: %v", err)
	}
}

// clearCache drops the current user's cached wallets, e.g. on logout.
func (a *App) clearCache(ctx context.Context) {
	if !a.canUseCache() {
		return
	}
	if err := a.cache.Clear(ctx, a.user.Username); err != nil {
		log.Printf("cache: %v", err)
	}
}
