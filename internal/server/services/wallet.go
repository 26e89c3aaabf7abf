package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/spende/internal/common"
	"github.com/dmitrijs2005/spende/internal/dbx"
	"github.com/dmitrijs2005/spende/internal/idgen"
	"github.com/dmitrijs2005/spende/internal/server/models"
	"github.com/dmitrijs2005/spende/internal/server/repositories/repomanager"
	"github.com/jmoiron/sqlx"
)

// NewWallet is a create request. Rational defaults to models.DefaultRational.
type NewWallet struct {
	Name     string
	Currency string
	Rational *float64
}

// WalletUpdate carries the fields to change; nil means keep. Balance is not
// updatable.
type WalletUpdate struct {
	Name     *string
	Currency *string
	Rational *float64
}

// WalletService is the only path to wallets. Every method takes the
// authenticated user's id and never touches another user's rows; a foreign
// wallet is reported as common.ErrNotFound, same as a missing one.
type WalletService struct {
	db          *sqlx.DB
	repomanager repomanager.RepositoryManager
	ids         idgen.Generator
}

func NewWalletService(db *sqlx.DB, m repomanager.RepositoryManager, ids idgen.Generator) *WalletService {
	return &WalletService{db: db, repomanager: m, ids: ids}
}

func (s *WalletService) List(ctx context.Context, userID string) ([]*models.Wallet, error) {
	wallets, err := s.repomanager.Wallets(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing wallets: %w", err)
	}
	return wallets, nil
}

func (s *WalletService) Get(ctx context.Context, userID, walletID string) (*models.Wallet, error) {
	w, err := s.repomanager.Wallets(s.db).GetForUser(ctx, walletID, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting wallet: %w", err)
	}
	return w, nil
}

func (s *WalletService) Create(ctx context.Context, userID string, in NewWallet) (*models.Wallet, error) {
	id, err := s.ids.NextID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrIDGeneration, err)
	}

	rational := models.DefaultRational
	if in.Rational != nil {
		rational = *in.Rational
	}

	w := &models.Wallet{
		ID:       id,
		UserID:   userID,
		Name:     in.Name,
		Currency: in.Currency,
		Rational: rational,
	}
	created, err := s.repomanager.Wallets(s.db).Create(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("error creating wallet: %w", err)
	}
	return created, nil
}

// Update overwrites the provided fields. An absent rational keeps the stored
// value.
func (s *WalletService) Update(ctx context.Context, userID, walletID string, upd WalletUpdate) (*models.Wallet, error) {
	var out *models.Wallet
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Wallets(tx)

		w, err := repo.GetForUser(ctx, walletID, userID)
		if err != nil {
			return err
		}

		if upd.Name != nil {
			w.Name = *upd.Name
		}
		if upd.Currency != nil {
			w.Currency = *upd.Currency
		}
		if upd.Rational != nil {
			w.Rational = *upd.Rational
		}

		out, err = repo.Update(ctx, w)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error updating wallet: %w", err)
	}
	return out, nil
}

// Delete removes the wallet and returns it as it was.
func (s *WalletService) Delete(ctx context.Context, userID, walletID string) (*models.Wallet, error) {
	var out *models.Wallet
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Wallets(tx)

		w, err := repo.GetForUser(ctx, walletID, userID)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, walletID, userID); err != nil {
			return err
		}
		out = w
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error deleting wallet: %w", err)
	}
	return out, nil
}
