package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/spende/internal/client/models"
)

// walletID returns id, prompting for it when the command had no argument.
func (a *App) walletID(id, action string) (string, error) {
	if id != "" {
		return id, nil
	}
	id, err := getSimpleText(a.reader, "Enter wallet id to "+action, a.out)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("wallet id is required")
	}
	return id, nil
}

func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	wallets, err := a.api.ListWallets(ctx)
	if a.offline(err) {
		_ = a.handleErr(err)
		cached, cerr := a.cache.GetAll(ctx, a.user.Username)
		if cerr != nil {
			return err
		}
		fmt.Fprintln(a.out, "Server unavailable, showing cached wallets")
		wallets = cached
	} else {
		if err := a.handleErr(err); err != nil {
			return err
		}
		a.cacheAll(ctx, wallets)
	}

	if len(wallets) == 0 {
		fmt.Fprintln(a.out, "No wallets yet, use 'add'")
		return nil
	}
	for _, w := range wallets {
		fmt.Fprintln(a.out, w)
	}
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	id, err := a.walletID(id, "show")
	if err != nil {
		return err
	}
	w, err := a.api.GetWallet(ctx, id)
	if a.offline(err) {
		_ = a.handleErr(err)
		cached, cerr := a.cache.GetByID(ctx, a.user.Username, id)
		if cerr != nil {
			return err
		}
		fmt.Fprintln(a.out, "Server unavailable, showing cached wallet")
		w = cached
	} else {
		if err := a.handleErr(err); err != nil {
			return err
		}
		a.cacheOne(ctx, w)
	}

	fmt.Fprintf(a.out, "ID:       %s\n", w.ID)
	fmt.Fprintf(a.out, "Name:     %s\n", w.Name)
	fmt.Fprintf(a.out, "Currency: %s\n", w.Currency)
	fmt.Fprintf(a.out, "Rational: %g\n", w.Rational)
	fmt.Fprintf(a.out, "Balance:  %.2f\n", w.Balance)
	return nil
}

// Add prompts for a new wallet. An empty rational uses the server default.
func (a *App) Add(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Wallet name", a.out)
	if err != nil {
		return err
	}
	currency, err := getSimpleText(a.reader, "Currency", a.out)
	if err != nil {
		return err
	}
	rational, err := GetOptionalFloat(a.reader, "Rational (empty for 1)", a.out)
	if err != nil {
		return err
	}

	w, err := a.api.CreateWallet(ctx, models.NewWallet{Name: name, Currency: currency, Rational: rational})
	if err := a.handleErr(err); err != nil {
		return err
	}
	a.cacheOne(ctx, w)
	fmt.Fprintf(a.out, "Created wallet %s\n", w.ID)
	return nil
}

// Edit changes any subset of name, currency and rational. The balance is
// not editable.
func (a *App) Edit(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	id, err := a.walletID(id, "edit")
	if err != nil {
		return err
	}
	name, err := GetOptionalText(a.reader, "New name", a.out)
	if err != nil {
		return err
	}
	currency, err := GetOptionalText(a.reader, "New currency", a.out)
	if err != nil {
		return err
	}
	rational, err := GetOptionalFloat(a.reader, "New rational (empty to keep)", a.out)
	if err != nil {
		return err
	}

	w, err := a.api.UpdateWallet(ctx, id, models.WalletUpdate{Name: name, Currency: currency, Rational: rational})
	if err := a.handleErr(err); err != nil {
		return err
	}
	a.cacheOne(ctx, w)
	fmt.Fprintln(a.out, w)
	return nil
}

func (a *App) Remove(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	id, err := a.walletID(id, "remove")
	if err != nil {
		return err
	}
	w, err := a.api.DeleteWallet(ctx, id)
	if err := a.handleErr(err); err != nil {
		return err
	}
	a.uncache(ctx, id)
	fmt.Fprintf(a.out, "Removed wallet %s (%s)\n", w.ID, w.Name)
	return nil
}
