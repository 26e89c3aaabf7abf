package models

import "fmt"

// Wallet is a wallet as returned by the API. The db tags map the offline
// cache columns.
type Wallet struct {
	ID       string  `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Currency string  `db:"currency" json:"currency"`
	Rational float64 `db:"rational" json:"rational"`
	Balance  float64 `db:"balance" json:"balance"`
}

// String renders the wallet as a single line for the CLI.
func (w *Wallet) String() string {
	return fmt.Sprintf("%s  %-20s %12.2f %s (rational %g)", w.ID, w.Name, w.Balance, w.Currency, w.Rational)
}

// NewWallet is the create request. A nil Rational lets the server apply its
// default of 1.
type NewWallet struct {
	Name     string   `json:"name"`
	Currency string   `json:"currency"`
	Rational *float64 `json:"rational,omitempty"`
}

// WalletUpdate carries the fields to change; nil fields are left alone.
type WalletUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Currency *string  `json:"currency,omitempty"`
	Rational *float64 `json:"rational,omitempty"`
}
