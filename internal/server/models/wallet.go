package models

// DefaultRational is the conversion factor of a wallet created without one.
const DefaultRational = 1.0

// Wallet is owned by exactly one user. UserID is not part of the public
// projection: the owner is always the caller.
type Wallet struct {
	ID       string  `db:"id" json:"id"`
	UserID   string  `db:"user_id" json:"-"`
	Name     string  `db:"name" json:"name"`
	Currency string  `db:"currency" json:"currency"`
	Rational float64 `db:"rational" json:"rational"`
	Balance  float64 `db:"balance" json:"balance"`
}
