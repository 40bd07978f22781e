package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Wallet holds a single player's TC balance plus lifetime earn/spend totals.
// Balance only ever changes through AddCoins/SpendCoins, which enforce the
// numeric invariants. Persisting the wallet and writing the matching ledger
// Transaction is the calling service's job, not the wallet's.
type Wallet struct {
	ID          string    `json:"id" db:"wallet_id"`
	OwnerID     string    `json:"owner_id" db:"owner_id"`
	Balance     int       `json:"balance" db:"balance"`
	Currency    string    `json:"currency" db:"currency"`
	TotalEarned int       `json:"total_earned" db:"total_earned"`
	TotalSpent  int       `json:"total_spent" db:"total_spent"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// NewWallet creates a wallet for ownerID with the initial bonus applied.
// The bonus is folded into TotalEarned; the caller records the matching
// INITIAL_BONUS transaction.
func NewWallet(ownerID string) *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Balance:     InitialBonus,
		Currency:    CurrencyTC,
		TotalEarned: InitialBonus,
		TotalSpent:  0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AddCoins credits the wallet. Rejects non-positive amounts and any credit
// that would push the balance over MaxBalance; the wallet is unchanged on error.
func (w *Wallet) AddCoins(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	if w.Balance+amount > MaxBalance {
		return fmt.Errorf("%w: balance %d + %d exceeds %d", ErrBalanceCapExceeded, w.Balance, amount, MaxBalance)
	}
	w.Balance += amount
	w.TotalEarned += amount
	w.UpdatedAt = time.Now().UTC()
	return nil
}

// SpendCoins debits the wallet. Rejects non-positive amounts and overdrafts;
// the wallet is unchanged on error.
func (w *Wallet) SpendCoins(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	if w.Balance < amount {
		return fmt.Errorf("%w: required %d, available %d", ErrInsufficientFunds, amount, w.Balance)
	}
	w.Balance -= amount
	w.TotalSpent += amount
	w.UpdatedAt = time.Now().UTC()
	return nil
}

// HasSufficientBalance reports whether amount could be spent right now.
func (w *Wallet) HasSufficientBalance(amount int) bool {
	return amount > 0 && w.Balance >= amount
}

// SpendingRatio returns TotalSpent/TotalEarned, or 0 when nothing was earned.
func (w *Wallet) SpendingRatio() float64 {
	if w.TotalEarned == 0 {
		return 0
	}
	return float64(w.TotalSpent) / float64(w.TotalEarned)
}

// NetProfit returns lifetime earnings minus lifetime spending.
func (w *Wallet) NetProfit() int {
	return w.TotalEarned - w.TotalSpent
}
