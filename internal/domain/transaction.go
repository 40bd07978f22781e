package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionType discriminates the two sides of the ledger
type TransactionType string

const (
	TransactionEarn  TransactionType = "EARN"
	TransactionSpend TransactionType = "SPEND"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionEarn || t == TransactionSpend
}

// TransactionReason is the closed enumeration of balance-change causes
type TransactionReason string

const (
	ReasonFeedMonster    TransactionReason = "FEED_MONSTER"
	ReasonComfortMonster TransactionReason = "COMFORT_MONSTER"
	ReasonHugMonster     TransactionReason = "HUG_MONSTER"
	ReasonWakeMonster    TransactionReason = "WAKE_MONSTER"
	ReasonCreateMonster  TransactionReason = "CREATE_MONSTER"
	ReasonPurchaseItem   TransactionReason = "PURCHASE_ITEM"
	ReasonLevelUp        TransactionReason = "LEVEL_UP"
	ReasonInitialBonus   TransactionReason = "INITIAL_BONUS"
	ReasonQuestReward    TransactionReason = "QUEST_REWARD"
	ReasonAdminGrant     TransactionReason = "ADMIN_GRANT"
	ReasonAdminDeduct    TransactionReason = "ADMIN_DEDUCT"
)

var knownReasons = map[TransactionReason]struct{}{
	ReasonFeedMonster:    {},
	ReasonComfortMonster: {},
	ReasonHugMonster:     {},
	ReasonWakeMonster:    {},
	ReasonCreateMonster:  {},
	ReasonPurchaseItem:   {},
	ReasonLevelUp:        {},
	ReasonInitialBonus:   {},
	ReasonQuestReward:    {},
	ReasonAdminGrant:     {},
	ReasonAdminDeduct:    {},
}

// Valid reports whether r is a known transaction reason.
func (r TransactionReason) Valid() bool {
	_, ok := knownReasons[r]
	return ok
}

// Transaction is one immutable ledger entry. Once constructed it is never
// mutated or deleted; the transaction log is append-only.
type Transaction struct {
	ID          string            `json:"id" db:"transaction_id"`
	WalletID    string            `json:"wallet_id" db:"wallet_id"`
	Type        TransactionType   `json:"type" db:"tx_type"`
	Amount      int               `json:"amount" db:"amount"`
	Reason      TransactionReason `json:"reason" db:"reason"`
	Description string            `json:"description,omitempty" db:"description"`
	Metadata    map[string]any    `json:"metadata,omitempty" db:"metadata"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
}

// NewTransaction validates and constructs a ledger entry.
func NewTransaction(walletID string, txType TransactionType, amount int, reason TransactionReason, description string) (*Transaction, error) {
	if walletID == "" {
		return nil, fmt.Errorf("%w: wallet id is required", ErrInvalidInput)
	}
	if !txType.Valid() {
		return nil, fmt.Errorf("%w: transaction type %q", ErrInvalidInput, txType)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	if !reason.Valid() {
		return nil, fmt.Errorf("%w: transaction reason %q", ErrInvalidInput, reason)
	}
	if len(description) > MaxTransactionDescriptionLength {
		return nil, fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, MaxTransactionDescriptionLength)
	}
	return &Transaction{
		ID:          uuid.NewString(),
		WalletID:    walletID,
		Type:        txType,
		Amount:      amount,
		Reason:      reason,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// SignedAmount returns the amount with the sign the ledger applies to the
// balance: positive for EARN, negative for SPEND.
func (t *Transaction) SignedAmount() int {
	if t.Type == TransactionSpend {
		return -t.Amount
	}
	return t.Amount
}
