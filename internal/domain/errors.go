package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Wallet errors
	ErrMsgWalletNotFound     = "wallet not found"
	ErrMsgInvalidAmount      = "amount must be a positive integer"
	ErrMsgInsufficientFunds  = "insufficient funds"
	ErrMsgBalanceCapExceeded = "balance cap exceeded"
	ErrMsgTxNotFound         = "transaction not found"

	// Catalog errors
	ErrMsgItemNotFound     = "item not found"
	ErrMsgItemNotAvailable = "item is not available"

	// Inventory errors
	ErrMsgInventoryItemNotFound = "inventory item not found"
	ErrMsgItemAlreadyOwned      = "item already owned"
	ErrMsgInventoryFull         = "inventory is full"
	ErrMsgOwnershipMismatch     = "item does not belong to this inventory"
	ErrMsgDuplicateItem         = "duplicate inventory item"

	// Monster errors
	ErrMsgMonsterNotFound = "monster not found"
	ErrMsgInvalidAction   = "unrecognized care action"

	// Data-integrity errors
	ErrMsgCatalogDesync = "inventory references missing catalog item"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Wallet errors
	ErrWalletNotFound      = errors.New(ErrMsgWalletNotFound)
	ErrInvalidAmount       = errors.New(ErrMsgInvalidAmount)
	ErrInsufficientFunds   = errors.New(ErrMsgInsufficientFunds)
	ErrBalanceCapExceeded  = errors.New(ErrMsgBalanceCapExceeded)
	ErrTransactionNotFound = errors.New(ErrMsgTxNotFound)

	// Catalog errors
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrItemNotAvailable = errors.New(ErrMsgItemNotAvailable)

	// Inventory errors
	ErrInventoryItemNotFound = errors.New(ErrMsgInventoryItemNotFound)
	ErrItemAlreadyOwned      = errors.New(ErrMsgItemAlreadyOwned)
	ErrInventoryFull         = errors.New(ErrMsgInventoryFull)
	ErrOwnershipMismatch     = errors.New(ErrMsgOwnershipMismatch)
	ErrDuplicateItem         = errors.New(ErrMsgDuplicateItem)

	// Monster errors
	ErrMonsterNotFound = errors.New(ErrMsgMonsterNotFound)
	ErrInvalidAction   = errors.New(ErrMsgInvalidAction)

	// Data-integrity errors - unexpected, logged as faults rather than
	// surfaced as business conflicts
	ErrCatalogDesync = errors.New(ErrMsgCatalogDesync)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
