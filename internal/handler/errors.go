package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query/path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingPathParam  = "Missing %s path parameter"

	// Wallet operation error messages
	ErrMsgGetWalletFailed       = "Failed to get wallet"
	ErrMsgCreditFailed          = "Failed to credit wallet"
	ErrMsgDebitFailed           = "Failed to debit wallet"
	ErrMsgGetTransactionsFailed = "Failed to get transaction history"

	// Shop operation error messages
	ErrMsgGetCatalogFailed     = "Failed to get catalog"
	ErrMsgGetItemFailed        = "Failed to get item"
	ErrMsgPurchaseFailed       = "Failed to purchase item"
	ErrMsgEquipFailed          = "Failed to equip item"
	ErrMsgUnequipFailed        = "Failed to unequip item"
	ErrMsgGetInventoryFailed   = "Failed to get inventory"
	ErrMsgSetAvailabilityError = "Failed to update item availability"

	// Monster operation error messages
	ErrMsgCreateMonsterFailed = "Failed to create monster"
	ErrMsgGetMonsterFailed    = "Failed to get monster"
	ErrMsgListMonstersFailed  = "Failed to list monsters"
	ErrMsgGetPriceFailed      = "Failed to get monster price"
	ErrMsgPerformActionFailed = "Failed to perform care action"
)
