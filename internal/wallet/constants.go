package wallet

// Log message constants
const (
	LogMsgGetOrCreateCalled     = "GetOrCreateWallet called"
	LogMsgGetBalanceCalled      = "GetBalance called"
	LogMsgCreditCalled          = "Credit called"
	LogMsgDebitCalled           = "Debit called"
	LogMsgGetTransactionsCalled = "GetTransactions called"
	LogMsgWalletCreated         = "Wallet created with initial bonus"
	LogMsgWalletCredited        = "Wallet credited"
	LogMsgWalletDebited         = "Wallet debited"
)

// Error message formats
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetWalletFailed         = "failed to get wallet: %w"
	ErrMsgCreateWalletFailed      = "failed to create wallet: %w"
	ErrMsgUpdateWalletFailed      = "failed to update wallet: %w"
	ErrMsgRecordTransactionFailed = "failed to record transaction: %w"
)
