package monster

// Log message constants
const (
	LogMsgCreateMonsterCalled = "CreateMonster called"
	LogMsgPerformActionCalled = "PerformAction called"
	LogMsgGetMonsterCalled    = "GetMonster called"
	LogMsgListMonstersCalled  = "ListMonsters called"
	LogMsgMonsterCreated      = "Monster created"
	LogMsgActionResolved      = "Care action resolved"
	LogMsgMonsterLeveledUp    = "Monster leveled up"
)

// Error message formats
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetMonsterFailed        = "failed to get monster: %w"
	ErrMsgCountMonstersFailed     = "failed to count monsters: %w"
	ErrMsgCreateMonsterFailed     = "failed to create monster: %w"
	ErrMsgUpdateMonsterFailed     = "failed to update monster: %w"
	ErrMsgGetWalletFailed         = "failed to get wallet: %w"
	ErrMsgUpdateWalletFailed      = "failed to update wallet: %w"
	ErrMsgRecordTransactionFailed = "failed to record transaction: %w"
)
