package shop

// Log message constants
const (
	LogMsgGetCatalogCalled   = "GetCatalog called"
	LogMsgGetItemCalled      = "GetItem called"
	LogMsgGetInventoryCalled = "GetInventory called"
	LogMsgPurchaseCalled     = "Purchase called"
	LogMsgEquipCalled        = "Equip called"
	LogMsgUnequipCalled      = "Unequip called"
	LogMsgItemPurchased      = "Item purchased"
	LogMsgItemEquipped       = "Item equipped"
	LogMsgItemUnequipped     = "Item unequipped"
	LogMsgCatalogCacheHit    = "Catalog served from cache"
	LogMsgCatalogDesync      = "Inventory item references a missing catalog entry"
	LogMsgCategorySwap       = "Unequipped item of same category"
)

// Error message formats
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetItemFailed           = "failed to get shop item: %w"
	ErrMsgGetMonsterFailed        = "failed to get monster: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory: %w"
	ErrMsgGetWalletFailed         = "failed to get wallet: %w"
	ErrMsgUpdateWalletFailed      = "failed to update wallet: %w"
	ErrMsgRecordTransactionFailed = "failed to record transaction: %w"
	ErrMsgAddItemFailed           = "failed to add inventory item: %w"
	ErrMsgUpdateItemFailed        = "failed to update inventory item: %w"
)

// CatalogSchemaPath is the JSON schema the catalog config is checked
// against before parsing. Relative to the project root.
const CatalogSchemaPath = "configs/schemas/shop_items.schema.json"

// Catalog cache keys. The cache stores whole result sets, keyed by query
// shape; any catalog write purges everything.
const (
	cacheKeyAvailable      = "catalog:available"
	cacheKeyCategoryPrefix = "catalog:category:"
)
