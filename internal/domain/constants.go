package domain

// Currency constants
const (
	// CurrencyTC is the only currency the game knows about ("Tamacoin")
	CurrencyTC = "TC"

	// MaxBalance is the hard cap on a wallet balance
	MaxBalance = 999_999

	// InitialBonus is granted when a wallet is first created
	InitialBonus = 100

	// MaxTransactionDescriptionLength bounds the optional free-text field
	MaxTransactionDescriptionLength = 200
)

// Inventory constants
const (
	// MaxInventoryItems is the per-monster cap on owned items
	MaxInventoryItems = 150
)

// ShopItem validation bounds
const (
	MinItemNameLength = 3
	MaxItemNameLength = 50
	MinItemPrice      = 1
	MaxItemPrice      = 999_999
)

// Progression constants
const (
	// XPPerLevel is the XP span of a single level
	XPPerLevel = 100

	// XPGainPerAction is awarded when a care action matches the monster's state
	XPGainPerAction = 10

	// XPLossPerWrongAction is deducted (floored at 0) on a mismatched action
	XPLossPerWrongAction = 10

	// MinActionReward is the floor of the per-action coin reward
	MinActionReward = 2
)

// Monster creation pricing
const (
	// FreeMonsterCount is how many monsters a player gets for free
	FreeMonsterCount = 2

	// MonsterBasePrice is the price of the first paid monster
	MonsterBasePrice = 50

	// MonsterPriceIncrement is added for each monster beyond the free ones
	MonsterPriceIncrement = 50
)

// Event type constants shared between services and handlers
const (
	EventTypeItemPurchased      = "item.purchased"
	EventTypeItemEquipped       = "item.equipped"
	EventTypeItemUnequipped     = "item.unequipped"
	EventTypeMonsterCreated     = "monster.created"
	EventTypeMonsterAction      = "monster.action.resolved"
	EventTypeMonsterLeveledUp   = "monster.leveled_up"
	EventTypeWalletCredited     = "wallet.credited"
	EventTypeWalletDebited      = "wallet.debited"
)
