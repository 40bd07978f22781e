package domain

// Typed event payloads published on the in-process bus.
// Versioned by name (V1) so consumers can migrate when shapes change.

// ItemPurchasedPayload is emitted after a successful shop purchase commit.
type ItemPurchasedPayload struct {
	OwnerID         string `json:"owner_id"`
	MonsterID       string `json:"monster_id"`
	ShopItemID      string `json:"shop_item_id"`
	InventoryItemID string `json:"inventory_item_id"`
	Category        string `json:"category"`
	Price           int    `json:"price"`
	NewBalance      int    `json:"new_balance"`
	Timestamp       int64  `json:"timestamp"`
}

// ItemEquippedPayload is emitted after an equip or unequip commit.
type ItemEquippedPayload struct {
	MonsterID       string `json:"monster_id"`
	InventoryItemID string `json:"inventory_item_id"`
	Category        string `json:"category"`
	Equipped        bool   `json:"equipped"`
	Timestamp       int64  `json:"timestamp"`
}

// MonsterCreatedPayload is emitted when a new monster is created.
type MonsterCreatedPayload struct {
	OwnerID   string `json:"owner_id"`
	MonsterID string `json:"monster_id"`
	Name      string `json:"name"`
	PricePaid int    `json:"price_paid"`
	Timestamp int64  `json:"timestamp"`
}

// MonsterActionPayload is emitted after a care action resolution is persisted.
type MonsterActionPayload struct {
	OwnerID   string `json:"owner_id"`
	MonsterID string `json:"monster_id"`
	Action    string `json:"action"`
	OldState  string `json:"old_state"`
	NewState  string `json:"new_state"`
	XP        int    `json:"xp"`
	Level     int    `json:"level"`
	Rewarded  bool   `json:"rewarded"`
	Reward    int    `json:"reward"`
	Timestamp int64  `json:"timestamp"`
}

// MonsterLeveledUpPayload is emitted once per resolution that raised the
// level, even when the XP gain jumped several levels at once.
type MonsterLeveledUpPayload struct {
	OwnerID   string `json:"owner_id"`
	MonsterID string `json:"monster_id"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	Timestamp int64  `json:"timestamp"`
}

// WalletChangedPayload is emitted after any ledger credit or debit.
type WalletChangedPayload struct {
	WalletID   string `json:"wallet_id"`
	OwnerID    string `json:"owner_id"`
	Type       string `json:"type"`
	Amount     int    `json:"amount"`
	Reason     string `json:"reason"`
	NewBalance int    `json:"new_balance"`
	Timestamp  int64  `json:"timestamp"`
}
