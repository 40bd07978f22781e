package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InventoryItem is one owned copy of a ShopItem, scoped to exactly one
// monster. Equip/Unequip flip only the local flag; the one-equipped-item-
// per-category rule lives in the shop equip orchestrator, not here.
type InventoryItem struct {
	ID          string    `json:"id" db:"inventory_item_id"`
	ItemID      string    `json:"item_id" db:"item_id"`
	MonsterID   string    `json:"monster_id" db:"monster_id"`
	OwnerID     string    `json:"owner_id" db:"owner_id"`
	IsEquipped  bool      `json:"is_equipped" db:"is_equipped"`
	PurchasedAt time.Time `json:"purchased_at" db:"purchased_at"`
}

// NewInventoryItem constructs an owned copy of itemID for (ownerID, monsterID),
// unequipped, purchased now.
func NewInventoryItem(itemID, monsterID, ownerID string) (*InventoryItem, error) {
	if itemID == "" || monsterID == "" || ownerID == "" {
		return nil, fmt.Errorf("%w: item, monster and owner ids are required", ErrInvalidInput)
	}
	return &InventoryItem{
		ID:          uuid.NewString(),
		ItemID:      itemID,
		MonsterID:   monsterID,
		OwnerID:     ownerID,
		IsEquipped:  false,
		PurchasedAt: time.Now().UTC(),
	}, nil
}

// Equip marks the item as worn.
func (i *InventoryItem) Equip() { i.IsEquipped = true }

// Unequip marks the item as not worn.
func (i *InventoryItem) Unequip() { i.IsEquipped = false }

// ToggleEquipped flips the equip flag.
func (i *InventoryItem) ToggleEquipped() { i.IsEquipped = !i.IsEquipped }

// Inventory is the aggregate view over one monster's InventoryItems. It is
// constructed on demand from persisted items and never stored itself.
type Inventory struct {
	MonsterID string
	OwnerID   string
	Items     []*InventoryItem
}

// NewInventory builds the aggregate for (ownerID, monsterID) from persisted
// items, enforcing ownership and uniqueness on the way in.
func NewInventory(monsterID, ownerID string, items []*InventoryItem) (*Inventory, error) {
	inv := &Inventory{MonsterID: monsterID, OwnerID: ownerID}
	for _, item := range items {
		if err := inv.AddItem(item); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// AddItem appends an item to the aggregate. Fails when the inventory is at
// capacity, the item belongs to another owner/monster, or the id is already
// present. Duplicate ItemIDs (two copies of the same catalog item) are allowed.
func (inv *Inventory) AddItem(item *InventoryItem) error {
	if len(inv.Items) >= MaxInventoryItems {
		return fmt.Errorf("%w: %d items", ErrInventoryFull, MaxInventoryItems)
	}
	if item.OwnerID != inv.OwnerID || item.MonsterID != inv.MonsterID {
		return fmt.Errorf("%w: item %s", ErrOwnershipMismatch, item.ID)
	}
	for _, existing := range inv.Items {
		if existing.ID == item.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateItem, item.ID)
		}
	}
	inv.Items = append(inv.Items, item)
	return nil
}

// RemoveItem drops the item with the given id from the aggregate.
func (inv *Inventory) RemoveItem(inventoryItemID string) error {
	for i, item := range inv.Items {
		if item.ID == inventoryItemID {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInventoryItemNotFound, inventoryItemID)
}

// FindItem returns the contained item with the given id, or nil.
func (inv *Inventory) FindItem(inventoryItemID string) *InventoryItem {
	for _, item := range inv.Items {
		if item.ID == inventoryItemID {
			return item
		}
	}
	return nil
}

// EquipItem sets the equip flag on the item with the given id.
func (inv *Inventory) EquipItem(inventoryItemID string) error {
	item := inv.FindItem(inventoryItemID)
	if item == nil {
		return fmt.Errorf("%w: %s", ErrInventoryItemNotFound, inventoryItemID)
	}
	item.Equip()
	return nil
}

// UnequipItem clears the equip flag on the item with the given id.
func (inv *Inventory) UnequipItem(inventoryItemID string) error {
	item := inv.FindItem(inventoryItemID)
	if item == nil {
		return fmt.Errorf("%w: %s", ErrInventoryItemNotFound, inventoryItemID)
	}
	item.Unequip()
	return nil
}

// OwnsShopItem reports whether any contained item references the catalog id.
func (inv *Inventory) OwnsShopItem(shopItemID string) bool {
	for _, item := range inv.Items {
		if item.ItemID == shopItemID {
			return true
		}
	}
	return false
}

// EquippedItems returns the currently equipped items.
func (inv *Inventory) EquippedItems() []*InventoryItem {
	var equipped []*InventoryItem
	for _, item := range inv.Items {
		if item.IsEquipped {
			equipped = append(equipped, item)
		}
	}
	return equipped
}
