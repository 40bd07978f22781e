package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ItemCategory is the cosmetic slot an item occupies on a monster
type ItemCategory string

const (
	CategoryHat        ItemCategory = "hat"
	CategoryGlasses    ItemCategory = "glasses"
	CategoryShoes      ItemCategory = "shoes"
	CategoryBackground ItemCategory = "background"
)

// Valid reports whether c is a known category.
func (c ItemCategory) Valid() bool {
	switch c {
	case CategoryHat, CategoryGlasses, CategoryShoes, CategoryBackground:
		return true
	}
	return false
}

// ItemRarity ranks catalog items from common to legendary
type ItemRarity string

const (
	RarityCommon    ItemRarity = "common"
	RarityRare      ItemRarity = "rare"
	RarityEpic      ItemRarity = "epic"
	RarityLegendary ItemRarity = "legendary"
)

// Valid reports whether r is a known rarity.
func (r ItemRarity) Valid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Rank orders rarities for comparisons (common < rare < epic < legendary).
func (r ItemRarity) Rank() int {
	switch r {
	case RarityCommon:
		return 0
	case RarityRare:
		return 1
	case RarityEpic:
		return 2
	case RarityLegendary:
		return 3
	}
	return -1
}

// ShopItem is a catalog definition of a purchasable cosmetic. It is not owned
// by any player; ownership is represented by InventoryItem rows referencing it.
// Price is fixed at creation time and never recomputed afterward.
type ShopItem struct {
	ID             string       `json:"id" db:"item_id"`
	Name           string       `json:"name" db:"name"`
	Description    string       `json:"description" db:"description"`
	Category       ItemCategory `json:"category" db:"category"`
	Rarity         ItemRarity   `json:"rarity" db:"rarity"`
	Price          int          `json:"price" db:"price"`
	ImageURL       string       `json:"image_url,omitempty" db:"image_url"`
	IsAvailable    bool         `json:"is_available" db:"is_available"`
	BackgroundType string       `json:"background_type,omitempty" db:"background_type"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"`
}

// NewShopItem validates and constructs a catalog entry. Validation failures
// here are fail-fast catalog bugs, not recoverable request errors.
func NewShopItem(name, description string, category ItemCategory, rarity ItemRarity, price int) (*ShopItem, error) {
	if len(name) < MinItemNameLength || len(name) > MaxItemNameLength {
		return nil, fmt.Errorf("%w: item name must be %d-%d characters, got %d", ErrInvalidInput, MinItemNameLength, MaxItemNameLength, len(name))
	}
	if description == "" {
		return nil, fmt.Errorf("%w: item description is required", ErrInvalidInput)
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: item category %q", ErrInvalidInput, category)
	}
	if !rarity.Valid() {
		return nil, fmt.Errorf("%w: item rarity %q", ErrInvalidInput, rarity)
	}
	if price < MinItemPrice || price > MaxItemPrice {
		return nil, fmt.Errorf("%w: item price %d out of range [%d, %d]", ErrInvalidInput, price, MinItemPrice, MaxItemPrice)
	}
	return &ShopItem{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Category:    category,
		Rarity:      rarity,
		Price:       price,
		IsAvailable: true,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// CanBePurchased reports whether the item is currently offered in the shop.
func (s *ShopItem) CanBePurchased() bool {
	return s.IsAvailable
}

// MakeAvailable puts the item back on sale.
func (s *ShopItem) MakeAvailable() {
	s.IsAvailable = true
}

// MakeUnavailable pulls the item from the shop without deleting it; owned
// copies are unaffected.
func (s *ShopItem) MakeUnavailable() {
	s.IsAvailable = false
}
