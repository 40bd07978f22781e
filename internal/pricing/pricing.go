// Package pricing holds the pure formula functions the economy and
// progression services are built on: the monster-creation price curve, the
// catalog price table, the XP→level mapping and the care-action coin reward.
// Everything here is deterministic and stateless; the tables are plain data
// so orchestrators stay testable.
package pricing

import (
	"math"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
)

// CategoryBasePrices are the per-category base prices in TC.
var CategoryBasePrices = map[domain.ItemCategory]int{
	domain.CategoryHat:        50,
	domain.CategoryGlasses:    75,
	domain.CategoryShoes:      100,
	domain.CategoryBackground: 150,
}

// RarityMultipliers scale the category base price.
var RarityMultipliers = map[domain.ItemRarity]float64{
	domain.RarityCommon:    1,
	domain.RarityRare:      2.5,
	domain.RarityEpic:      5,
	domain.RarityLegendary: 10,
}

// ItemPrice returns floor(basePrice[category] * multiplier[rarity]).
// Returns 0 for an unknown category or rarity; callers validate first.
func ItemPrice(category domain.ItemCategory, rarity domain.ItemRarity) int {
	base, ok := CategoryBasePrices[category]
	if !ok {
		return 0
	}
	mult, ok := RarityMultipliers[rarity]
	if !ok {
		return 0
	}
	return int(math.Floor(float64(base) * mult))
}

// MonsterCreationPrice returns the cost of the next monster given how many
// the player already created: 0, 0, 50, 100, 150, ...
func MonsterCreationPrice(existingCount int) int {
	if existingCount < domain.FreeMonsterCount {
		return 0
	}
	return domain.MonsterBasePrice + (existingCount-domain.FreeMonsterCount)*domain.MonsterPriceIncrement
}

// LevelForXP maps total XP directly to a level: floor(xp/100) + 1.
// Being a pure function of absolute XP, it cannot drift the way incremental
// level-up accumulation can.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/domain.XPPerLevel + 1
}

// XPToNextLevel returns the total-XP threshold of the next level.
func XPToNextLevel(xp int) int {
	return LevelForXP(xp) * domain.XPPerLevel
}

// ActionReward returns the TC granted for a correct care action at the given
// (post-gain) monster level: max(2, level+1).
func ActionReward(level int) int {
	reward := level + 1
	if reward < domain.MinActionReward {
		return domain.MinActionReward
	}
	return reward
}
