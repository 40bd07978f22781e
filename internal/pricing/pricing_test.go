package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
)

func TestItemPrice_Table(t *testing.T) {
	tests := []struct {
		name     string
		category domain.ItemCategory
		rarity   domain.ItemRarity
		want     int
	}{
		{"common hat", domain.CategoryHat, domain.RarityCommon, 50},
		{"rare hat", domain.CategoryHat, domain.RarityRare, 125},
		{"epic hat", domain.CategoryHat, domain.RarityEpic, 250},
		{"legendary hat", domain.CategoryHat, domain.RarityLegendary, 500},
		{"rare glasses floors", domain.CategoryGlasses, domain.RarityRare, 187},
		{"epic shoes", domain.CategoryShoes, domain.RarityEpic, 500},
		{"legendary background", domain.CategoryBackground, domain.RarityLegendary, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ItemPrice(tt.category, tt.rarity))
		})
	}
}

func TestItemPrice_UnknownInputs(t *testing.T) {
	assert.Equal(t, 0, ItemPrice("cape", domain.RarityCommon))
	assert.Equal(t, 0, ItemPrice(domain.CategoryHat, "mythic"))
}

func TestItemPrice_StrictlyIncreasesWithRarity(t *testing.T) {
	rarities := []domain.ItemRarity{domain.RarityCommon, domain.RarityRare, domain.RarityEpic, domain.RarityLegendary}
	for category := range CategoryBasePrices {
		for i := 1; i < len(rarities); i++ {
			lower := ItemPrice(category, rarities[i-1])
			higher := ItemPrice(category, rarities[i])
			assert.Greater(t, higher, lower, "category %s: %s should cost more than %s", category, rarities[i], rarities[i-1])
		}
	}
}

func TestMonsterCreationPrice_Curve(t *testing.T) {
	// First two monsters are free, then 50, 100, 150, ...
	assert.Equal(t, 0, MonsterCreationPrice(0))
	assert.Equal(t, 0, MonsterCreationPrice(1))
	assert.Equal(t, 50, MonsterCreationPrice(2))
	assert.Equal(t, 100, MonsterCreationPrice(3))
	assert.Equal(t, 150, MonsterCreationPrice(4))
}

func TestMonsterCreationPrice_NonDecreasing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 10_000).Draw(t, "n")
		if MonsterCreationPrice(n+1) < MonsterCreationPrice(n) {
			t.Fatalf("price decreased from n=%d to n=%d", n, n+1)
		}
	})
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{105, 2},
		{250, 3},
		{-5, 1}, // clamped
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForXP(tt.xp), "xp=%d", tt.xp)
	}
}

func TestXPToNextLevel(t *testing.T) {
	assert.Equal(t, 100, XPToNextLevel(0))
	assert.Equal(t, 100, XPToNextLevel(99))
	assert.Equal(t, 200, XPToNextLevel(105))
	assert.Equal(t, 300, XPToNextLevel(250))
}

func TestLevel_NonDecreasingInXP(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xp := rapid.IntRange(0, 1_000_000).Draw(t, "xp")
		gain := rapid.IntRange(0, 10_000).Draw(t, "gain")
		if LevelForXP(xp+gain) < LevelForXP(xp) {
			t.Fatalf("level decreased when xp grew from %d to %d", xp, xp+gain)
		}
		if XPToNextLevel(xp+gain) < XPToNextLevel(xp) {
			t.Fatalf("xpToNextLevel decreased when xp grew from %d to %d", xp, xp+gain)
		}
	})
}

func TestActionReward(t *testing.T) {
	assert.Equal(t, 2, ActionReward(0))
	assert.Equal(t, 2, ActionReward(1)) // 1+1=2, floor holds
	assert.Equal(t, 3, ActionReward(2))
	assert.Equal(t, 11, ActionReward(10))
}
