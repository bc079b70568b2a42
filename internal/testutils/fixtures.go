package testutils

import (
	"github.com/triglav-games/encounter-api/internal/engine/fate"
	"github.com/triglav-games/encounter-api/internal/entities/threeworlds"
)

// TestHeroName is the default hero name for test fixtures
const TestHeroName = "Mirabel of the Ford"

// CreateTestHero creates a hero sheet with sensible defaults for tests
func CreateTestHero() *threeworlds.HeroState {
	return &threeworlds.HeroState{
		ID:       "hero-test-001",
		Name:     TestHeroName,
		MaxHP:    100,
		HP:       100,
		MaxWP:    40,
		WP:       40,
		Strength: 10,
		Wisdom:   6,
		Defense:  2,
		Armor:    5,
		Energy:   3,
		CardIDs:  []string{"cleave", "birch-balm"},
	}
}

// CreateTestFateCards returns a small unshuffled deck with one card of each
// flavor, so tests can predict the first draws
func CreateTestFateCards() []fate.Card {
	return []fate.Card{
		{ID: "ash", Name: "Ash", Modifier: 2, Suit: fate.SuitNav},
		{ID: "ember", Name: "Ember", Modifier: 1, Suit: fate.SuitPrav},
		{ID: "reed", Name: "Reed", Modifier: 0, Suit: fate.SuitYav},
		{ID: "thorn", Name: "Thorn", Modifier: -1},
	}
}

// CreateTestActionCards returns the action cards matching CreateTestHero's
// loadout
func CreateTestActionCards() []threeworlds.ActionCard {
	return []threeworlds.ActionCard{
		{ID: "cleave", Name: "Cleave", Kind: threeworlds.CardKindAttack, Cost: 1, Bonus: 2, Trait: threeworlds.CardTraitDiscard},
		{ID: "birch-balm", Name: "Birch Balm", Kind: threeworlds.CardKindMend, Cost: 1, Bonus: 4, Trait: threeworlds.CardTraitDiscard},
	}
}

// CreateTestEnemy creates the stock swamp-dweller stat block used across
// repository and orchestrator tests
func CreateTestEnemy() *threeworlds.EnemyDefinition {
	return &threeworlds.EnemyDefinition{
		ID:         "bolotnik",
		Name:       "Bolotnik",
		MaxHP:      10,
		MaxWP:      5,
		Power:      3,
		Defense:    1,
		BehaviorID: "behavior-aggressive",
	}
}
