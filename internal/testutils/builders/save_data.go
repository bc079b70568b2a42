// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/triglav-games/encounter-api/internal/engine/fate"
	"github.com/triglav-games/encounter-api/internal/entities/threeworlds"
	"github.com/triglav-games/encounter-api/internal/repositories/save"
	"github.com/triglav-games/encounter-api/internal/testutils"
)

// SaveDataBuilder provides a fluent interface for building test SaveData
// instances
type SaveDataBuilder struct {
	data *save.SaveData
}

// NewSaveDataBuilder creates a builder holding a playable default slot:
// the standard test hero, the four-card test deck, neutral resonance and
// fixed timestamps.
func NewSaveDataBuilder() *SaveDataBuilder {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &SaveDataBuilder{
		data: &save.SaveData{
			ID:        "save-test-123",
			Hero:      *testutils.CreateTestHero(),
			Deck:      fate.NewDeckState(testutils.CreateTestFateCards()),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets the save ID
func (b *SaveDataBuilder) WithID(id string) *SaveDataBuilder {
	b.data.ID = id
	return b
}

// WithHero replaces the whole hero sheet
func (b *SaveDataBuilder) WithHero(hero threeworlds.HeroState) *SaveDataBuilder {
	b.data.Hero = hero
	return b
}

// WithHeroHP sets the hero's current hit points
func (b *SaveDataBuilder) WithHeroHP(hp int) *SaveDataBuilder {
	b.data.Hero.HP = hp
	return b
}

// WithHeroCards sets the action cards the hero brings into encounters
func (b *SaveDataBuilder) WithHeroCards(cardIDs ...string) *SaveDataBuilder {
	b.data.Hero.CardIDs = cardIDs
	return b
}

// WithDeck replaces the fate deck with a fresh one built from the given
// cards, all in the draw pile
func (b *SaveDataBuilder) WithDeck(cards ...fate.Card) *SaveDataBuilder {
	b.data.Deck = fate.NewDeckState(cards)
	return b
}

// WithDiscard moves the given cards into the discard pile
func (b *SaveDataBuilder) WithDiscard(cards ...fate.Card) *SaveDataBuilder {
	b.data.Deck.DiscardPile = cards
	return b
}

// WithResonance sets the world resonance carried by the save
func (b *SaveDataBuilder) WithResonance(resonance float64) *SaveDataBuilder {
	b.data.Resonance = resonance
	return b
}

// WithTimestamps sets both created and updated times
func (b *SaveDataBuilder) WithTimestamps(t time.Time) *SaveDataBuilder {
	b.data.CreatedAt = t
	b.data.UpdatedAt = t
	return b
}

// Build returns the built SaveData
func (b *SaveDataBuilder) Build() *save.SaveData {
	return b.data
}
