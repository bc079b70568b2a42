package content

import (
	"context"
	"sort"

	"github.com/triglav-games/encounter-api/internal/engine/fate"
	"github.com/triglav-games/encounter-api/internal/entities/threeworlds"
	"github.com/triglav-games/encounter-api/internal/errors"
)

// Behavior IDs of the built-in content set.
const (
	BehaviorIDAggressive = "behavior-aggressive"
	BehaviorIDZealot     = "behavior-zealot"
	BehaviorIDWary       = "behavior-wary"
	BehaviorIDCraven     = "behavior-craven"
)

// StaticClient serves the built-in Three Worlds content set from memory.
// All lookups return copies; the authored records are never handed out by
// reference and never change after construction.
type StaticClient struct {
	enemies   map[string]threeworlds.EnemyDefinition
	behaviors map[string]threeworlds.BehaviorDefinition
	cards     map[string]threeworlds.ActionCard
	deck      []fate.Card
	hero      threeworlds.HeroState
	balance   threeworlds.BalanceConfig
	enemyIDs  []string
}

var _ Client = (*StaticClient)(nil)

// NewStatic returns a client loaded with the built-in content set.
func NewStatic() *StaticClient {
	c := &StaticClient{
		enemies:   make(map[string]threeworlds.EnemyDefinition),
		behaviors: make(map[string]threeworlds.BehaviorDefinition),
		cards:     make(map[string]threeworlds.ActionCard),
		balance:   threeworlds.DefaultBalance(),
	}

	for _, b := range builtinBehaviors() {
		c.behaviors[b.ID] = b
	}
	for _, e := range builtinEnemies() {
		c.enemies[e.ID] = e
		c.enemyIDs = append(c.enemyIDs, e.ID)
	}
	sort.Strings(c.enemyIDs)
	for _, card := range builtinActionCards() {
		c.cards[card.ID] = card
	}
	c.deck = builtinFateDeck()
	c.hero = builtinHero()

	return c
}

// GetEnemy returns the enemy stat block with the given ID.
func (c *StaticClient) GetEnemy(_ context.Context, enemyID string) (*threeworlds.EnemyDefinition, error) {
	def, ok := c.enemies[enemyID]
	if !ok {
		return nil, errors.NotFoundf("enemy %q not found", enemyID)
	}
	return &def, nil
}

// GetBehavior returns the behavior definition with the given ID.
func (c *StaticClient) GetBehavior(_ context.Context, behaviorID string) (*threeworlds.BehaviorDefinition, error) {
	def, ok := c.behaviors[behaviorID]
	if !ok {
		return nil, errors.NotFoundf("behavior %q not found", behaviorID)
	}
	return &def, nil
}

// GetCard returns the action card with the given ID.
func (c *StaticClient) GetCard(_ context.Context, cardID string) (*threeworlds.ActionCard, error) {
	card, ok := c.cards[cardID]
	if !ok {
		return nil, errors.NotFoundf("action card %q not found", cardID)
	}
	return &card, nil
}

// GetBalance returns the combat tuning for the built-in content set.
func (c *StaticClient) GetBalance(_ context.Context) (threeworlds.BalanceConfig, error) {
	return c.balance, nil
}

// ListEnemies returns every enemy stat block, ordered by ID.
func (c *StaticClient) ListEnemies(_ context.Context) ([]*threeworlds.EnemyDefinition, error) {
	out := make([]*threeworlds.EnemyDefinition, 0, len(c.enemyIDs))
	for _, id := range c.enemyIDs {
		def := c.enemies[id]
		out = append(out, &def)
	}
	return out, nil
}

// StandardDeck returns the stock Fate deck in authored order.
func (c *StaticClient) StandardDeck(_ context.Context) ([]fate.Card, error) {
	out := make([]fate.Card, 0, len(c.deck))
	for _, card := range c.deck {
		out = append(out, copyFateCard(card))
	}
	return out, nil
}

// DefaultHero returns the starting hero sheet for a new save.
func (c *StaticClient) DefaultHero(_ context.Context) (*threeworlds.HeroState, error) {
	hero := c.hero
	hero.CardIDs = append([]string(nil), c.hero.CardIDs...)
	return &hero, nil
}

func copyFateCard(card fate.Card) fate.Card {
	if len(card.ResonanceRules) > 0 {
		rules := make([]fate.ResonanceRule, len(card.ResonanceRules))
		copy(rules, card.ResonanceRules)
		card.ResonanceRules = rules
	}
	return card
}

func builtinBehaviors() []threeworlds.BehaviorDefinition {
	return []threeworlds.BehaviorDefinition{
		{ID: BehaviorIDAggressive, Pattern: threeworlds.BehaviorAggressive},
		{ID: BehaviorIDZealot, Pattern: threeworlds.BehaviorZealot, SpiritBias: 0.75},
		{ID: BehaviorIDWary, Pattern: threeworlds.BehaviorWary, SpiritBias: 0.4},
		{ID: BehaviorIDCraven, Pattern: threeworlds.BehaviorCraven},
	}
}

func builtinEnemies() []threeworlds.EnemyDefinition {
	return []threeworlds.EnemyDefinition{
		{
			ID:         "bolotnik",
			Name:       "Bolotnik",
			MaxHP:      10,
			MaxWP:      5,
			Power:      3,
			Defense:    1,
			BehaviorID: BehaviorIDAggressive,
		},
		{
			ID:         "upyr",
			Name:       "Upyr",
			MaxHP:      30,
			MaxWP:      8,
			Power:      5,
			Defense:    2,
			Armor:      1,
			BehaviorID: BehaviorIDZealot,
		},
		{
			ID:         "poludnitsa",
			Name:       "Poludnitsa",
			MaxHP:      20,
			MaxWP:      12,
			Power:      4,
			Defense:    3,
			BehaviorID: BehaviorIDWary,
		},
		{
			ID:         "kikimora",
			Name:       "Kikimora",
			MaxHP:      12,
			MaxWP:      10,
			Power:      2,
			Defense:    2,
			BehaviorID: BehaviorIDCraven,
		},
		{
			ID:         "leshy",
			Name:       "Leshy",
			MaxHP:      50,
			MaxWP:      30,
			Power:      6,
			Defense:    2,
			Armor:      2,
			BehaviorID: BehaviorIDWary,
		},
	}
}

func builtinActionCards() []threeworlds.ActionCard {
	return []threeworlds.ActionCard{
		{ID: "cleave", Name: "Cleave", Kind: threeworlds.CardKindAttack, Cost: 1, Bonus: 2, Trait: threeworlds.CardTraitDiscard},
		{ID: "perun-axe", Name: "Axe of Perun", Kind: threeworlds.CardKindAttack, Cost: 2, Bonus: 4, Trait: threeworlds.CardTraitExhaust},
		{ID: "calm-words", Name: "Calm Words", Kind: threeworlds.CardKindInfluence, Cost: 1, Bonus: 2, Trait: threeworlds.CardTraitDiscard},
		{ID: "dawn-prayer", Name: "Dawn Prayer", Kind: threeworlds.CardKindInfluence, Cost: 2, Bonus: 4, Trait: threeworlds.CardTraitExhaust},
		{ID: "birch-balm", Name: "Birch Balm", Kind: threeworlds.CardKindMend, Cost: 1, Bonus: 4, Trait: threeworlds.CardTraitDiscard},
		{ID: "living-water", Name: "Living Water", Kind: threeworlds.CardKindMend, Cost: 2, Bonus: 8, Trait: threeworlds.CardTraitExhaust},
	}
}

// builtinFateDeck is authored unshuffled: nav, then prav, then yav, then
// the suitless remainder. Critical cards carry the yav suit so they cut
// both ways.
func builtinFateDeck() []fate.Card {
	return []fate.Card{
		{ID: "marsh-light", Name: "Marsh Light", Modifier: 1, Suit: fate.SuitNav},
		{ID: "black-sun", Name: "Black Sun", Modifier: 3, Suit: fate.SuitNav, Keyword: fate.KeywordSurge},
		{ID: "grave-chill", Name: "Grave Chill", Modifier: 2, Suit: fate.SuitNav},
		{ID: "drowned-bell", Name: "Drowned Bell", Modifier: -2, Suit: fate.SuitNav, ResonanceRules: []fate.ResonanceRule{
			{Threshold: -0.5, ModifyValue: 3},
		}},
		{ID: "white-tree", Name: "White Tree", Modifier: 2, Suit: fate.SuitPrav},
		{ID: "dawn-chorus", Name: "Dawn Chorus", Modifier: 3, Suit: fate.SuitPrav, Keyword: fate.KeywordSurge},
		{ID: "river-veil", Name: "River Veil", Modifier: 1, Suit: fate.SuitPrav, Sticky: true, ResonanceRules: []fate.ResonanceRule{
			{Threshold: 0.3, ModifyValue: 1, Effect: fate.DrawEffectRetain},
		}},
		{ID: "zarya-light", Name: "Zarya's Light", Modifier: 2, Suit: fate.SuitPrav, ResonanceRules: []fate.ResonanceRule{
			{Threshold: 0.5, ModifyValue: 2},
		}},
		{ID: "crossroads", Name: "Crossroads", Modifier: 0, Suit: fate.SuitYav, Critical: true},
		{ID: "field-stone", Name: "Field Stone", Modifier: 1, Suit: fate.SuitYav},
		{ID: "hearth-smoke", Name: "Hearth Smoke", Modifier: 0, Suit: fate.SuitYav},
		{ID: "harvest-moon", Name: "Harvest Moon", Modifier: 2, Suit: fate.SuitYav, Critical: true},
		{ID: "old-bones", Name: "Old Bones", Modifier: -1},
		{ID: "broken-wheel", Name: "Broken Wheel", Modifier: -2},
		{ID: "stray-wind", Name: "Stray Wind", Modifier: 0},
		{ID: "omen-crow", Name: "Omen Crow", Modifier: 1, ResonanceRules: []fate.ResonanceRule{
			{Threshold: -0.2, ModifyValue: 2},
		}},
	}
}

func builtinHero() threeworlds.HeroState {
	return threeworlds.HeroState{
		ID:       "hero",
		Name:     "Wanderer",
		MaxHP:    100,
		HP:       100,
		MaxWP:    40,
		WP:       40,
		Strength: 10,
		Wisdom:   6,
		Defense:  2,
		Armor:    5,
		Energy:   3,
		CardIDs:  []string{"cleave", "perun-axe", "calm-words", "dawn-prayer", "birch-balm", "living-water"},
	}
}
