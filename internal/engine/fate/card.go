// Package fate implements the Fate deck: the world's answer to every
// player and enemy action. Cards are immutable values that move between a
// draw pile and a discard pile by identity; resonance rules let the world's
// current alignment bend a card's value or keep it in play.
package fate

// Suit aligns a card with one of the three worlds.
type Suit string

// Card suits. An empty suit means the card belongs to no world and always
// resolves as neutral.
const (
	// SuitNav is the underworld: physical force and endings.
	SuitNav Suit = "nav"
	// SuitPrav is the divine order: spirit and persuasion.
	SuitPrav Suit = "prav"
	// SuitYav is the mortal middle world, neutral to every approach.
	SuitYav Suit = "yav"
)

// Keyword names a rule-bending property on a card. Unknown keywords are
// ignored by the interpreter so content can ship ahead of engine support.
type Keyword string

// Known keywords.
const (
	// KeywordSurge grants a flat bonus, amplified when the card's suit
	// matches the action being resolved.
	KeywordSurge Keyword = "surge"
)

// DrawEffect is a side effect attached to a matched resonance rule.
type DrawEffect string

// Draw effects.
const (
	// DrawEffectRetain sends a sticky card back into the draw pile
	// instead of the discard pile.
	DrawEffectRetain DrawEffect = "retain"
)

// ResonanceRule conditions a card on the world's resonance. A rule with a
// negative threshold fires when resonance has sunk to or below it (toward
// the Nav pole); otherwise it fires when resonance has risen to or above it.
type ResonanceRule struct {
	Threshold   float64
	ModifyValue int
	Effect      DrawEffect
}

// Matches reports whether the rule fires at the given world resonance.
func (r ResonanceRule) Matches(worldResonance float64) bool {
	if r.Threshold < 0 {
		return worldResonance <= r.Threshold
	}
	return worldResonance >= r.Threshold
}

// Card is a single Fate card. Cards are immutable; the deck moves them
// between piles by identity and never edits them.
type Card struct {
	ID       string
	Name     string
	Modifier int
	Suit     Suit
	Keyword  Keyword

	// Critical marks the card for amplified effect; critical cards are
	// authored with the yav suit so they work on either approach.
	Critical bool

	// Sticky cards re-enter the draw pile when a matched resonance rule
	// carries the retain effect.
	Sticky bool

	ResonanceRules []ResonanceRule
}

// MatchRule returns the first resonance rule that fires at the given world
// resonance, in declaration order.
func (c Card) MatchRule(worldResonance float64) (ResonanceRule, bool) {
	for _, rule := range c.ResonanceRules {
		if rule.Matches(worldResonance) {
			return rule, true
		}
	}
	return ResonanceRule{}, false
}

// clone returns a deep copy of the card, including its rule slice, so deck
// snapshots never alias live state.
func (c Card) clone() Card {
	if len(c.ResonanceRules) > 0 {
		rules := make([]ResonanceRule, len(c.ResonanceRules))
		copy(rules, c.ResonanceRules)
		c.ResonanceRules = rules
	}
	return c
}
