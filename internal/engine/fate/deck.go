package fate

import (
	"github.com/triglav-games/encounter-api/internal/engine/rng"
	"github.com/triglav-games/encounter-api/internal/errors"
)

// DeckState is a serializable snapshot of both piles. It is a plain value:
// copy it freely, store it, and hand it back via RestoreState to reproduce
// the deck exactly.
type DeckState struct {
	DrawPile    []Card
	DiscardPile []Card
}

// NewDeckState puts every card into the draw pile in the given order.
func NewDeckState(cards []Card) DeckState {
	draw := make([]Card, 0, len(cards))
	for _, c := range cards {
		draw = append(draw, c.clone())
	}
	return DeckState{DrawPile: draw}
}

// Clone returns a deep copy sharing no memory with the receiver.
func (s DeckState) Clone() DeckState {
	out := DeckState{}
	if len(s.DrawPile) > 0 {
		out.DrawPile = make([]Card, 0, len(s.DrawPile))
		for _, c := range s.DrawPile {
			out.DrawPile = append(out.DrawPile, c.clone())
		}
	}
	if len(s.DiscardPile) > 0 {
		out.DiscardPile = make([]Card, 0, len(s.DiscardPile))
		for _, c := range s.DiscardPile {
			out.DiscardPile = append(out.DiscardPile, c.clone())
		}
	}
	return out
}

// Count returns the total number of cards across both piles. The count is
// invariant under every deck operation.
func (s DeckState) Count() int {
	return len(s.DrawPile) + len(s.DiscardPile)
}

// DrawResult reports one resolved draw.
type DrawResult struct {
	Card Card

	// EffectiveValue is the card's modifier after the applied resonance
	// rule, before keyword and critical interpretation.
	EffectiveValue int

	Critical bool

	// AppliedRule is a copy of the matched rule, nil when none fired.
	AppliedRule *ResonanceRule

	// Retained is true when the card went back into the draw pile.
	Retained bool

	// Effects are the draw effects produced by the applied rule.
	Effects []DrawEffect
}

// DeckManager owns a deck's piles for the duration of an encounter. It is
// not safe for concurrent use. All shuffling flows through the manager's
// WorldRNG, so the pile order is a pure function of seed and call sequence.
type DeckManager struct {
	state DeckState
	rng   *rng.WorldRNG
}

// NewDeckManager wraps a deck state with a random source. The rng must not
// be nil; the manager makes its own deep copy of state.
func NewDeckManager(state DeckState, r *rng.WorldRNG) *DeckManager {
	if r == nil {
		panic("fate: NewDeckManager requires a rng")
	}
	return &DeckManager{state: state.Clone(), rng: r}
}

// Shuffle randomizes the draw pile in place. The discard pile is untouched.
func (m *DeckManager) Shuffle() {
	pile := m.state.DrawPile
	m.rng.Shuffle(len(pile), func(i, j int) {
		pile[i], pile[j] = pile[j], pile[i]
	})
}

// DrawAndResolve draws the top card and resolves its resonance rules
// against the current world resonance. An empty draw pile is refilled from
// the discard pile (shuffled); the call fails only when both piles are
// empty, which indicates broken content rather than a playable state.
func (m *DeckManager) DrawAndResolve(worldResonance float64) (*DrawResult, error) {
	if len(m.state.DrawPile) == 0 {
		if len(m.state.DiscardPile) == 0 {
			return nil, errors.FailedPrecondition("fate deck exhausted: both piles empty")
		}
		m.refill()
	}

	card := m.state.DrawPile[0]
	m.state.DrawPile = m.state.DrawPile[1:]

	result := &DrawResult{
		Card:           card,
		EffectiveValue: card.Modifier,
		Critical:       card.Critical,
	}

	if rule, ok := card.MatchRule(worldResonance); ok {
		result.EffectiveValue += rule.ModifyValue
		applied := rule
		result.AppliedRule = &applied
		if rule.Effect != "" {
			result.Effects = append(result.Effects, rule.Effect)
		}
	}

	if card.Sticky && result.AppliedRule != nil && result.AppliedRule.Effect == DrawEffectRetain {
		// Sticky retention: back under the draw pile, not on top, so the
		// card cannot be drawn twice in a row.
		m.state.DrawPile = append(m.state.DrawPile, card)
		result.Retained = true
	} else {
		m.state.DiscardPile = append(m.state.DiscardPile, card)
	}

	return result, nil
}

// refill folds the discard pile into the empty draw pile and shuffles it.
func (m *DeckManager) refill() {
	m.state.DrawPile = append(m.state.DrawPile, m.state.DiscardPile...)
	m.state.DiscardPile = nil
	m.Shuffle()
}

// DrawCount returns the number of cards waiting in the draw pile.
func (m *DeckManager) DrawCount() int {
	return len(m.state.DrawPile)
}

// DiscardCount returns the number of cards in the discard pile.
func (m *DeckManager) DiscardCount() int {
	return len(m.state.DiscardPile)
}

// Count returns the total card count across both piles.
func (m *DeckManager) Count() int {
	return m.state.Count()
}

// State returns a deep copy of both piles for checkpointing.
func (m *DeckManager) State() DeckState {
	return m.state.Clone()
}

// RestoreState replaces the piles with a deep copy of a previously captured
// state. The manager's RNG is deliberately untouched: a restored
// composition is exact regardless of seed, and the seed only shapes future
// shuffles.
func (m *DeckManager) RestoreState(state DeckState) {
	m.state = state.Clone()
}
