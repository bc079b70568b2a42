package fate

import (
	"math"

	"github.com/triglav-games/encounter-api/internal/entities/threeworlds"
)

// ResolutionContext is the kind of action a Fate card is being drawn for.
// It drives suit matching.
type ResolutionContext string

// Resolution contexts.
const (
	ContextCombatPhysical  ResolutionContext = "combatPhysical"
	ContextCombatSpiritual ResolutionContext = "combatSpiritual"
	ContextDefense         ResolutionContext = "defense"
)

// SuitMatch classifies how a card's suit aligns with the action it was
// drawn for.
type SuitMatch string

// Suit match outcomes.
const (
	SuitMatched    SuitMatch = "matched"
	SuitNeutral    SuitMatch = "neutral"
	SuitMismatched SuitMatch = "mismatched"
)

// ClassifySuit applies the fixed alignment table: nav favors the physical,
// prav favors the spiritual, both guard equally well, and yav sits outside
// the opposition entirely.
func ClassifySuit(suit Suit, rctx ResolutionContext) SuitMatch {
	switch suit {
	case SuitNav:
		switch rctx {
		case ContextCombatPhysical, ContextDefense:
			return SuitMatched
		case ContextCombatSpiritual:
			return SuitMismatched
		}
	case SuitPrav:
		switch rctx {
		case ContextCombatSpiritual, ContextDefense:
			return SuitMatched
		case ContextCombatPhysical:
			return SuitMismatched
		}
	case SuitYav:
		return SuitNeutral
	}
	return SuitNeutral
}

// KeywordEffect is the numeric outcome of interpreting a keyword. The zero
// value means no effect.
type KeywordEffect struct {
	Keyword Keyword
	Bonus   int
}

// KeywordInterpreter turns keywords into effects using tuning from the
// balance config. It owns the only read of MatchMultiplier in the engine.
type KeywordInterpreter struct {
	balance threeworlds.BalanceConfig
}

// NewKeywordInterpreter builds an interpreter over a normalized copy of the
// balance config.
func NewKeywordInterpreter(balance threeworlds.BalanceConfig) *KeywordInterpreter {
	return &KeywordInterpreter{balance: balance.Normalized()}
}

// ResolveWithAlignment maps a keyword and a suit alignment to its effect.
// surge: matched scales the baseline by MatchMultiplier, neutral grants the
// bare baseline, mismatched suppresses the keyword. Unknown keywords
// resolve to nothing.
func (ki *KeywordInterpreter) ResolveWithAlignment(kw Keyword, match SuitMatch) KeywordEffect {
	switch kw {
	case KeywordSurge:
		switch match {
		case SuitMatched:
			scaled := math.Round(float64(ki.balance.SurgeBaseline) * ki.balance.MatchMultiplier)
			return KeywordEffect{Keyword: kw, Bonus: int(scaled)}
		case SuitNeutral:
			return KeywordEffect{Keyword: kw, Bonus: ki.balance.SurgeBaseline}
		default:
			return KeywordEffect{Keyword: kw}
		}
	}
	return KeywordEffect{}
}

// Resolution is the full interpretation of one drawn card for one action.
type Resolution struct {
	Card Card

	// BaseValue is the acting stat the caller brought to the roll.
	BaseValue int

	// EffectiveValue is the card's contribution: modifier, plus the
	// applied resonance rule, scaled when critical.
	EffectiveValue int

	Keyword       Keyword
	KeywordEffect KeywordEffect
	SuitMatch     SuitMatch
	Critical      bool
	Retained      bool
	AppliedRule   *ResonanceRule
	Effects       []DrawEffect

	// Total is BaseValue + EffectiveValue + KeywordEffect.Bonus.
	Total int
}

// Resolver draws and interprets Fate cards for actions. It holds no state
// of its own; everything mutable lives in the deck manager it is handed.
type Resolver struct {
	interp *KeywordInterpreter
}

// NewResolver builds a resolver with the given tuning.
func NewResolver(balance threeworlds.BalanceConfig) *Resolver {
	return &Resolver{interp: NewKeywordInterpreter(balance)}
}

// Resolve draws one card from the deck and interprets it in the given
// context. The deck mutates (one card moves pile); everything else about
// the call is pure.
func (rs *Resolver) Resolve(rctx ResolutionContext, baseValue int, deck *DeckManager, worldResonance float64) (*Resolution, error) {
	draw, err := deck.DrawAndResolve(worldResonance)
	if err != nil {
		return nil, err
	}

	match := ClassifySuit(draw.Card.Suit, rctx)

	effective := draw.EffectiveValue
	if draw.Critical {
		effective = int(math.Round(float64(effective) * rs.interp.balance.CriticalMultiplier))
	}

	kwEffect := rs.interp.ResolveWithAlignment(draw.Card.Keyword, match)

	return &Resolution{
		Card:           draw.Card,
		BaseValue:      baseValue,
		EffectiveValue: effective,
		Keyword:        draw.Card.Keyword,
		KeywordEffect:  kwEffect,
		SuitMatch:      match,
		Critical:       draw.Critical,
		Retained:       draw.Retained,
		AppliedRule:    draw.AppliedRule,
		Effects:        draw.Effects,
		Total:          baseValue + effective + kwEffect.Bonus,
	}, nil
}
