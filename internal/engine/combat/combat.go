// Package combat wraps an encounter engine with the hero's card economy:
// hand, discard, and exhaust piles, energy accounting, and the Effort
// mechanic of burning hand cards for a flat bonus. The engine stays the
// single authority on phases and resolution; this layer only decides which
// cards leave the hand and what they add to the roll.
package combat

import (
	"github.com/triglav-games/encounter-api/internal/engine/encounter"
	"github.com/triglav-games/encounter-api/internal/entities/threeworlds"
	"github.com/triglav-games/encounter-api/internal/errors"
)

// BurnedCard is a hand card spent on Effort for the current action. The
// hand index makes an undo an exact inverse.
type BurnedCard struct {
	Card      threeworlds.ActionCard
	HandIndex int
}

// Simulation owns the card piles for one encounter attempt. Like the
// engine it wraps, it is single-writer and not safe for concurrent use.
//
// Card lifecycle: hand -> played -> discard or exhaust per the card's
// trait; hand -> burned for Effort -> discard only, never exhaust, and
// burning never touches energy or the Fate deck.
type Simulation struct {
	eng *encounter.Engine

	hand    []threeworlds.ActionCard
	discard []threeworlds.ActionCard
	exhaust []threeworlds.ActionCard
	burned  []BurnedCard

	energy         int
	reservedEnergy int

	effortBonus int
	selectedIDs []string

	maxEffort int
}

// NewSimulation builds the card layer over a constructed engine, taking
// the hand and energy from the engine's loadout. The engine must not be
// nil.
func NewSimulation(eng *encounter.Engine) *Simulation {
	if eng == nil {
		panic("combat: NewSimulation requires an engine")
	}
	hand, energy := eng.Loadout()
	return &Simulation{
		eng:       eng,
		hand:      hand,
		energy:    energy,
		maxEffort: eng.Rules().MaxEffort,
	}
}

// Engine exposes the wrapped engine for phase driving and state queries.
// Card plays must flow through the simulation so the piles stay true.
func (s *Simulation) Engine() *encounter.Engine { return s.eng }

// SelectCard marks a hand card to be committed and reserves its energy.
// It reports false, changing nothing, when the phase is wrong, another
// card is already selected, the card is not in hand, or energy would not
// cover the cost.
func (s *Simulation) SelectCard(cardID string) bool {
	if !s.playerTurn() || len(s.selectedIDs) > 0 {
		return false
	}
	idx := s.handIndex(cardID)
	if idx < 0 {
		return false
	}
	card := s.hand[idx]
	if card.Cost > s.energy-s.reservedEnergy {
		return false
	}

	s.selectedIDs = append(s.selectedIDs, cardID)
	s.reservedEnergy += card.Cost
	return true
}

// DeselectCard releases the selected card and its energy reservation.
func (s *Simulation) DeselectCard(cardID string) bool {
	if len(s.selectedIDs) == 0 || s.selectedIDs[0] != cardID {
		return false
	}
	if idx := s.handIndex(cardID); idx >= 0 {
		s.reservedEnergy -= s.hand[idx].Cost
	}
	s.selectedIDs = nil
	return true
}

// BurnForEffort spends a hand card for one point of Effort. The burn is
// free: no energy, no Fate draw. It reports false, changing nothing, when
// the card is the selected card, the phase is not the player action, the
// bonus already sits at the limit, or the card is not in hand.
func (s *Simulation) BurnForEffort(cardID string) bool {
	if !s.playerTurn() || s.isSelected(cardID) || s.effortBonus >= s.maxEffort {
		return false
	}
	idx := s.handIndex(cardID)
	if idx < 0 {
		return false
	}

	card := s.hand[idx]
	s.hand = append(s.hand[:idx], s.hand[idx+1:]...)
	s.burned = append(s.burned, BurnedCard{Card: card, HandIndex: idx})
	s.effortBonus++
	return true
}

// UndoBurnForEffort reverses exactly one burn: the card returns to its
// hand position and the bonus drops. It reports false when the id was
// never burned or was already undone.
func (s *Simulation) UndoBurnForEffort(cardID string) bool {
	for i, b := range s.burned {
		if b.Card.ID != cardID {
			continue
		}
		s.burned = append(s.burned[:i], s.burned[i+1:]...)

		at := b.HandIndex
		if at > len(s.hand) {
			at = len(s.hand)
		}
		s.hand = append(s.hand, threeworlds.ActionCard{})
		copy(s.hand[at+1:], s.hand[at:])
		s.hand[at] = b.Card

		s.effortBonus--
		return true
	}
	return false
}

// CommitAttack resolves the round's action down the physical path: the
// selected attack card if one is chosen, a bare attack otherwise, with the
// accumulated Effort folded in. Success settles the piles and resets the
// Effort state unconditionally, hit or miss.
func (s *Simulation) CommitAttack(targetID string) (*encounter.ActionResult, error) {
	return s.commitStrike(targetID, threeworlds.CardKindAttack)
}

// CommitInfluence resolves the round's action down the spirit path: the
// selected influence card if one is chosen, a bare spirit attack
// otherwise.
func (s *Simulation) CommitInfluence(targetID string) (*encounter.ActionResult, error) {
	return s.commitStrike(targetID, threeworlds.CardKindInfluence)
}

func (s *Simulation) commitStrike(targetID string, kind threeworlds.CardKind) (*encounter.ActionResult, error) {
	selected, hasCard := s.selectedCard()
	if hasCard && selected.Kind != kind {
		return nil, errors.FailedPreconditionf("selected card %q is %s, not %s", selected.ID, selected.Kind, kind)
	}

	var result *encounter.ActionResult
	var err error
	switch {
	case hasCard:
		result, err = s.eng.UseCard(&encounter.UseCardInput{
			Card:        selected,
			TargetID:    targetID,
			EffortBonus: s.effortBonus,
		})
	case kind == threeworlds.CardKindAttack:
		result, err = s.eng.Attack(&encounter.AttackInput{
			TargetID:    targetID,
			EffortBonus: s.effortBonus,
		})
	default:
		result, err = s.eng.SpiritAttack(&encounter.AttackInput{
			TargetID:    targetID,
			EffortBonus: s.effortBonus,
		})
	}
	if err != nil {
		// Rejected by the engine: selection, burns, and piles all stand.
		return nil, err
	}

	if hasCard {
		s.settle(&selected)
	} else {
		s.settle(nil)
	}
	return result, nil
}

// PlayCard plays a hand card directly as the round's action, bypassing
// selection. Mend cards take this path; offensive cards may too.
func (s *Simulation) PlayCard(cardID, targetID string) (*encounter.ActionResult, error) {
	idx := s.handIndex(cardID)
	if idx < 0 {
		return nil, errors.NotFoundf("card %q is not in hand", cardID)
	}
	if len(s.selectedIDs) > 0 && s.selectedIDs[0] != cardID {
		return nil, errors.FailedPreconditionf("card %q is selected; deselect it first", s.selectedIDs[0])
	}
	card := s.hand[idx]
	if !s.isSelected(cardID) && card.Cost > s.energy-s.reservedEnergy {
		return nil, errors.FailedPreconditionf("not enough energy for %q: need %d, have %d", cardID, card.Cost, s.energy-s.reservedEnergy)
	}

	result, err := s.eng.UseCard(&encounter.UseCardInput{
		Card:        card,
		TargetID:    targetID,
		EffortBonus: s.effortBonus,
	})
	if err != nil {
		return nil, err
	}

	s.settle(&card)
	return result, nil
}

// Wait passes the round. The Fate deck is untouched; cards already burned
// for Effort are spent all the same and settle into the discard pile.
func (s *Simulation) Wait() (*encounter.ActionResult, error) {
	result, err := s.eng.Wait()
	if err != nil {
		return nil, err
	}
	s.settle(nil)
	return result, nil
}

// Flee attempts to end the encounter as escaped.
func (s *Simulation) Flee() (*encounter.ActionResult, error) {
	result, err := s.eng.Flee()
	if err != nil {
		return nil, err
	}
	s.settle(nil)
	return result, nil
}

// settle finalizes a committed action: the played card (if any) is paid
// for and routed by its trait, burned cards land in the discard pile, and
// the Effort and selection state reset unconditionally.
func (s *Simulation) settle(played *threeworlds.ActionCard) {
	if played != nil {
		if idx := s.handIndex(played.ID); idx >= 0 {
			s.hand = append(s.hand[:idx], s.hand[idx+1:]...)
		}
		s.energy -= played.Cost
		if played.Trait == threeworlds.CardTraitExhaust {
			s.exhaust = append(s.exhaust, *played)
		} else {
			s.discard = append(s.discard, *played)
		}
	}

	for _, b := range s.burned {
		s.discard = append(s.discard, b.Card)
	}
	s.burned = nil
	s.effortBonus = 0
	s.selectedIDs = nil
	s.reservedEnergy = 0
}

// Accessors return copies; pile state never aliases out.

// Hand returns the cards currently in hand.
func (s *Simulation) Hand() []threeworlds.ActionCard {
	return append([]threeworlds.ActionCard(nil), s.hand...)
}

// DiscardPile returns the discarded cards in landing order.
func (s *Simulation) DiscardPile() []threeworlds.ActionCard {
	return append([]threeworlds.ActionCard(nil), s.discard...)
}

// ExhaustPile returns the exhausted cards in landing order.
func (s *Simulation) ExhaustPile() []threeworlds.ActionCard {
	return append([]threeworlds.ActionCard(nil), s.exhaust...)
}

// Energy returns the unspent energy, reservations included.
func (s *Simulation) Energy() int { return s.energy }

// ReservedEnergy returns the energy held for the selected card.
func (s *Simulation) ReservedEnergy() int { return s.reservedEnergy }

// EffortBonus returns the accumulated Effort for the current action.
func (s *Simulation) EffortBonus() int { return s.effortBonus }

// EffortCardIDs returns the ids burned for the current action, in burn
// order.
func (s *Simulation) EffortCardIDs() []string {
	out := make([]string, 0, len(s.burned))
	for _, b := range s.burned {
		out = append(out, b.Card.ID)
	}
	return out
}

// SelectedCardIDs returns the selected card ids.
func (s *Simulation) SelectedCardIDs() []string {
	return append([]string(nil), s.selectedIDs...)
}

func (s *Simulation) playerTurn() bool {
	return s.eng.Status() == encounter.StatusOngoing &&
		s.eng.Phase() == encounter.PhasePlayerAction &&
		!s.eng.ActionTaken()
}

func (s *Simulation) isSelected(cardID string) bool {
	for _, id := range s.selectedIDs {
		if id == cardID {
			return true
		}
	}
	return false
}

func (s *Simulation) selectedCard() (threeworlds.ActionCard, bool) {
	if len(s.selectedIDs) == 0 {
		return threeworlds.ActionCard{}, false
	}
	if idx := s.handIndex(s.selectedIDs[0]); idx >= 0 {
		return s.hand[idx], true
	}
	return threeworlds.ActionCard{}, false
}

func (s *Simulation) handIndex(cardID string) int {
	for i := range s.hand {
		if s.hand[i].ID == cardID {
			return i
		}
	}
	return -1
}
