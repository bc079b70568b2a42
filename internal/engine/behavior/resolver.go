// Package behavior implements the stock intent resolver. It interprets the
// behavior definitions carried by the encounter context and rolls intents
// off the encounter's own WorldRNG, so enemy decisions replay exactly with
// the rest of the encounter.
package behavior

import (
	"github.com/triglav-games/encounter-api/internal/engine/encounter"
	"github.com/triglav-games/encounter-api/internal/entities/threeworlds"
)

// defaultZealotBias applies when a zealot definition ships without an
// explicit spirit bias.
const defaultZealotBias = 0.75

// Resolver turns behavior definitions into per-round intents. Stateless;
// all randomness comes through the input's RNG.
type Resolver struct{}

// NewResolver returns the stock resolver.
func NewResolver() *Resolver { return &Resolver{} }

var _ encounter.IntentResolver = (*Resolver)(nil)

// ResolveIntent picks the enemy's plan for the round. Unknown or missing
// patterns fall back to aggressive, so content can ship new patterns ahead
// of engine support without breaking older builds.
func (r *Resolver) ResolveIntent(input encounter.ResolveIntentInput) (encounter.Intent, error) {
	switch input.Behavior.Pattern {
	case threeworlds.BehaviorZealot:
		return r.zealot(input), nil
	case threeworlds.BehaviorWary:
		return r.wary(input), nil
	case threeworlds.BehaviorCraven:
		return r.craven(input), nil
	case threeworlds.BehaviorAggressive:
		return r.attack(input), nil
	default:
		return r.attack(input), nil
	}
}

func (r *Resolver) attack(in encounter.ResolveIntentInput) encounter.Intent {
	return encounter.Intent{
		EnemyID:  in.Enemy.ID,
		Kind:     encounter.IntentAttack,
		Power:    in.Enemy.Power,
		TargetID: in.Hero.ID,
	}
}

func (r *Resolver) spirit(in encounter.ResolveIntentInput) encounter.Intent {
	return encounter.Intent{
		EnemyID:  in.Enemy.ID,
		Kind:     encounter.IntentSpiritAttack,
		Power:    in.Enemy.Power,
		TargetID: in.Hero.ID,
	}
}

func (r *Resolver) wait(in encounter.ResolveIntentInput) encounter.Intent {
	return encounter.Intent{
		EnemyID:  in.Enemy.ID,
		Kind:     encounter.IntentWait,
		TargetID: in.Hero.ID,
	}
}

// zealot presses the spirit when the hero's will can be reached, weighted
// by the definition's bias; against a will-less hero it falls back to the
// blade.
func (r *Resolver) zealot(in encounter.ResolveIntentInput) encounter.Intent {
	if !in.Hero.HasWill() {
		return r.attack(in)
	}
	bias := in.Behavior.SpiritBias
	if bias <= 0 {
		bias = defaultZealotBias
	}
	if in.RNG.Float64() < bias {
		return r.spirit(in)
	}
	return r.attack(in)
}

// wary always fights at full health and grows watchful as wounds mount:
// the attack chance falls from certain toward an even coin. A wary enemy
// with a spirit bias may press the spirit instead of the blade.
func (r *Resolver) wary(in encounter.ResolveIntentInput) encounter.Intent {
	chance := 0.5 + healthFraction(in.Enemy)/2
	if in.RNG.Float64() >= chance {
		return r.wait(in)
	}
	if in.Behavior.SpiritBias > 0 && in.Hero.HasWill() && in.RNG.Float64() < in.Behavior.SpiritBias {
		return r.spirit(in)
	}
	return r.attack(in)
}

// craven cowers outright below half health and fights at most an even coin
// above it.
func (r *Resolver) craven(in encounter.ResolveIntentInput) encounter.Intent {
	healthy := healthFraction(in.Enemy)
	if healthy <= 0.5 {
		return r.wait(in)
	}
	if in.RNG.Float64() < 0.5 {
		return r.attack(in)
	}
	return r.wait(in)
}

func healthFraction(e encounter.Enemy) float64 {
	if e.MaxHP <= 0 {
		return 1
	}
	return float64(e.HP) / float64(e.MaxHP)
}
