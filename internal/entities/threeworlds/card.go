package threeworlds

// CardKind says what a played action card does.
type CardKind string

// Action card kinds.
const (
	// CardKindAttack adds its bonus to a physical strike.
	CardKindAttack CardKind = "attack"
	// CardKindInfluence adds its bonus to a spiritual appeal.
	CardKindInfluence CardKind = "influence"
	// CardKindMend restores the hero's health when played.
	CardKindMend CardKind = "mend"
)

// CardTrait says where a card goes after being played normally. Burning a
// card for effort always sends it to the discard pile regardless of trait.
type CardTrait string

// Action card traits.
const (
	CardTraitDiscard CardTrait = "discard"
	CardTraitExhaust CardTrait = "exhaust"
)

// ActionCard is a card in the hero's hand. Distinct from a Fate card: action
// cards are spent by the player, Fate cards are drawn by the world.
type ActionCard struct {
	ID    string
	Name  string
	Kind  CardKind
	Cost  int // energy to play
	Bonus int
	Trait CardTrait
}
