package encounter

import (
	"github.com/triglav-games/encounter-api/internal/engine/fate"
	"github.com/triglav-games/encounter-api/internal/engine/rng"
	"github.com/triglav-games/encounter-api/internal/entities/threeworlds"
)

// Phase is a stage inside one encounter round.
type Phase string

// Round phases, in order. AdvancePhase is the only legal transition between
// them.
const (
	PhaseIntent          Phase = "intent"
	PhasePlayerAction    Phase = "playerAction"
	PhaseEnemyResolution Phase = "enemyResolution"
	PhaseRoundEnd        Phase = "roundEnd"
)

// Status is the encounter-level outcome state.
type Status string

// Encounter statuses. Anything other than ongoing is terminal.
const (
	StatusOngoing Status = "ongoing"
	StatusVictory Status = "victory"
	StatusDefeat  Status = "defeat"
	StatusEscaped Status = "escaped"
)

// VictoryKind qualifies a victory.
type VictoryKind string

// Victory kinds. Pacified is reported only when every enemy was talked
// down rather than cut down.
const (
	VictoryKilled   VictoryKind = "killed"
	VictoryPacified VictoryKind = "pacified"
)

// EntityOutcome is the per-enemy outcome. Exactly one holds at a time.
type EntityOutcome string

// Per-enemy outcomes.
const (
	OutcomeOngoing  EntityOutcome = "ongoing"
	OutcomeKilled   EntityOutcome = "killed"
	OutcomePacified EntityOutcome = "pacified"
)

// Outcome is the encounter-level result.
type Outcome struct {
	Status  Status
	Victory VictoryKind
	// Nonviolent is set when every enemy outcome is pacified.
	Nonviolent bool
}

// ModifierType classifies an encounter modifier.
type ModifierType string

// Modifier types.
const (
	// ModifierDamage adds to physical attack rolls.
	ModifierDamage ModifierType = "damage"
	// ModifierInfluence adds to spiritual attack rolls.
	ModifierInfluence ModifierType = "influence"
	// ModifierWard raises the hero's guard against enemy intents.
	ModifierWard ModifierType = "ward"
)

// Modifier is a named numeric adjustment active for the whole encounter.
type Modifier struct {
	ID     string
	Type   ModifierType
	Value  int
	Source string
}

// Rules are the per-encounter constraints handed in by the caller.
type Rules struct {
	CanFlee   bool
	MaxEffort int
}

// Context is the immutable input to an encounter. The engine deep-copies
// everything it keeps; callers may reuse or discard the context freely
// after construction, and cancelling a built engine has no effect on the
// data the context was built from.
type Context struct {
	Hero    Hero
	Enemies []Enemy

	// FateDeck is the deck composition this encounter starts from,
	// usually the save slot's persistent deck state.
	FateDeck fate.DeckState

	// HeroCards and HeroEnergy are the hero's action-card loadout. The
	// engine carries them as opaque data for the combat layer.
	HeroCards  []threeworlds.ActionCard
	HeroEnergy int

	Modifiers []Modifier
	Rules     Rules

	// Seed drives the encounter's WorldRNG. Zero is normalized upstream.
	Seed uint64

	WorldResonance float64
	Balance        threeworlds.BalanceConfig
	Behaviors      map[string]threeworlds.BehaviorDefinition
}

// Intent is an enemy's declared plan for the round.
type Intent struct {
	EnemyID  string
	Kind     IntentKind
	Power    int
	TargetID string
}

// IntentKind is what an enemy plans to do.
type IntentKind string

// Intent kinds.
const (
	IntentAttack       IntentKind = "attack"
	IntentSpiritAttack IntentKind = "spiritAttack"
	IntentWait         IntentKind = "wait"
)

// ResolveIntentInput carries everything an intent resolver may consult.
// Resolvers must be deterministic: same input and RNG state, same intent.
type ResolveIntentInput struct {
	Enemy    Enemy
	Hero     Hero
	Behavior threeworlds.BehaviorDefinition
	Round    int
	RNG      *rng.WorldRNG
}

// IntentResolver produces enemy intents. Implementations interpret behavior
// definitions; the engine treats them as opaque.
type IntentResolver interface {
	ResolveIntent(input ResolveIntentInput) (Intent, error)
}

// ResolutionMode distinguishes the two escalation-relevant approaches.
type ResolutionMode string

// Resolution modes.
const (
	ModePhysical  ResolutionMode = "physical"
	ModeSpiritual ResolutionMode = "spiritual"
)

// ChangeKind tags one entry in the state-change log.
type ChangeKind string

// State change kinds.
const (
	ChangeIntentDeclared   ChangeKind = "intentDeclared"
	ChangeFateDrawn        ChangeKind = "fateDrawn"
	ChangeDamageDealt      ChangeKind = "damageDealt"
	ChangeWillEroded       ChangeKind = "willEroded"
	ChangeHealed           ChangeKind = "healed"
	ChangeCardPlayed       ChangeKind = "cardPlayed"
	ChangeResonanceShifted ChangeKind = "resonanceShifted"
	ChangeEnemyKilled      ChangeKind = "enemyKilled"
	ChangeEnemyPacified    ChangeKind = "enemyPacified"
	ChangeHeroDefeated     ChangeKind = "heroDefeated"
	ChangeFled             ChangeKind = "fled"
	ChangeWaited           ChangeKind = "waited"
	ChangeRoundAdvanced    ChangeKind = "roundAdvanced"
)

// StateChange is one typed delta in the ordered encounter log. EntityID is
// the affected entity; Detail carries the source or card when relevant.
type StateChange struct {
	Seq      int
	Round    int
	Kind     ChangeKind
	EntityID string
	Amount   int
	Value    float64
	Detail   string
}

// ActionKind names a committing player action.
type ActionKind string

// Player action kinds.
const (
	ActionAttack       ActionKind = "attack"
	ActionSpiritAttack ActionKind = "spiritAttack"
	ActionUseCard      ActionKind = "useCard"
	ActionFlee         ActionKind = "flee"
	ActionWait         ActionKind = "wait"
)

// AttackInput parameterizes Attack and SpiritAttack. EffortBonus and
// BonusDamage are flat additions supplied by the combat layer.
type AttackInput struct {
	TargetID    string
	EffortBonus int
	BonusDamage int
}

// UseCardInput parameterizes UseCard. The caller owns the card piles and
// passes the card being played by value.
type UseCardInput struct {
	Card        threeworlds.ActionCard
	TargetID    string
	EffortBonus int
	BonusDamage int
}

// ActionResult reports one committed player action.
type ActionResult struct {
	Action   ActionKind
	TargetID string

	// Fate is the card resolution behind the action, nil for flee/wait.
	Fate *fate.Resolution

	EffortBonus int
	BonusDamage int

	// TotalAttack is the full roll before the target's defense: base stat
	// + fate contribution + effort + bonuses.
	TotalAttack int

	// Damage is what actually landed after defense, clamped at zero.
	Damage int

	// Healed is set for mend cards instead of Damage.
	Healed int

	TargetHP      int
	TargetWP      int
	TargetOutcome EntityOutcome
}

// EnemyActionResult reports one resolved enemy intent.
type EnemyActionResult struct {
	EnemyID string
	Intent  Intent

	// Damage landed on the hero's HP or WP depending on the intent kind.
	Damage int

	HeroHP int
	HeroWP int
}

// Result is the terminal summary of an encounter. The caller owns applying
// it: committing hero state, deck state, and resonance back to persistent
// storage, or discarding everything.
type Result struct {
	Outcome        Outcome
	EntityOutcomes map[string]EntityOutcome
	StateChanges   []StateChange

	// FateDeck is the updated deck composition to persist on commit.
	FateDeck fate.DeckState

	// RNGState is the opaque generator state at termination.
	RNGState uint64

	WorldResonance float64
	Hero           Hero
	Enemies        []Enemy
	Rounds         int
}
