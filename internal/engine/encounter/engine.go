// Package encounter implements the deterministic encounter engine: a phase
// state machine over value-copied combatants, a Fate deck, and a world
// resonance scalar. One engine instance plays one encounter attempt; it is
// single-writer and never shares memory with persistent state. Rejected
// actions leave the engine byte-for-byte unchanged.
package encounter

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/triglav-games/encounter-api/internal/engine/fate"
	"github.com/triglav-games/encounter-api/internal/engine/rng"
	"github.com/triglav-games/encounter-api/internal/entities/threeworlds"
	"github.com/triglav-games/encounter-api/internal/errors"
)

// Config holds dependencies for building an engine.
type Config struct {
	Context        Context
	IntentResolver IntentResolver
}

// Validate ensures the configuration can produce a playable encounter.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.IntentResolver == nil {
		vb.RequiredField("intent_resolver")
	}

	ctx := &c.Context
	errors.ValidateRequired("hero.id", ctx.Hero.ID, vb)
	errors.ValidatePositive("hero.max_hp", ctx.Hero.MaxHP, vb)
	if ctx.Hero.MaxHP > 0 && (ctx.Hero.HP <= 0 || ctx.Hero.HP > ctx.Hero.MaxHP) {
		vb.Fieldf("hero.hp", "must be within (0, %d], got %d", ctx.Hero.MaxHP, ctx.Hero.HP)
	}
	if ctx.Hero.MaxWP > 0 && (ctx.Hero.WP <= 0 || ctx.Hero.WP > ctx.Hero.MaxWP) {
		vb.Fieldf("hero.wp", "must be within (0, %d], got %d", ctx.Hero.MaxWP, ctx.Hero.WP)
	}

	if len(ctx.Enemies) == 0 {
		vb.Field("enemies", "at least one enemy is required")
	}
	seen := make(map[string]bool, len(ctx.Enemies))
	for i, enemy := range ctx.Enemies {
		if enemy.ID == "" {
			vb.Fieldf("enemies", "enemy at index %d has no id", i)
			continue
		}
		if seen[enemy.ID] {
			vb.Fieldf("enemies", "duplicate enemy id %q", enemy.ID)
		}
		seen[enemy.ID] = true
		if enemy.MaxHP <= 0 || enemy.HP <= 0 || enemy.HP > enemy.MaxHP {
			vb.Fieldf("enemies", "enemy %q must enter alive with hp within (0, max]", enemy.ID)
		}
		if enemy.MaxWP > 0 && (enemy.WP <= 0 || enemy.WP > enemy.MaxWP) {
			vb.Fieldf("enemies", "enemy %q must enter with wp within (0, max]", enemy.ID)
		}
	}

	if ctx.FateDeck.Count() == 0 {
		vb.Field("fate_deck", "must contain at least one card")
	}

	return vb.Build()
}

// Engine drives one encounter. Not safe for concurrent use; callers
// serialize access per instance.
type Engine struct {
	hero     Hero
	enemies  []Enemy
	outcomes map[string]EntityOutcome

	deck         *fate.DeckManager
	rng          *rng.WorldRNG
	fateResolver *fate.Resolver

	intents  map[string]Intent
	resolved map[string]bool

	phase       Phase
	round       int
	status      Status
	victory     VictoryKind
	nonviolent  bool
	actionTaken bool

	resonance float64
	modes     map[string]ResolutionMode
	escalated map[string]bool

	changes []StateChange
	seq     int

	rules     Rules
	modifiers []Modifier
	balance   threeworlds.BalanceConfig
	behaviors map[string]threeworlds.BehaviorDefinition

	heroCards  []threeworlds.ActionCard
	heroEnergy int

	intentResolver IntentResolver
}

// New builds an engine from the context, deep-copying everything it keeps,
// and declares round one's enemy intents. The context's seed fully
// determines the encounter given the same action sequence.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx := cfg.Context
	balance := ctx.Balance.Normalized()
	worldRNG := rng.New(ctx.Seed)

	e := &Engine{
		hero:           ctx.Hero,
		enemies:        append([]Enemy(nil), ctx.Enemies...),
		outcomes:       make(map[string]EntityOutcome, len(ctx.Enemies)),
		deck:           fate.NewDeckManager(ctx.FateDeck, worldRNG),
		rng:            worldRNG,
		fateResolver:   fate.NewResolver(balance),
		intents:        make(map[string]Intent),
		resolved:       make(map[string]bool),
		phase:          PhaseIntent,
		round:          1,
		status:         StatusOngoing,
		resonance:      clampResonance(ctx.WorldResonance),
		modes:          make(map[string]ResolutionMode),
		escalated:      make(map[string]bool),
		rules:          ctx.Rules,
		modifiers:      append([]Modifier(nil), ctx.Modifiers...),
		balance:        balance,
		behaviors:      copyBehaviors(ctx.Behaviors),
		heroCards:      append([]threeworlds.ActionCard(nil), ctx.HeroCards...),
		heroEnergy:     ctx.HeroEnergy,
		intentResolver: cfg.IntentResolver,
	}
	for _, enemy := range e.enemies {
		e.outcomes[enemy.ID] = OutcomeOngoing
	}

	if err := e.generateIntents(); err != nil {
		return nil, err
	}
	return e, nil
}

// AdvancePhase moves to the next phase in the round cycle. It is the only
// legal transition: playerAction requires a committed action first, and
// enemyResolution requires every living enemy's intent resolved. Leaving
// roundEnd increments the round and declares fresh intents.
func (e *Engine) AdvancePhase() error {
	if err := e.ensureOngoing(); err != nil {
		return err
	}

	switch e.phase {
	case PhaseIntent:
		e.phase = PhasePlayerAction
	case PhasePlayerAction:
		if !e.actionTaken {
			return errors.FailedPrecondition("a committing action must be taken before enemies respond")
		}
		e.phase = PhaseEnemyResolution
	case PhaseEnemyResolution:
		if n := e.unresolvedCount(); n > 0 {
			return errors.FailedPreconditionf("%d enemy intents are still unresolved", n)
		}
		e.phase = PhaseRoundEnd
	case PhaseRoundEnd:
		e.round++
		e.actionTaken = false
		e.phase = PhaseIntent
		e.record(ChangeRoundAdvanced, "", e.round, 0, "")
		if err := e.generateIntents(); err != nil {
			return err
		}
	}
	return nil
}

// Attack strikes the target's body: strength + effort + fate + bonuses
// against defense, never touching willpower.
func (e *Engine) Attack(input *AttackInput) (*ActionResult, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return e.strike(strikeParams{
		action:   ActionAttack,
		mode:     ModePhysical,
		rctx:     fate.ContextCombatPhysical,
		base:     e.hero.Strength,
		targetID: input.TargetID,
		effort:   input.EffortBonus,
		bonus:    input.BonusDamage + e.modifierTotal(ModifierDamage),
	})
}

// SpiritAttack erodes the target's will: wisdom + effort + fate + bonuses
// against defense, never touching health. Targets without a willpower
// track reject the action.
func (e *Engine) SpiritAttack(input *AttackInput) (*ActionResult, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return e.strike(strikeParams{
		action:   ActionSpiritAttack,
		mode:     ModeSpiritual,
		rctx:     fate.ContextCombatSpiritual,
		base:     e.hero.Wisdom,
		targetID: input.TargetID,
		effort:   input.EffortBonus,
		bonus:    input.BonusDamage + e.modifierTotal(ModifierInfluence),
		vsWill:   true,
	})
}

// UseCard commits an action card as the round's action. Attack and
// influence cards strike with the card's bonus folded in; mend cards heal
// the hero. Every card draws Fate.
func (e *Engine) UseCard(input *UseCardInput) (*ActionResult, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	card := input.Card
	if card.ID == "" {
		return nil, errors.InvalidArgument("card is required")
	}

	switch card.Kind {
	case threeworlds.CardKindAttack:
		return e.strike(strikeParams{
			action:   ActionUseCard,
			mode:     ModePhysical,
			rctx:     fate.ContextCombatPhysical,
			base:     e.hero.Strength,
			targetID: input.TargetID,
			effort:   input.EffortBonus,
			bonus:    input.BonusDamage + card.Bonus + e.modifierTotal(ModifierDamage),
			cardID:   card.ID,
		})
	case threeworlds.CardKindInfluence:
		return e.strike(strikeParams{
			action:   ActionUseCard,
			mode:     ModeSpiritual,
			rctx:     fate.ContextCombatSpiritual,
			base:     e.hero.Wisdom,
			targetID: input.TargetID,
			effort:   input.EffortBonus,
			bonus:    input.BonusDamage + card.Bonus + e.modifierTotal(ModifierInfluence),
			cardID:   card.ID,
			vsWill:   true,
		})
	case threeworlds.CardKindMend:
		return e.mend(card, input.EffortBonus)
	default:
		return nil, errors.InvalidArgumentf("unknown card kind %q", card.Kind)
	}
}

// Flee ends the encounter as escaped when the rules allow it.
func (e *Engine) Flee() (*ActionResult, error) {
	if err := e.ensurePlayerAction(); err != nil {
		return nil, err
	}
	if !e.rules.CanFlee {
		return nil, errors.FailedPrecondition("flight is barred in this encounter")
	}

	e.actionTaken = true
	e.status = StatusEscaped
	e.record(ChangeFled, e.hero.ID, 0, 0, "")
	return &ActionResult{Action: ActionFlee}, nil
}

// Wait passes the round without consulting Fate: nothing is drawn from or
// discarded into the deck.
func (e *Engine) Wait() (*ActionResult, error) {
	if err := e.ensurePlayerAction(); err != nil {
		return nil, err
	}

	e.actionTaken = true
	e.record(ChangeWaited, e.hero.ID, 0, 0, "")
	return &ActionResult{Action: ActionWait}, nil
}

// ResolveEnemyAction applies one enemy's declared intent to the hero.
// Enemies act without drawing Fate; the deck answers the hero alone.
func (e *Engine) ResolveEnemyAction(enemyID string) (*EnemyActionResult, error) {
	if err := e.ensureOngoing(); err != nil {
		return nil, err
	}
	if e.phase != PhaseEnemyResolution {
		return nil, errors.FailedPreconditionf("enemy resolution is not allowed during the %s phase", e.phase)
	}

	found := false
	for i := range e.enemies {
		if e.enemies[i].ID == enemyID {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.NotFoundf("no enemy %q in this encounter", enemyID)
	}
	if oc := e.outcomes[enemyID]; oc != OutcomeOngoing {
		return nil, errors.FailedPreconditionf("enemy %q is already %s", enemyID, oc)
	}
	if e.resolved[enemyID] {
		return nil, errors.FailedPreconditionf("enemy %q already acted this round", enemyID)
	}
	intent, ok := e.intents[enemyID]
	if !ok {
		return nil, errors.Internalf("enemy %q has no declared intent", enemyID)
	}

	result := &EnemyActionResult{EnemyID: enemyID, Intent: intent}
	ward := e.modifierTotal(ModifierWard)

	switch intent.Kind {
	case IntentWait:
		e.record(ChangeWaited, enemyID, 0, 0, "")
	case IntentAttack:
		harm := intent.Power - (e.hero.Armor + ward)
		if harm < 0 {
			harm = 0
		}
		e.hero.HP -= harm
		if e.hero.HP < 0 {
			e.hero.HP = 0
		}
		result.Damage = harm
		e.record(ChangeDamageDealt, e.hero.ID, harm, 0, enemyID)
		if !e.hero.Alive() {
			e.status = StatusDefeat
			e.record(ChangeHeroDefeated, e.hero.ID, 0, 0, "")
		}
	case IntentSpiritAttack:
		if !e.hero.HasWill() {
			// Nothing to erode; the assault passes through as a wasted turn.
			e.record(ChangeWaited, enemyID, 0, 0, "spirit assault found no purchase")
			break
		}
		harm := intent.Power - (e.hero.Defense + ward)
		if harm < 0 {
			harm = 0
		}
		e.hero.WP -= harm
		if e.hero.WP < 0 {
			e.hero.WP = 0
		}
		result.Damage = harm
		e.record(ChangeWillEroded, e.hero.ID, harm, 0, enemyID)
		if e.hero.WillBroken() {
			e.status = StatusDefeat
			e.record(ChangeHeroDefeated, e.hero.ID, 0, 0, "will broken")
		}
	}

	e.resolved[enemyID] = true
	result.HeroHP = e.hero.HP
	result.HeroWP = e.hero.WP
	return result, nil
}

// Finish returns the terminal result. It fails while the encounter is
// still ongoing.
func (e *Engine) Finish() (*Result, error) {
	if e.status == StatusOngoing {
		return nil, errors.FailedPrecondition("encounter is still ongoing")
	}

	outcomes := make(map[string]EntityOutcome, len(e.outcomes))
	for id, oc := range e.outcomes {
		outcomes[id] = oc
	}
	return &Result{
		Outcome:        Outcome{Status: e.status, Victory: e.victory, Nonviolent: e.nonviolent},
		EntityOutcomes: outcomes,
		StateChanges:   append([]StateChange(nil), e.changes...),
		FateDeck:       e.deck.State(),
		RNGState:       e.rng.State(),
		WorldResonance: e.resonance,
		Hero:           e.hero,
		Enemies:        append([]Enemy(nil), e.enemies...),
		Rounds:         e.round,
	}, nil
}

// Accessors. Everything returned is a copy; nothing aliases engine state.

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Round returns the current round, starting at one.
func (e *Engine) Round() int { return e.round }

// Status returns the encounter status.
func (e *Engine) Status() Status { return e.status }

// Hero returns a copy of the hero's current state.
func (e *Engine) Hero() Hero { return e.hero }

// Enemies returns a copy of every enemy's current state.
func (e *Engine) Enemies() []Enemy {
	return append([]Enemy(nil), e.enemies...)
}

// Outcomes returns a copy of the per-enemy outcomes.
func (e *Engine) Outcomes() map[string]EntityOutcome {
	out := make(map[string]EntityOutcome, len(e.outcomes))
	for id, oc := range e.outcomes {
		out[id] = oc
	}
	return out
}

// Intents returns this round's declared intents in enemy order.
func (e *Engine) Intents() []Intent {
	out := make([]Intent, 0, len(e.intents))
	for _, enemy := range e.enemies {
		if intent, ok := e.intents[enemy.ID]; ok {
			out = append(out, intent)
		}
	}
	return out
}

// Resonance returns the current world resonance.
func (e *Engine) Resonance() float64 { return e.resonance }

// ActionTaken reports whether this round's committing action was spent.
func (e *Engine) ActionTaken() bool { return e.actionTaken }

// Rules returns the encounter rules.
func (e *Engine) Rules() Rules { return e.rules }

// Changes returns a copy of the ordered state-change log so far.
func (e *Engine) Changes() []StateChange {
	return append([]StateChange(nil), e.changes...)
}

// DeckCounts returns the draw and discard pile sizes.
func (e *Engine) DeckCounts() (draw, discard int) {
	return e.deck.DrawCount(), e.deck.DiscardCount()
}

// Loadout returns the hero's action cards and starting energy for the
// combat layer. The engine itself never spends either.
func (e *Engine) Loadout() ([]threeworlds.ActionCard, int) {
	return append([]threeworlds.ActionCard(nil), e.heroCards...), e.heroEnergy
}

// Combatants lists the hero and every enemy as toolkit entities, in a
// stable order.
func (e *Engine) Combatants() []core.Entity {
	out := make([]core.Entity, 0, len(e.enemies)+1)
	out = append(out, e.hero)
	for _, enemy := range e.enemies {
		out = append(out, enemy)
	}
	return out
}

// internals

type strikeParams struct {
	action   ActionKind
	mode     ResolutionMode
	rctx     fate.ResolutionContext
	base     int
	targetID string
	effort   int
	bonus    int
	cardID   string
	vsWill   bool
}

// strike is the shared committing path for attack, spiritAttack, and
// offensive cards. All validation happens before the first mutation.
func (e *Engine) strike(p strikeParams) (*ActionResult, error) {
	if err := e.ensurePlayerAction(); err != nil {
		return nil, err
	}
	target, idx, err := e.targetFor(p.targetID)
	if err != nil {
		return nil, err
	}
	if p.vsWill && !target.HasWill() {
		return nil, errors.FailedPreconditionf("enemy %q has no will to erode", target.ID)
	}

	if p.cardID != "" {
		e.record(ChangeCardPlayed, e.hero.ID, 0, 0, p.cardID)
	}
	e.noteEscalation(target.ID, p.mode)

	res, err := e.fateResolver.Resolve(p.rctx, p.base, e.deck, e.resonance)
	if err != nil {
		return nil, err
	}
	e.record(ChangeFateDrawn, e.hero.ID, res.EffectiveValue+res.KeywordEffect.Bonus, 0, res.Card.ID)

	total := res.Total + p.effort + p.bonus
	damage := total - target.Defense
	if damage < 0 {
		damage = 0
	}

	if p.vsWill {
		target.WP -= damage
		if target.WP < 0 {
			target.WP = 0
		}
		e.record(ChangeWillEroded, target.ID, damage, 0, "")
		if target.Pacified() {
			e.outcomes[target.ID] = OutcomePacified
			e.record(ChangeEnemyPacified, target.ID, 0, 0, "")
		}
	} else {
		target.HP -= damage
		if target.HP < 0 {
			target.HP = 0
		}
		e.record(ChangeDamageDealt, target.ID, damage, 0, "")
		if !target.Alive() {
			e.outcomes[target.ID] = OutcomeKilled
			e.record(ChangeEnemyKilled, target.ID, 0, 0, "")
		}
	}

	e.enemies[idx] = *target
	e.actionTaken = true
	e.checkVictory()

	return &ActionResult{
		Action:        p.action,
		TargetID:      target.ID,
		Fate:          res,
		EffortBonus:   p.effort,
		BonusDamage:   p.bonus,
		TotalAttack:   total,
		Damage:        damage,
		TargetHP:      target.HP,
		TargetWP:      target.WP,
		TargetOutcome: e.outcomes[target.ID],
	}, nil
}

// mend heals the hero through a defensive Fate draw.
func (e *Engine) mend(card threeworlds.ActionCard, effort int) (*ActionResult, error) {
	if err := e.ensurePlayerAction(); err != nil {
		return nil, err
	}

	e.record(ChangeCardPlayed, e.hero.ID, 0, 0, card.ID)

	res, err := e.fateResolver.Resolve(fate.ContextDefense, 0, e.deck, e.resonance)
	if err != nil {
		return nil, err
	}
	e.record(ChangeFateDrawn, e.hero.ID, res.EffectiveValue+res.KeywordEffect.Bonus, 0, res.Card.ID)

	heal := card.Bonus + effort + res.Total
	if heal < 0 {
		heal = 0
	}
	if missing := e.hero.MaxHP - e.hero.HP; heal > missing {
		heal = missing
	}
	e.hero.HP += heal
	e.record(ChangeHealed, e.hero.ID, heal, 0, card.ID)

	e.actionTaken = true
	return &ActionResult{
		Action:      ActionUseCard,
		TargetID:    e.hero.ID,
		Fate:        res,
		EffortBonus: effort,
		Healed:      heal,
		TargetHP:    e.hero.HP,
		TargetWP:    e.hero.WP,
	}, nil
}

func (e *Engine) ensureOngoing() error {
	if e.status != StatusOngoing {
		return errors.FailedPreconditionf("encounter already ended: %s", e.status)
	}
	return nil
}

func (e *Engine) ensurePlayerAction() error {
	if err := e.ensureOngoing(); err != nil {
		return err
	}
	if e.phase != PhasePlayerAction {
		return errors.FailedPreconditionf("player actions are not allowed during the %s phase", e.phase)
	}
	if e.actionTaken {
		return errors.FailedPrecondition("a committing action was already taken this round")
	}
	return nil
}

// targetFor returns a mutable copy of the ongoing enemy with the given id
// plus its slice index.
func (e *Engine) targetFor(id string) (*Enemy, int, error) {
	if id == "" {
		return nil, 0, errors.InvalidArgument("target id is required")
	}
	for i := range e.enemies {
		if e.enemies[i].ID != id {
			continue
		}
		if oc := e.outcomes[id]; oc != OutcomeOngoing {
			return nil, 0, errors.FailedPreconditionf("enemy %q is already %s", id, oc)
		}
		enemy := e.enemies[i]
		return &enemy, i, nil
	}
	return nil, 0, errors.NotFoundf("no enemy %q in this encounter", id)
}

// noteEscalation applies the one-time resonance shift toward the Nav pole
// when the hero switches approach against a target. The shift lands before
// the fate draw, so the draw resolves under the darkened world.
func (e *Engine) noteEscalation(targetID string, mode ResolutionMode) {
	prev, seen := e.modes[targetID]
	if seen && prev != mode && !e.escalated[targetID] {
		e.escalated[targetID] = true
		e.resonance = clampResonance(e.resonance - e.balance.EscalationShift)
		e.record(ChangeResonanceShifted, targetID, 0, e.resonance, "escalation")
	}
	e.modes[targetID] = mode
}

// generateIntents asks the resolver for one intent per ongoing enemy, in
// enemy order. Intents commit only when every resolution succeeded.
func (e *Engine) generateIntents() error {
	generated := make(map[string]Intent)
	for _, enemy := range e.enemies {
		if e.outcomes[enemy.ID] != OutcomeOngoing {
			continue
		}
		intent, err := e.intentResolver.ResolveIntent(ResolveIntentInput{
			Enemy:    enemy,
			Hero:     e.hero,
			Behavior: e.behaviors[enemy.BehaviorID],
			Round:    e.round,
			RNG:      e.rng,
		})
		if err != nil {
			return errors.Wrapf(err, "resolving intent for enemy %q", enemy.ID)
		}
		intent.EnemyID = enemy.ID
		if intent.TargetID == "" {
			intent.TargetID = e.hero.ID
		}
		generated[enemy.ID] = intent
	}

	e.intents = generated
	e.resolved = make(map[string]bool, len(generated))
	for _, enemy := range e.enemies {
		if intent, ok := generated[enemy.ID]; ok {
			e.record(ChangeIntentDeclared, enemy.ID, intent.Power, 0, string(intent.Kind))
		}
	}
	return nil
}

func (e *Engine) unresolvedCount() int {
	n := 0
	for _, enemy := range e.enemies {
		if e.outcomes[enemy.ID] == OutcomeOngoing && !e.resolved[enemy.ID] {
			n++
		}
	}
	return n
}

// checkVictory flips the status once no enemy remains ongoing. The victory
// is pacified, and the encounter nonviolent, only when every single enemy
// was pacified.
func (e *Engine) checkVictory() {
	allPacified := true
	for _, enemy := range e.enemies {
		switch e.outcomes[enemy.ID] {
		case OutcomeOngoing:
			return
		case OutcomeKilled:
			allPacified = false
		}
	}
	e.status = StatusVictory
	if allPacified {
		e.victory = VictoryPacified
		e.nonviolent = true
	} else {
		e.victory = VictoryKilled
	}
}

func (e *Engine) modifierTotal(t ModifierType) int {
	total := 0
	for _, m := range e.modifiers {
		if m.Type == t {
			total += m.Value
		}
	}
	return total
}

func (e *Engine) record(kind ChangeKind, entityID string, amount int, value float64, detail string) {
	e.seq++
	e.changes = append(e.changes, StateChange{
		Seq:      e.seq,
		Round:    e.round,
		Kind:     kind,
		EntityID: entityID,
		Amount:   amount,
		Value:    value,
		Detail:   detail,
	})
}

// clampResonance bounds resonance to [-1, 1].
func clampResonance(v float64) float64 {
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	}
	return v
}

func copyBehaviors(in map[string]threeworlds.BehaviorDefinition) map[string]threeworlds.BehaviorDefinition {
	out := make(map[string]threeworlds.BehaviorDefinition, len(in))
	for id, def := range in {
		out[id] = def
	}
	return out
}
