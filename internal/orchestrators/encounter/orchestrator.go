// Package encounter implements the encounter lifecycle orchestrator: save
// slots, live encounter attempts, and the archived history behind them.
package encounter

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/triglav-games/encounter-api/internal/clients/content"
	"github.com/triglav-games/encounter-api/internal/entities/threeworlds"
	"github.com/triglav-games/encounter-api/internal/engine/behavior"
	"github.com/triglav-games/encounter-api/internal/engine/combat"
	engine "github.com/triglav-games/encounter-api/internal/engine/encounter"
	"github.com/triglav-games/encounter-api/internal/engine/fate"
	"github.com/triglav-games/encounter-api/internal/engine/rng"
	"github.com/triglav-games/encounter-api/internal/errors"
	"github.com/triglav-games/encounter-api/internal/pkg/clock"
	"github.com/triglav-games/encounter-api/internal/pkg/idgen"
	"github.com/triglav-games/encounter-api/internal/repositories/archive"
	"github.com/triglav-games/encounter-api/internal/repositories/attempt"
	"github.com/triglav-games/encounter-api/internal/repositories/save"
)

// Encounter rules applied to every encounter this service starts.
const (
	defaultMaxEffort = 3
	defaultCanFlee   = true
)

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	SaveRepo      save.Repository
	AttemptRepo   attempt.Repository
	ArchiveRepo   archive.Repository
	ContentClient content.Client
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.SaveRepo == nil {
		vb.RequiredField("SaveRepo")
	}
	if c.AttemptRepo == nil {
		vb.RequiredField("AttemptRepo")
	}
	if c.ArchiveRepo == nil {
		vb.RequiredField("ArchiveRepo")
	}
	if c.ContentClient == nil {
		vb.RequiredField("ContentClient")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	saveRepo    save.Repository
	attemptRepo attempt.Repository
	archiveRepo archive.Repository
	content     content.Client
	idGen       idgen.Generator
	clock       clock.Clock

	// Live encounters by ID. The map lasts only as long as the process;
	// anything lost here is rebuilt from the attempt store on demand.
	mu        sync.RWMutex
	instances map[string]*instance
}

// instance is one live encounter: the immutable context it was built from
// and the simulation running it. Actions on an instance serialize on mu.
type instance struct {
	mu sync.Mutex

	encounterID string
	saveID      string
	context     engine.Context
	sim         *combat.Simulation
	createdAt   time.Time
}

// NewOrchestrator creates a new encounter orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		saveRepo:    cfg.SaveRepo,
		attemptRepo: cfg.AttemptRepo,
		archiveRepo: cfg.ArchiveRepo,
		content:     cfg.ContentClient,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		instances:   make(map[string]*instance),
	}, nil
}

// CreateSave creates a fresh save slot: the default hero, the standard fate
// deck shuffled once, and neutral world resonance.
func (o *orchestrator) CreateSave(ctx context.Context, input *CreateSaveInput) (*CreateSaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	hero, err := o.content.DefaultHero(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load default hero")
	}
	if input.HeroName != "" {
		hero.Name = input.HeroName
	}

	cards, err := o.content.StandardDeck(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load standard deck")
	}
	r := rng.New(randomSeed())
	r.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	data := &save.SaveData{
		ID:        o.idGen.Generate(),
		Hero:      *hero,
		Deck:      fate.NewDeckState(cards),
		Resonance: 0,
	}

	created, err := o.saveRepo.Create(ctx, save.CreateInput{Save: data})
	if err != nil {
		return nil, err
	}

	slog.Info("Created save",
		"save_id", created.Save.ID,
		"hero", created.Save.Hero.Name,
	)

	return &CreateSaveOutput{Save: created.Save}, nil
}

// GetSave retrieves a save slot by ID.
func (o *orchestrator) GetSave(ctx context.Context, input *GetSaveInput) (*GetSaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SaveID == "" {
		return nil, errors.InvalidArgument("save ID is required")
	}

	got, err := o.saveRepo.Get(ctx, save.GetInput{ID: input.SaveID})
	if err != nil {
		return nil, err
	}

	return &GetSaveOutput{Save: got.Save}, nil
}

// StartEncounter builds a live encounter from a save slot and the requested
// enemies. The save itself is untouched until the encounter commits.
func (o *orchestrator) StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("saveID", input.SaveID, vb)
	if len(input.EnemyIDs) == 0 {
		vb.RequiredField("enemyIDs")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.saveRepo.Get(ctx, save.GetInput{ID: input.SaveID})
	if err != nil {
		return nil, err
	}
	slot := got.Save

	enemies, err := o.buildEnemies(ctx, input.EnemyIDs)
	if err != nil {
		return nil, err
	}

	behaviors, err := o.resolveBehaviors(ctx, enemies)
	if err != nil {
		return nil, err
	}

	heroCards, err := o.resolveHeroCards(ctx, slot)
	if err != nil {
		return nil, err
	}

	balance, err := o.content.GetBalance(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load balance config")
	}

	seed := randomSeed()
	if input.Seed != nil {
		seed = *input.Seed
	}

	rctx := engine.Context{
		Hero:           heroFromState(slot.Hero),
		Enemies:        enemies,
		FateDeck:       slot.Deck.Clone(),
		HeroCards:      heroCards,
		HeroEnergy:     slot.Hero.Energy,
		Rules:          engine.Rules{CanFlee: defaultCanFlee, MaxEffort: defaultMaxEffort},
		Seed:           seed,
		WorldResonance: slot.Resonance,
		Balance:        balance,
		Behaviors:      behaviors,
	}

	eng, err := engine.New(&engine.Config{
		Context:        rctx,
		IntentResolver: behavior.NewResolver(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build encounter")
	}

	inst := &instance{
		encounterID: o.idGen.Generate(),
		saveID:      slot.ID,
		context:     rctx,
		sim:         combat.NewSimulation(eng),
		createdAt:   o.clock.Now(),
	}

	// The initial snapshot must land before the encounter is visible;
	// an attempt that never hit storage cannot survive a restart.
	if _, err := o.attemptRepo.Put(ctx, attempt.PutInput{Attempt: &attempt.AttemptData{
		EncounterID: inst.encounterID,
		SaveID:      inst.saveID,
		Context:     inst.context,
		Snapshot:    *inst.sim.Snapshot(),
		CreatedAt:   inst.createdAt,
	}}); err != nil {
		return nil, errors.Wrap(err, "failed to persist encounter attempt")
	}

	o.mu.Lock()
	o.instances[inst.encounterID] = inst
	o.mu.Unlock()

	slog.Info("Started encounter",
		"encounter_id", inst.encounterID,
		"save_id", inst.saveID,
		"enemies", len(enemies),
		"seed", seed,
	)

	inst.mu.Lock()
	view := buildView(inst)
	inst.mu.Unlock()

	return &StartEncounterOutput{View: view}, nil
}

// GetEncounter returns the current state of a live encounter, rebuilding it
// from the persisted attempt when the process no longer holds it.
func (o *orchestrator) GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	inst, _, err := o.instance(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	inst.mu.Lock()
	view := buildView(inst)
	inst.mu.Unlock()

	return &GetEncounterOutput{View: view}, nil
}

// ResumeEncounter loads an encounter back into memory after a restart. It
// is a no-op when the encounter is already live.
func (o *orchestrator) ResumeEncounter(ctx context.Context, input *ResumeEncounterInput) (*ResumeEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	inst, resumed, err := o.instance(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	inst.mu.Lock()
	view := buildView(inst)
	inst.mu.Unlock()

	return &ResumeEncounterOutput{View: view, Resumed: resumed}, nil
}

// ExecuteAction applies one player action to a live encounter and persists
// the updated snapshot. Illegal actions return a coded error and leave the
// encounter exactly as it was.
func (o *orchestrator) ExecuteAction(ctx context.Context, input *ExecuteActionInput) (*ExecuteActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	inst, _, err := o.instance(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()

	out := &ExecuteActionOutput{}
	action := input.Action

	switch action.Kind {
	case ActionAdvance:
		if err := inst.sim.Engine().AdvancePhase(); err != nil {
			return nil, err
		}
	case ActionAttack:
		res, err := inst.sim.CommitAttack(action.TargetID)
		if err != nil {
			return nil, err
		}
		out.Action = res
	case ActionSpiritAttack:
		res, err := inst.sim.CommitInfluence(action.TargetID)
		if err != nil {
			return nil, err
		}
		out.Action = res
	case ActionPlayCard:
		res, err := inst.sim.PlayCard(action.CardID, action.TargetID)
		if err != nil {
			return nil, err
		}
		out.Action = res
	case ActionSelectCard:
		if !inst.sim.SelectCard(action.CardID) {
			return nil, errors.FailedPreconditionf("card %q cannot be selected", action.CardID)
		}
	case ActionDeselectCard:
		if !inst.sim.DeselectCard(action.CardID) {
			return nil, errors.FailedPreconditionf("card %q is not selected", action.CardID)
		}
	case ActionBurnEffort:
		if !inst.sim.BurnForEffort(action.CardID) {
			return nil, errors.FailedPreconditionf("card %q cannot be burned for effort", action.CardID)
		}
	case ActionUndoEffort:
		if !inst.sim.UndoBurnForEffort(action.CardID) {
			return nil, errors.FailedPreconditionf("card %q has no effort burn to undo", action.CardID)
		}
	case ActionResolveEnemy:
		res, err := inst.sim.Engine().ResolveEnemyAction(action.EnemyID)
		if err != nil {
			return nil, err
		}
		out.EnemyAction = res
	case ActionFlee:
		res, err := inst.sim.Flee()
		if err != nil {
			return nil, err
		}
		out.Action = res
	case ActionWait:
		res, err := inst.sim.Wait()
		if err != nil {
			return nil, err
		}
		out.Action = res
	default:
		return nil, errors.InvalidArgumentf("unknown action kind %q", action.Kind)
	}

	o.persistAttempt(ctx, inst)

	out.View = buildView(inst)
	return out, nil
}

// CommitEncounter applies a terminal encounter's outcome to its save slot,
// archives the result with its full change log, and drops the attempt. It
// fails while the encounter is still ongoing.
func (o *orchestrator) CommitEncounter(ctx context.Context, input *CommitEncounterInput) (*CommitEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	inst, _, err := o.instance(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()

	result, err := inst.sim.Engine().Finish()
	if err != nil {
		return nil, err
	}

	got, err := o.saveRepo.Get(ctx, save.GetInput{ID: inst.saveID})
	if err != nil {
		return nil, err
	}
	slot := got.Save
	slot.Hero.HP = result.Hero.HP
	slot.Hero.WP = result.Hero.WP
	slot.Deck = result.FateDeck
	slot.Resonance = result.WorldResonance

	// Save first, archive second. A failed archive leaves the attempt in
	// place so the commit can be retried; re-running the save update is
	// harmless because it writes the same values.
	updated, err := o.saveRepo.Update(ctx, save.UpdateInput{Save: slot})
	if err != nil {
		return nil, err
	}

	record := archive.ResultRecord{
		EncounterID: inst.encounterID,
		SaveID:      inst.saveID,
		Status:      string(result.Outcome.Status),
		Victory:     string(result.Outcome.Victory),
		Nonviolent:  result.Outcome.Nonviolent,
		Rounds:      result.Rounds,
		Seed:        inst.context.Seed,
		Resonance:   result.WorldResonance,
		HeroHP:      result.Hero.HP,
		HeroWP:      result.Hero.WP,
	}
	changes := make([]archive.ChangeRecord, 0, len(result.StateChanges))
	for _, c := range result.StateChanges {
		changes = append(changes, archive.ChangeRecord{
			Seq:      c.Seq,
			Round:    c.Round,
			Kind:     string(c.Kind),
			EntityID: c.EntityID,
			Amount:   c.Amount,
			Value:    c.Value,
			Detail:   c.Detail,
		})
	}

	archived, err := o.archiveRepo.Save(ctx, archive.SaveInput{Result: record, Changes: changes})
	if err != nil {
		return nil, err
	}

	if _, err := o.attemptRepo.Delete(ctx, attempt.DeleteInput{EncounterID: inst.encounterID}); err != nil {
		// The TTL reaps orphaned attempts eventually.
		slog.Warn("Failed to delete committed encounter attempt",
			"encounter_id", inst.encounterID,
			"error", err,
		)
	}

	o.mu.Lock()
	delete(o.instances, inst.encounterID)
	o.mu.Unlock()

	slog.Info("Committed encounter",
		"encounter_id", inst.encounterID,
		"save_id", inst.saveID,
		"status", record.Status,
		"rounds", record.Rounds,
	)

	return &CommitEncounterOutput{Save: updated.Save, Result: archived.Result}, nil
}

// DiscardEncounter abandons a live encounter. The save slot keeps the exact
// state it had before the encounter started.
func (o *orchestrator) DiscardEncounter(ctx context.Context, input *DiscardEncounterInput) (*DiscardEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	o.mu.Lock()
	inst, live := o.instances[input.EncounterID]
	delete(o.instances, input.EncounterID)
	o.mu.Unlock()

	if live {
		// Wait out any in-flight action so its snapshot write cannot
		// land after the delete below.
		inst.mu.Lock()
		defer inst.mu.Unlock()
	}

	deleted, err := o.attemptRepo.Delete(ctx, attempt.DeleteInput{EncounterID: input.EncounterID})
	if err != nil {
		return nil, err
	}
	if !live && !deleted.Deleted {
		return nil, errors.NotFoundf("encounter %s not found", input.EncounterID)
	}

	slog.Info("Discarded encounter", "encounter_id", input.EncounterID)

	return &DiscardEncounterOutput{}, nil
}

// ListArchive lists a save slot's finished encounters, newest first.
func (o *orchestrator) ListArchive(ctx context.Context, input *ListArchiveInput) (*ListArchiveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SaveID == "" {
		return nil, errors.InvalidArgument("save ID is required")
	}

	listed, err := o.archiveRepo.ListBySave(ctx, archive.ListBySaveInput{
		SaveID: input.SaveID,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, err
	}

	return &ListArchiveOutput{Results: listed.Results}, nil
}

// GetArchivedEncounter returns one archived encounter with its ordered
// change log.
func (o *orchestrator) GetArchivedEncounter(ctx context.Context, input *GetArchivedEncounterInput) (*GetArchivedEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	got, err := o.archiveRepo.Get(ctx, archive.GetInput{EncounterID: input.EncounterID})
	if err != nil {
		return nil, err
	}

	return &GetArchivedEncounterOutput{Result: got.Result, Changes: got.Changes}, nil
}

// instance returns the live instance for an encounter, rebuilding it from
// the persisted attempt when it is not in memory. The returned bool is true
// when a rebuild happened.
func (o *orchestrator) instance(ctx context.Context, encounterID string) (*instance, bool, error) {
	o.mu.RLock()
	inst, ok := o.instances[encounterID]
	o.mu.RUnlock()
	if ok {
		return inst, false, nil
	}

	got, err := o.attemptRepo.Get(ctx, attempt.GetInput{EncounterID: encounterID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, false, errors.NotFoundf("encounter %s not found", encounterID)
		}
		return nil, false, err
	}
	data := got.Attempt

	eng, err := engine.New(&engine.Config{
		Context:        data.Context,
		IntentResolver: behavior.NewResolver(),
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to rebuild encounter")
	}
	sim := combat.NewSimulation(eng)
	if err := sim.Restore(&data.Snapshot); err != nil {
		return nil, false, errors.Wrap(err, "failed to restore encounter snapshot")
	}

	inst = &instance{
		encounterID: encounterID,
		saveID:      data.SaveID,
		context:     data.Context,
		sim:         sim,
		createdAt:   data.CreatedAt,
	}

	o.mu.Lock()
	if existing, ok := o.instances[encounterID]; ok {
		// Another caller rebuilt it first; keep theirs.
		o.mu.Unlock()
		return existing, false, nil
	}
	o.instances[encounterID] = inst
	o.mu.Unlock()

	slog.Info("Resumed encounter from persisted attempt",
		"encounter_id", encounterID,
		"save_id", data.SaveID,
	)

	return inst, true, nil
}

// persistAttempt writes the instance's current snapshot. Failures are
// logged rather than returned: the action already applied in memory, and
// the next successful write replaces the whole snapshot anyway.
func (o *orchestrator) persistAttempt(ctx context.Context, inst *instance) {
	_, err := o.attemptRepo.Put(ctx, attempt.PutInput{Attempt: &attempt.AttemptData{
		EncounterID: inst.encounterID,
		SaveID:      inst.saveID,
		Context:     inst.context,
		Snapshot:    *inst.sim.Snapshot(),
		CreatedAt:   inst.createdAt,
	}})
	if err != nil {
		slog.Warn("Failed to persist encounter attempt",
			"encounter_id", inst.encounterID,
			"error", err,
		)
	}
}

// buildEnemies resolves enemy definitions into engine enemies at full
// health. Repeated definitions get numbered instance IDs so every
// combatant stays uniquely addressable.
func (o *orchestrator) buildEnemies(ctx context.Context, enemyIDs []string) ([]engine.Enemy, error) {
	total := make(map[string]int, len(enemyIDs))
	for _, id := range enemyIDs {
		total[id]++
	}

	seen := make(map[string]int, len(enemyIDs))
	enemies := make([]engine.Enemy, 0, len(enemyIDs))
	for _, id := range enemyIDs {
		def, err := o.content.GetEnemy(ctx, id)
		if err != nil {
			return nil, err
		}

		seen[id]++
		instanceID := def.ID
		if total[id] > 1 {
			instanceID = fmt.Sprintf("%s-%d", def.ID, seen[id])
		}

		enemies = append(enemies, engine.Enemy{
			ID:         instanceID,
			Name:       def.Name,
			HP:         def.MaxHP,
			MaxHP:      def.MaxHP,
			WP:         def.MaxWP,
			MaxWP:      def.MaxWP,
			Power:      def.Power,
			Defense:    def.Defense,
			Armor:      def.Armor,
			BehaviorID: def.BehaviorID,
		})
	}

	return enemies, nil
}

// resolveBehaviors loads the behavior definition for every distinct
// behavior ID the enemies reference. Unknown IDs fall back to a plain
// aggressive pattern instead of failing the whole encounter.
func (o *orchestrator) resolveBehaviors(ctx context.Context, enemies []engine.Enemy) (map[string]threeworlds.BehaviorDefinition, error) {
	behaviors := make(map[string]threeworlds.BehaviorDefinition, len(enemies))
	for _, enemy := range enemies {
		if _, ok := behaviors[enemy.BehaviorID]; ok {
			continue
		}

		def, err := o.content.GetBehavior(ctx, enemy.BehaviorID)
		if err != nil {
			if !errors.IsNotFound(err) {
				return nil, err
			}
			slog.Warn("Unknown behavior, falling back to aggressive",
				"behavior_id", enemy.BehaviorID,
				"enemy_id", enemy.ID,
			)
			behaviors[enemy.BehaviorID] = threeworlds.BehaviorDefinition{
				ID:      enemy.BehaviorID,
				Pattern: threeworlds.BehaviorAggressive,
			}
			continue
		}
		behaviors[enemy.BehaviorID] = *def
	}

	return behaviors, nil
}

// resolveHeroCards loads the hero's action-card loadout from the save slot.
func (o *orchestrator) resolveHeroCards(ctx context.Context, slot *save.SaveData) ([]threeworlds.ActionCard, error) {
	cards := make([]threeworlds.ActionCard, 0, len(slot.Hero.CardIDs))
	for _, cardID := range slot.Hero.CardIDs {
		card, err := o.content.GetCard(ctx, cardID)
		if err != nil {
			return nil, errors.Wrapf(err, "save %s references card %s", slot.ID, cardID)
		}
		cards = append(cards, *card)
	}
	return cards, nil
}

// heroFromState maps persistent hero state into an engine combatant.
func heroFromState(state threeworlds.HeroState) engine.Hero {
	return engine.Hero{
		ID:       state.ID,
		Name:     state.Name,
		HP:       state.HP,
		MaxHP:    state.MaxHP,
		WP:       state.WP,
		MaxWP:    state.MaxWP,
		Strength: state.Strength,
		Wisdom:   state.Wisdom,
		Power:    state.Power,
		Defense:  state.Defense,
		Armor:    state.Armor,
	}
}

// buildView assembles the client-facing state. Callers hold inst.mu.
func buildView(inst *instance) *EncounterView {
	eng := inst.sim.Engine()
	draw, discard := eng.DeckCounts()

	return &EncounterView{
		EncounterID: inst.encounterID,
		SaveID:      inst.saveID,

		Phase:       eng.Phase(),
		Round:       eng.Round(),
		Status:      eng.Status(),
		ActionTaken: eng.ActionTaken(),

		Hero:      eng.Hero(),
		Enemies:   eng.Enemies(),
		Outcomes:  eng.Outcomes(),
		Intents:   eng.Intents(),
		Resonance: eng.Resonance(),

		Hand:        inst.sim.Hand(),
		DiscardPile: inst.sim.DiscardPile(),
		ExhaustPile: inst.sim.ExhaustPile(),

		Energy:          inst.sim.Energy(),
		ReservedEnergy:  inst.sim.ReservedEnergy(),
		EffortBonus:     inst.sim.EffortBonus(),
		EffortCardIDs:   inst.sim.EffortCardIDs(),
		SelectedCardIDs: inst.sim.SelectedCardIDs(),

		DeckDrawCount:    draw,
		DeckDiscardCount: discard,

		CanFlee: eng.Rules().CanFlee,
	}
}

// randomSeed draws a fresh encounter seed from the OS entropy source. This
// is the only place outside tests where seeds come from; everything past
// StartEncounter is deterministic in the seed.
func randomSeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing means the host is badly broken.
		panic(err)
	}
	return binary.BigEndian.Uint64(b[:])
}
