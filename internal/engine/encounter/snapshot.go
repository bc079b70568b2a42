package encounter

import (
	"github.com/triglav-games/encounter-api/internal/engine/fate"
	"github.com/triglav-games/encounter-api/internal/errors"
)

// Snapshot captures every mutable datum of a running engine. Together with
// the Context the engine was built from, it is sufficient to resume the
// encounter mid-round and replay it identically. All fields are plain data
// and serialize cleanly.
type Snapshot struct {
	Phase       Phase
	Round       int
	Status      Status
	Victory     VictoryKind
	Nonviolent  bool
	ActionTaken bool

	Hero     Hero
	Enemies  []Enemy
	Outcomes map[string]EntityOutcome

	Intents  map[string]Intent
	Resolved map[string]bool

	Resonance float64
	Modes     map[string]ResolutionMode
	Escalated map[string]bool

	Seq     int
	Changes []StateChange

	Deck     fate.DeckState
	RNGState uint64
}

// Snapshot returns a deep copy of the engine's mutable state.
func (e *Engine) Snapshot() *Snapshot {
	return &Snapshot{
		Phase:       e.phase,
		Round:       e.round,
		Status:      e.status,
		Victory:     e.victory,
		Nonviolent:  e.nonviolent,
		ActionTaken: e.actionTaken,
		Hero:        e.hero,
		Enemies:     append([]Enemy(nil), e.enemies...),
		Outcomes:    copyOutcomes(e.outcomes),
		Intents:     copyIntents(e.intents),
		Resolved:    copyFlags(e.resolved),
		Resonance:   e.resonance,
		Modes:       copyModes(e.modes),
		Escalated:   copyFlags(e.escalated),
		Seq:         e.seq,
		Changes:     append([]StateChange(nil), e.changes...),
		Deck:        e.deck.State(),
		RNGState:    e.rng.State(),
	}
}

// RestoreSnapshot overwrites the engine's mutable state with the snapshot.
// The engine must have been built from the same context the snapshot was
// taken under; static data (rules, balance, behaviors, loadout) is not part
// of the snapshot and stays as constructed.
func (e *Engine) RestoreSnapshot(s *Snapshot) error {
	if s == nil {
		return errors.InvalidArgument("snapshot is required")
	}
	if s.Hero.ID != e.hero.ID {
		return errors.InvalidArgumentf("snapshot belongs to hero %q, engine has %q", s.Hero.ID, e.hero.ID)
	}
	if len(s.Enemies) != len(e.enemies) {
		return errors.InvalidArgumentf("snapshot has %d enemies, engine has %d", len(s.Enemies), len(e.enemies))
	}

	e.phase = s.Phase
	e.round = s.Round
	e.status = s.Status
	e.victory = s.Victory
	e.nonviolent = s.Nonviolent
	e.actionTaken = s.ActionTaken
	e.hero = s.Hero
	e.enemies = append([]Enemy(nil), s.Enemies...)
	e.outcomes = copyOutcomes(s.Outcomes)
	e.intents = copyIntents(s.Intents)
	e.resolved = copyFlags(s.Resolved)
	e.resonance = s.Resonance
	e.modes = copyModes(s.Modes)
	e.escalated = copyFlags(s.Escalated)
	e.seq = s.Seq
	e.changes = append([]StateChange(nil), s.Changes...)
	e.deck.RestoreState(s.Deck)
	e.rng.Restore(s.RNGState)
	return nil
}

// Copy helpers always allocate, so a snapshot that round-tripped through
// JSON with empty maps still restores into indexable state.

func copyOutcomes(in map[string]EntityOutcome) map[string]EntityOutcome {
	out := make(map[string]EntityOutcome, len(in))
	for id, oc := range in {
		out[id] = oc
	}
	return out
}

func copyIntents(in map[string]Intent) map[string]Intent {
	out := make(map[string]Intent, len(in))
	for id, intent := range in {
		out[id] = intent
	}
	return out
}

func copyFlags(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for id, v := range in {
		out[id] = v
	}
	return out
}

func copyModes(in map[string]ResolutionMode) map[string]ResolutionMode {
	out := make(map[string]ResolutionMode, len(in))
	for id, m := range in {
		out[id] = m
	}
	return out
}
