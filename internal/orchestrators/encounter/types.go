package encounter

import (
	"context"

	"github.com/triglav-games/encounter-api/internal/entities/threeworlds"
	engine "github.com/triglav-games/encounter-api/internal/engine/encounter"
	"github.com/triglav-games/encounter-api/internal/repositories/archive"
	"github.com/triglav-games/encounter-api/internal/repositories/save"
)

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/triglav-games/encounter-api/internal/orchestrators/encounter Service

// Service defines the encounter lifecycle operations
type Service interface {
	// Save lifecycle
	CreateSave(ctx context.Context, input *CreateSaveInput) (*CreateSaveOutput, error)
	GetSave(ctx context.Context, input *GetSaveInput) (*GetSaveOutput, error)

	// Encounter lifecycle
	StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error)
	GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error)
	ResumeEncounter(ctx context.Context, input *ResumeEncounterInput) (*ResumeEncounterOutput, error)
	ExecuteAction(ctx context.Context, input *ExecuteActionInput) (*ExecuteActionOutput, error)
	CommitEncounter(ctx context.Context, input *CommitEncounterInput) (*CommitEncounterOutput, error)
	DiscardEncounter(ctx context.Context, input *DiscardEncounterInput) (*DiscardEncounterOutput, error)

	// Encounter history
	ListArchive(ctx context.Context, input *ListArchiveInput) (*ListArchiveOutput, error)
	GetArchivedEncounter(ctx context.Context, input *GetArchivedEncounterInput) (*GetArchivedEncounterOutput, error)
}

// ActionKind names one player-facing encounter action.
type ActionKind string

// Player action kinds accepted by ExecuteAction.
const (
	ActionAdvance      ActionKind = "advance"
	ActionAttack       ActionKind = "attack"
	ActionSpiritAttack ActionKind = "spiritAttack"
	ActionPlayCard     ActionKind = "playCard"
	ActionSelectCard   ActionKind = "selectCard"
	ActionDeselectCard ActionKind = "deselectCard"
	ActionBurnEffort   ActionKind = "burnEffort"
	ActionUndoEffort   ActionKind = "undoEffort"
	ActionResolveEnemy ActionKind = "resolveEnemy"
	ActionFlee         ActionKind = "flee"
	ActionWait         ActionKind = "wait"
)

// Action is one requested encounter action. Which fields matter depends on
// the kind: attacks take TargetID, card actions take CardID (plus TargetID
// when the card is played), resolveEnemy takes EnemyID.
type Action struct {
	Kind     ActionKind
	TargetID string
	CardID   string
	EnemyID  string
}

// EncounterView is the full client-facing state of a live encounter.
// Everything in it is a copy; mutating a view never touches the engine.
type EncounterView struct {
	EncounterID string
	SaveID      string

	Phase       engine.Phase
	Round       int
	Status      engine.Status
	ActionTaken bool

	Hero      engine.Hero
	Enemies   []engine.Enemy
	Outcomes  map[string]engine.EntityOutcome
	Intents   []engine.Intent
	Resonance float64

	Hand        []threeworlds.ActionCard
	DiscardPile []threeworlds.ActionCard
	ExhaustPile []threeworlds.ActionCard

	Energy          int
	ReservedEnergy  int
	EffortBonus     int
	EffortCardIDs   []string
	SelectedCardIDs []string

	DeckDrawCount    int
	DeckDiscardCount int

	CanFlee bool
}

// CreateSaveInput defines the request for creating a save slot
type CreateSaveInput struct {
	// HeroName overrides the default hero name when set
	HeroName string
}

// CreateSaveOutput defines the response for creating a save slot
type CreateSaveOutput struct {
	Save *save.SaveData
}

// GetSaveInput defines the request for retrieving a save slot
type GetSaveInput struct {
	SaveID string
}

// GetSaveOutput defines the response for retrieving a save slot
type GetSaveOutput struct {
	Save *save.SaveData
}

// StartEncounterInput defines the request for starting an encounter
type StartEncounterInput struct {
	SaveID   string
	EnemyIDs []string

	// Seed pins the encounter's random sequence for deterministic replay.
	// Nil draws a fresh random seed.
	Seed *uint64
}

// StartEncounterOutput defines the response for starting an encounter
type StartEncounterOutput struct {
	View *EncounterView
}

// GetEncounterInput defines the request for reading a live encounter
type GetEncounterInput struct {
	EncounterID string
}

// GetEncounterOutput defines the response for reading a live encounter
type GetEncounterOutput struct {
	View *EncounterView
}

// ResumeEncounterInput defines the request for resuming an encounter
type ResumeEncounterInput struct {
	EncounterID string
}

// ResumeEncounterOutput defines the response for resuming an encounter
type ResumeEncounterOutput struct {
	View *EncounterView

	// Resumed is true when the encounter was rebuilt from its persisted
	// attempt rather than found live in memory.
	Resumed bool
}

// ExecuteActionInput defines the request for executing one encounter action
type ExecuteActionInput struct {
	EncounterID string
	Action      Action
}

// ExecuteActionOutput defines the response for executing one encounter
// action. Action carries the committed player action's resolution when the
// action was an attack, card play, flee, or wait; EnemyAction carries the
// resolution of a resolveEnemy action.
type ExecuteActionOutput struct {
	View        *EncounterView
	Action      *engine.ActionResult
	EnemyAction *engine.EnemyActionResult
}

// CommitEncounterInput defines the request for committing a finished
// encounter
type CommitEncounterInput struct {
	EncounterID string
}

// CommitEncounterOutput defines the response for committing a finished
// encounter
type CommitEncounterOutput struct {
	// Save is the save slot with the encounter's outcome applied.
	Save *save.SaveData

	// Result is the archived result record.
	Result *archive.ResultRecord
}

// DiscardEncounterInput defines the request for discarding an encounter
type DiscardEncounterInput struct {
	EncounterID string
}

// DiscardEncounterOutput defines the response for discarding an encounter
type DiscardEncounterOutput struct{}

// ListArchiveInput defines the request for listing a save's encounter
// history
type ListArchiveInput struct {
	SaveID string
	Limit  int
	Offset int
}

// ListArchiveOutput defines the response for listing a save's encounter
// history
type ListArchiveOutput struct {
	Results []archive.ResultRecord
}

// GetArchivedEncounterInput defines the request for reading one archived
// encounter
type GetArchivedEncounterInput struct {
	EncounterID string
}

// GetArchivedEncounterOutput defines the response for reading one archived
// encounter
type GetArchivedEncounterOutput struct {
	Result  *archive.ResultRecord
	Changes []archive.ChangeRecord
}
