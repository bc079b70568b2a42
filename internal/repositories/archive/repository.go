// Package archive provides the repository interface and types for
// finished encounter records. Unlike saves and attempts, archive rows are
// append-only history: one result row per encounter plus its ordered
// state-change log, queryable per save for recaps and balancing.
package archive

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=archivemock github.com/triglav-games/encounter-api/internal/repositories/archive Repository

// ResultRecord is the summary row for one finished encounter.
type ResultRecord struct {
	EncounterID string
	SaveID      string

	// Status is the terminal encounter status: victory, defeat or escaped
	Status string

	// Victory qualifies a victory as killed or pacified; empty otherwise
	Victory string

	// Nonviolent is set when every enemy was pacified
	Nonviolent bool

	Rounds int

	// Seed is the world seed the encounter ran under
	Seed uint64

	// Resonance is the world alignment when the encounter ended
	Resonance float64

	// HeroHP and HeroWP are the hero's condition at the end
	HeroHP int
	HeroWP int

	CreatedAt time.Time
}

// ChangeRecord is one entry of an encounter's ordered state-change log.
type ChangeRecord struct {
	Seq      int
	Round    int
	Kind     string
	EntityID string
	Amount   int
	Value    float64
	Detail   string
}

// SaveInput contains parameters for archiving a finished encounter
type SaveInput struct {
	Result  ResultRecord
	Changes []ChangeRecord
}

// SaveOutput contains the result of archiving an encounter
type SaveOutput struct {
	Result *ResultRecord
}

// GetInput contains parameters for retrieving an archived encounter
type GetInput struct {
	EncounterID string
}

// GetOutput contains the archived result and its full change log in order
type GetOutput struct {
	Result  *ResultRecord
	Changes []ChangeRecord
}

// ListBySaveInput contains parameters for listing a save's history
type ListBySaveInput struct {
	SaveID string

	// Limit caps the page size; zero means the default of 50
	Limit int

	Offset int
}

// ListBySaveOutput contains a page of archived results, newest first
type ListBySaveOutput struct {
	Results []ResultRecord
}

// Repository stores finished encounter records
type Repository interface {
	// Save archives a finished encounter and its change log atomically
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves an archived encounter with its ordered change log
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListBySave returns a save's archived encounters, newest first
	ListBySave(ctx context.Context, input ListBySaveInput) (*ListBySaveOutput, error)
}
