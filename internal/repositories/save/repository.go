// Package save provides the repository interface and types for the
// player's persistent progress record
package save

import (
	"context"
	"time"

	"github.com/triglav-games/encounter-api/internal/engine/fate"
	"github.com/triglav-games/encounter-api/internal/entities/threeworlds"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=savemock github.com/triglav-games/encounter-api/internal/repositories/save Repository

// SaveData is the persistent progress record: the hero sheet, the Fate
// deck as the last encounter left it, and world resonance. Encounters work
// on copies; only a commit writes updated numbers back here.
type SaveData struct {
	ID string

	// Hero is the current hero sheet
	Hero threeworlds.HeroState

	// Deck is the Fate deck composition carried between encounters
	Deck fate.DeckState

	// Resonance is the world alignment in [-1, 1]
	Resonance float64

	// When this save was created
	CreatedAt time.Time

	// When this save was last written
	UpdatedAt time.Time
}

// CreateInput contains parameters for creating a save
type CreateInput struct {
	Save *SaveData
}

// CreateOutput contains the result of creating a save
type CreateOutput struct {
	Save *SaveData
}

// GetInput contains parameters for retrieving a save
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving a save
type GetOutput struct {
	Save *SaveData
}

// UpdateInput contains parameters for replacing a save
type UpdateInput struct {
	Save *SaveData
}

// UpdateOutput contains the result of replacing a save
type UpdateOutput struct {
	Save *SaveData
}

// DeleteInput contains parameters for deleting a save
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting a save
type DeleteOutput struct{}

// Repository stores save records
type Repository interface {
	// Create stores a new save; the ID must not already exist
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a save by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing save
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a save
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
