// Package attempt provides the repository interface and types for
// in-flight encounter snapshots. An attempt is scratch state: it lets a
// running encounter survive a process restart until the player commits or
// discards it, and it expires on its own if they walk away.
package attempt

import (
	"context"
	"time"

	"github.com/triglav-games/encounter-api/internal/engine/combat"
	"github.com/triglav-games/encounter-api/internal/engine/encounter"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=attemptmock github.com/triglav-games/encounter-api/internal/repositories/attempt Repository

// AttemptData is everything needed to rebuild a running encounter: the
// immutable setup context and the latest simulation snapshot.
type AttemptData struct {
	EncounterID string

	// SaveID is the progress record this encounter belongs to
	SaveID string

	// Context is the immutable encounter setup captured at start
	Context encounter.Context

	// Snapshot is the simulation state after the most recent action
	Snapshot combat.Snapshot

	// When this attempt was first stored
	CreatedAt time.Time

	// When this attempt was last written
	UpdatedAt time.Time
}

// PutInput contains parameters for storing an attempt
type PutInput struct {
	Attempt *AttemptData
}

// PutOutput contains the result of storing an attempt
type PutOutput struct {
	Attempt *AttemptData
}

// GetInput contains parameters for retrieving an attempt
type GetInput struct {
	EncounterID string
}

// GetOutput contains the result of retrieving an attempt
type GetOutput struct {
	Attempt *AttemptData
}

// DeleteInput contains parameters for deleting an attempt
type DeleteInput struct {
	EncounterID string
}

// DeleteOutput contains the result of deleting an attempt
type DeleteOutput struct {
	// Deleted is false when no attempt existed; deletion is idempotent
	Deleted bool
}

// Repository stores in-flight encounter attempts
type Repository interface {
	// Put stores or replaces an attempt and refreshes its TTL
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves an attempt by encounter ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes an attempt; deleting a missing attempt is not an error
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
