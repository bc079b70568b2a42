// Package content is the registry for authored Three Worlds content:
// enemy stat blocks, behavior definitions, action cards, the standard Fate
// deck, and balance tuning. Callers treat the registry as an external
// source of immutable records; every getter returns a copy.
package content

//go:generate mockgen -destination=mock/mock_client.go -package=contentmock github.com/triglav-games/encounter-api/internal/clients/content Client

import (
	"context"

	"github.com/triglav-games/encounter-api/internal/engine/fate"
	"github.com/triglav-games/encounter-api/internal/entities/threeworlds"
)

// Client defines the interface for content lookups.
type Client interface {
	// GetEnemy fetches an enemy stat block by ID
	GetEnemy(ctx context.Context, enemyID string) (*threeworlds.EnemyDefinition, error)

	// GetBehavior fetches a behavior definition by ID
	GetBehavior(ctx context.Context, behaviorID string) (*threeworlds.BehaviorDefinition, error)

	// GetCard fetches an action card by ID
	GetCard(ctx context.Context, cardID string) (*threeworlds.ActionCard, error)

	// GetBalance returns the combat tuning for this content set
	GetBalance(ctx context.Context) (threeworlds.BalanceConfig, error)

	// ListEnemies returns all enemy stat blocks, ordered by ID
	ListEnemies(ctx context.Context) ([]*threeworlds.EnemyDefinition, error)

	// StandardDeck returns the Fate cards of the stock deck in authored
	// order; callers shuffle before play
	StandardDeck(ctx context.Context) ([]fate.Card, error)

	// DefaultHero returns the starting hero sheet for a new save
	DefaultHero(ctx context.Context) (*threeworlds.HeroState, error)
}
