package attempt

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/triglav-games/encounter-api/internal/errors"
	"github.com/triglav-games/encounter-api/internal/pkg/clock"
	redisclient "github.com/triglav-games/encounter-api/internal/redis"
)

const (
	// Key pattern: encounter_attempt:{encounter_id}
	attemptKeyPrefix = "encounter_attempt:"
	defaultTTL       = 30 * time.Minute

	// Error messages
	errAttemptNil         = "attempt cannot be nil"
	errEncounterIDEmpty   = "encounter ID cannot be empty"
	errSaveIDEmpty        = "save ID cannot be empty"
	errSnapshotIncomplete = "attempt snapshot is missing its engine state"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// TTL is how long an untouched attempt lives; zero means the default
	// of 30 minutes
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedis creates a new Redis repository for encounter attempts
func NewRedis(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Put stores or replaces an attempt. Every write restarts the TTL, so an
// encounter stays alive as long as the player keeps acting.
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Attempt == nil {
		return nil, errors.InvalidArgument(errAttemptNil)
	}
	if input.Attempt.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}
	if input.Attempt.SaveID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}
	if input.Attempt.Snapshot.Engine == nil {
		return nil, errors.InvalidArgument(errSnapshotIncomplete)
	}

	now := r.clock.Now()
	stored := *input.Attempt
	stored.UpdatedAt = now
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal attempt")
	}

	key := attemptKeyPrefix + stored.EncounterID
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store attempt in Redis")
	}

	return &PutOutput{Attempt: &stored}, nil
}

// Get retrieves an attempt by encounter ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	key := attemptKeyPrefix + input.EncounterID

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("encounter attempt %s not found", input.EncounterID)
		}
		return nil, errors.Wrapf(err, "failed to get attempt from Redis")
	}

	var stored AttemptData
	if err := json.Unmarshal([]byte(result), &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal attempt")
	}

	return &GetOutput{Attempt: &stored}, nil
}

// Delete removes an attempt
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	key := attemptKeyPrefix + input.EncounterID

	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete attempt from Redis")
	}

	return &DeleteOutput{Deleted: deleted > 0}, nil
}
