package save

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/triglav-games/encounter-api/internal/errors"
	"github.com/triglav-games/encounter-api/internal/pkg/clock"
	redisclient "github.com/triglav-games/encounter-api/internal/redis"
)

const (
	// Key pattern: save:{id}
	saveKeyPrefix = "save:"

	// Error messages
	errSaveNil     = "save cannot be nil"
	errSaveIDEmpty = "save ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
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
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis repository for saves
func NewRedis(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new save record
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Save == nil {
		return nil, errors.InvalidArgument(errSaveNil)
	}
	if input.Save.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	key := saveKeyPrefix + input.Save.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("save with ID %s already exists", input.Save.ID)
	}

	now := r.clock.Now()
	stored := *input.Save
	stored.CreatedAt = now
	stored.UpdatedAt = now

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save")
	}

	// Saves have no TTL; they live until deleted
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store save in Redis")
	}

	return &CreateOutput{Save: &stored}, nil
}

// Get retrieves a save by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	key := saveKeyPrefix + input.ID

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("save with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get save from Redis")
	}

	var stored SaveData
	if err := json.Unmarshal([]byte(result), &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal save")
	}

	return &GetOutput{Save: &stored}, nil
}

// Update replaces an existing save record. CreatedAt is preserved from the
// stored record; UpdatedAt is stamped from the clock.
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Save == nil {
		return nil, errors.InvalidArgument(errSaveNil)
	}
	if input.Save.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Save.ID})
	if err != nil {
		return nil, err
	}

	stored := *input.Save
	stored.CreatedAt = existing.Save.CreatedAt
	stored.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save")
	}

	key := saveKeyPrefix + input.Save.ID
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update save in Redis")
	}

	return &UpdateOutput{Save: &stored}, nil
}

// Delete removes a save
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	key := saveKeyPrefix + input.ID

	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete save from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("save with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
