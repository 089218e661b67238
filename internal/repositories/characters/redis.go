package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/clock"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	rpgerr "github.com/rhydlewis/adventurer-rpg-sub002/internal/errors"
)

const indexKey = "characters"

// RedisConfig holds configuration for the Redis repository
type RedisConfig struct {
	Client redis.UniversalClient
	Clock  clock.Clock
}

// redisRepo stores each character as JSON at character:<id> and keeps the ids
// in the characters set
type redisRepo struct {
	client redis.UniversalClient
	clock  clock.Clock
}

// NewRedis creates a Redis-backed character repository
func NewRedis(cfg *RedisConfig) Repository {
	if cfg == nil {
		panic("RedisConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepo{
		client: cfg.Client,
		clock:  c,
	}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if err := validate(char); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to check character existence")
	}
	if exists > 0 {
		return rpgerr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	stored := char.Clone()
	stored.CreatedAt = r.clock.Now()
	stored.UpdatedAt = stored.CreatedAt

	data, err := json.Marshal(stored)
	if err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeInternal, "failed to marshal character")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), string(data), 0)
	pipe.SAdd(ctx, indexKey, char.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to create character")
	}

	char.CreatedAt = stored.CreatedAt
	char.UpdatedAt = stored.UpdatedAt
	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, rpgerr.InvalidArgument("character ID is required")
	}

	data, err := r.client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, rpgerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to get character")
	}

	var char character.Character
	if err := json.Unmarshal([]byte(data), &char); err != nil {
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeInternal, "failed to unmarshal character")
	}
	return &char, nil
}

// Update replaces an existing character
func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if err := validate(char); err != nil {
		return err
	}

	existing, err := r.Get(ctx, char.ID)
	if err != nil {
		return err
	}

	stored := char.Clone()
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(stored)
	if err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeInternal, "failed to marshal character")
	}

	if err := r.client.Set(ctx, r.key(char.ID), string(data), 0).Err(); err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to update character")
	}

	char.CreatedAt = stored.CreatedAt
	char.UpdatedAt = stored.UpdatedAt
	return nil
}

// Delete removes a character and its index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}

	deleted, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to delete character")
	}
	if deleted == 0 {
		return rpgerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	if err := r.client.SRem(ctx, indexKey, id).Err(); err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to remove character from index")
	}
	return nil
}

// List loads every indexed character concurrently. Ids whose record is gone
// are skipped.
func (r *redisRepo) List(ctx context.Context) ([]*character.Character, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to list character IDs")
	}

	loaded := make([]*character.Character, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			char, err := r.Get(ctx, id)
			if rpgerr.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get character %s: %w", id, err)
			}
			loaded[i] = char
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sortByCreation(loaded), nil
}
