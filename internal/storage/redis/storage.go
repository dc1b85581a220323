package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shockbase/levelborder/internal/model"
	"github.com/shockbase/levelborder/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Documents have no TTL: player state lives until an explicit reset.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadPlayerState(ctx context.Context, id uuid.UUID, state *model.PlayerState) error {
	data, err := s.client.Get(ctx, playerStateKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ErrPlayerStateNotFound
		}
		return err
	}

	// Unmarshalling over state keeps fields the document does not carry
	return json.Unmarshal(data, state)
}

func (s *Storage) SavePlayerState(ctx context.Context, id uuid.UUID, state *model.PlayerState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, playerStateKey(id), data, 0)
	pipe.SAdd(ctx, playersIndexKey(), id.String())
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) DeletePlayerState(ctx context.Context, id uuid.UUID) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, playerStateKey(id))
	pipe.SRem(ctx, playersIndexKey(), id.String())
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) PlayerStateExists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := s.client.Exists(ctx, playerStateKey(id)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *Storage) ListPlayerIDs(ctx context.Context) ([]uuid.UUID, error) {
	members, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
