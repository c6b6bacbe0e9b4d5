package viewstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "viewstate:"

// DefaultTTL bounds how long persisted view state outlives its last update.
const DefaultTTL = 30 * 24 * time.Hour

// RedisStore is a Redis-backed state store for the sidecar service, where
// view state survives process restarts and is shared across instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig configures the Redis connection.
type RedisConfig struct {
	Addr     string // host:port, e.g. "localhost:6379"
	Password string // optional
	DB       int    // optional database index
	TTL      time.Duration
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

// Get retrieves a state by id. Returns nil, nil when it doesn't exist.
func (s *RedisStore) Get(ctx context.Context, id string) (*State, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get view state: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse view state: %w", err)
	}
	return &state, nil
}

// Set stores a state, refreshing its TTL.
func (s *RedisStore) Set(ctx context.Context, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal view state: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+state.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set view state: %w", err)
	}
	return nil
}

// Delete removes a state.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, redisKeyPrefix+id).Err()
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
