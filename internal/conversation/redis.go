package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moodmatch/moodmatch-agent/internal/a2a"
)

const keyPrefix = "conversation"

// RedisStore keeps conversations in Redis so history survives
// restarts and can be shared between instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	limit  int
}

// NewRedisStore creates a Redis-backed conversation store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    defaultTTL,
		limit:  maxHistory,
	}
}

// NewRedisStoreFromURL connects to Redis using a redis:// URL and
// verifies the connection.
func NewRedisStoreFromURL(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return NewRedisStore(client), nil
}

func (s *RedisStore) key(contextID string) string {
	return keyPrefix + ":" + contextID
}

// History returns the stored messages for a context, or nil when the
// conversation is unknown.
func (s *RedisStore) History(ctx context.Context, contextID string) ([]a2a.Message, error) {
	raw, err := s.client.Get(ctx, s.key(contextID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching conversation %s: %w", contextID, err)
	}

	var history []a2a.Message
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, fmt.Errorf("decoding conversation %s: %w", contextID, err)
	}
	return history, nil
}

// Save replaces the history for a context, keeping only the most
// recent messages. The entry expires after the store TTL.
func (s *RedisStore) Save(ctx context.Context, contextID string, history []a2a.Message) error {
	raw, err := json.Marshal(trim(history, s.limit))
	if err != nil {
		return fmt.Errorf("encoding conversation %s: %w", contextID, err)
	}

	if err := s.client.Set(ctx, s.key(contextID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("storing conversation %s: %w", contextID, err)
	}
	return nil
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
