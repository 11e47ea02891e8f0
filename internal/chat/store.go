package chat

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "chat:session:"

// SessionStore persists conversation state per user with a TTL, so an
// abandoned flow expires on its own and no state lives in process memory.
type SessionStore interface {
	Get(ctx context.Context, userID string) (*Session, error)
	Save(ctx context.Context, userID string, s Session) error
	Delete(ctx context.Context, userID string) error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisStore{client: client, ttl: ttl}
}

// Get returns nil (no error) when the user has no active session.
func (r *redisStore) Get(ctx context.Context, userID string) (*Session, error) {
	raw, err := r.client.Get(ctx, sessionKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		// Unreadable session: treat as expired.
		return nil, nil
	}
	return &s, nil
}

func (r *redisStore) Save(ctx context.Context, userID string, s Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKeyPrefix+userID, raw, r.ttl).Err()
}

func (r *redisStore) Delete(ctx context.Context, userID string) error {
	return r.client.Del(ctx, sessionKeyPrefix+userID).Err()
}
