package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shelfwise/shelfwise/pkg/models"
	pkgredis "github.com/shelfwise/shelfwise/pkg/redis"
)

// RedisStore persists the session slot as a JSON value in redis, so the
// session survives client restarts.
type RedisStore struct {
	client *pkgredis.Client
	key    string
}

// NewRedisStore builds a store bound to the canonical session slot.
func NewRedisStore(client *pkgredis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		key:    client.SessionKey(SlotName),
	}
}

func (s *RedisStore) Current(ctx context.Context) (*models.User, error) {
	raw, err := s.client.Get(ctx, s.key)
	if err != nil {
		if pkgredis.IsMissing(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("read session slot: %w", err)
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode session slot: %w", err)
	}
	return &user, nil
}

func (s *RedisStore) Save(ctx context.Context, user *models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session slot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, string(payload), 0); err != nil {
		return fmt.Errorf("write session slot: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key); err != nil {
		return fmt.Errorf("clear session slot: %w", err)
	}
	return nil
}
