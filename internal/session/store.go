// Package session persists admin session state for the lifetime of a
// browsing session, so a page reload does not force re-authentication.
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/freshnest/bookingadmin/internal/entity"
	"github.com/go-redis/redis/v8"
)

type Store interface {
	// Read returns the stored session, or the anonymous zero value when
	// nothing is stored under sid.
	Read(ctx context.Context, sid string) (entity.AdminSession, error)
	Write(ctx context.Context, sid string, sess entity.AdminSession) error
	Clear(ctx context.Context, sid string) error
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(sid string) string {
	return "session:" + sid
}

func (s *RedisStore) Read(ctx context.Context, sid string) (entity.AdminSession, error) {
	var sess entity.AdminSession

	raw, err := s.client.Get(ctx, sessionKey(sid)).Result()
	if err == redis.Nil {
		return sess, nil
	}
	if err != nil {
		return sess, err
	}

	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return entity.AdminSession{}, err
	}
	return sess, nil
}

func (s *RedisStore) Write(ctx context.Context, sid string, sess entity.AdminSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sid), raw, s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	return s.client.Del(ctx, sessionKey(sid)).Err()
}
