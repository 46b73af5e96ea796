package bridge

import (
	"context"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore builds a Redis-backed bridge store. Keys are prefixed
// so the bridge can share a database with other consumers.
func NewRedisStore(client *redislib.Client, ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisStore{
		client: client,
		prefix: "bridge:",
		ttl:    ttl,
	}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if err == redislib.Nil {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return result, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, s.ttl).Err()
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
