package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
)

const keyPrefix = "focotour:storage:"

func NewClient(addr, password string) *goredis.Client {
	if addr == "" {
		return nil
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
	})
}

// KeyValueStore keeps each namespace in one redis hash.
type KeyValueStore struct {
	client *goredis.Client
}

func NewKeyValueStore(client *goredis.Client) *KeyValueStore {
	return &KeyValueStore{client: client}
}

func (s *KeyValueStore) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	value, err := s.client.HGet(ctx, hashKey(namespace), key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *KeyValueStore) Set(ctx context.Context, namespace, key, value string) error {
	return s.client.HSet(ctx, hashKey(namespace), key, value).Err()
}

func (s *KeyValueStore) Delete(ctx context.Context, namespace string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.HDel(ctx, hashKey(namespace), keys...).Err()
}

func hashKey(namespace string) string {
	return keyPrefix + namespace
}

var _ ports.KeyValueStore = (*KeyValueStore)(nil)
