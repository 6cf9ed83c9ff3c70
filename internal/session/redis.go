package session

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/ayush/inventory-tracker/internal/models"
)

// NewRedisClient creates and pings a Redis client with optional password auth.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// RedisStore keeps sessions in Redis for deployments that want them to
// survive a process restart. Keys are written without a TTL; as with the
// in-memory backend, sessions never expire.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, "session:"+sessionID, data, 0).Err()
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*models.User, error) {
	val, err := s.rdb.Get(ctx, "session:"+sessionID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(val, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
