package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carson-networks/budget-web/internal/storage/sqlconfig"
)

const redisKeyPrefix = "budget-web:session:"

var _ sqlconfig.ISessionTable = (*RedisTable)(nil)

// RedisTable keeps sessions in redis as JSON values, optionally expiring after ttl.
type RedisTable struct {
	rdb redis.Cmdable
	ttl time.Duration
}

type redisSession struct {
	Token     string    `json:"token"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRedisTable returns a table on rdb. A zero ttl stores tokens without expiry.
func NewRedisTable(rdb redis.Cmdable, ttl time.Duration) *RedisTable {
	return &RedisTable{rdb: rdb, ttl: ttl}
}

func redisKey(viewID string) string {
	return redisKeyPrefix + viewID
}

func (r *RedisTable) FindByViewID(ctx context.Context, viewID string) (*sqlconfig.Session, error) {
	val, err := r.rdb.Get(ctx, redisKey(viewID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, sqlconfig.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var stored redisSession
	if err := json.Unmarshal([]byte(val), &stored); err != nil {
		return nil, err
	}
	return &sqlconfig.Session{
		ViewID:    viewID,
		Token:     stored.Token,
		UpdatedAt: stored.UpdatedAt,
	}, nil
}

func (r *RedisTable) Upsert(ctx context.Context, viewID, token string) error {
	b, err := json.Marshal(redisSession{Token: token, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, redisKey(viewID), b, r.ttl).Err()
}

func (r *RedisTable) Delete(ctx context.Context, viewID string) error {
	return r.rdb.Del(ctx, redisKey(viewID)).Err()
}
