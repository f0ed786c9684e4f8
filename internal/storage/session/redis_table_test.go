package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-web/internal/storage/sqlconfig"
)

// fakeRedis implements the three commands RedisTable uses.
type fakeRedis struct {
	redis.Cmdable
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	if v, ok := f.values[key]; ok {
		cmd.SetVal(v)
	} else {
		cmd.SetErr(redis.Nil)
	}
	return cmd
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key, value)
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "del")
	var n int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			n++
		}
	}
	cmd.SetVal(n)
	return cmd
}

func TestRedisTable_Lifecycle(t *testing.T) {
	rdb := newFakeRedis()
	table := NewRedisTable(rdb, time.Hour)
	ctx := context.Background()

	_, err := table.FindByViewID(ctx, "view-1")
	assert.ErrorIs(t, err, sqlconfig.ErrSessionNotFound)

	require.NoError(t, table.Upsert(ctx, "view-1", "sessionid=a"))
	assert.Equal(t, time.Hour, rdb.ttls["budget-web:session:view-1"])

	session, err := table.FindByViewID(ctx, "view-1")
	require.NoError(t, err)
	assert.Equal(t, "view-1", session.ViewID)
	assert.Equal(t, "sessionid=a", session.Token)

	require.NoError(t, table.Delete(ctx, "view-1"))
	_, err = table.FindByViewID(ctx, "view-1")
	assert.ErrorIs(t, err, sqlconfig.ErrSessionNotFound)
}

func TestRedisTable_CorruptValue(t *testing.T) {
	rdb := newFakeRedis()
	rdb.values[redisKey("view-1")] = "not json"

	_, err := NewRedisTable(rdb, 0).FindByViewID(context.Background(), "view-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, sqlconfig.ErrSessionNotFound)
}
