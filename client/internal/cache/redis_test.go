package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	closed bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

func TestRedisStore_SetGetWithPrefix(t *testing.T) {
	ctx := context.Background()
	f := newFakeRedis()
	s := NewRedisStore(f, "", 12*time.Hour)

	require.NoError(t, s.Set(ctx, "http://api.shopstyle.com/api/v2/brands?pid=abc", []byte(`{"a":1}`), 0))
	assert.Contains(t, f.data, "shopstyle:http://api.shopstyle.com/api/v2/brands?pid=abc")
	assert.Equal(t, 12*time.Hour, f.ttls["shopstyle:http://api.shopstyle.com/api/v2/brands?pid=abc"])

	got, ok, err := s.Get(ctx, "http://api.shopstyle.com/api/v2/brands?pid=abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestRedisStore_ExplicitTTL(t *testing.T) {
	f := newFakeRedis()
	s := NewRedisStore(f, "custom", time.Hour)
	require.NoError(t, s.Set(context.Background(), "k", []byte("v"), time.Minute))
	assert.Equal(t, time.Minute, f.ttls["custom:k"])
}

func TestRedisStore_MissAndError(t *testing.T) {
	ctx := context.Background()
	f := newFakeRedis()
	s := NewRedisStore(f, "", time.Hour)

	_, ok, err := s.Get(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, ok)

	f.getErr = errors.New("connection refused")
	_, ok, err = s.Get(ctx, "nope")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisStore_Close(t *testing.T) {
	f := newFakeRedis()
	s := NewRedisStore(f, "", time.Hour)
	require.NoError(t, s.Close())
	assert.True(t, f.closed)
}
