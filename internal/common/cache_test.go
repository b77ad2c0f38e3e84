package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setupTestEnvironment(t *testing.T) (*Cache, func()) {
	t.Helper()

	cache := NewCache(0, 0)

	cleanup := func() {
		cache.Flush()
	}

	return cache, cleanup
}

func TestCache_Set(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value")

	if _, ok := cache.Get("key"); !ok {
		t.Error("expected key to be set")
	}
}

func TestCache_SetWithExpiration(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestCache_Delete(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value")
	cache.Delete("key")

	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestCache_Flush(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value")
	cache.Flush()

	if _, ok := cache.Get("key"); ok {
		t.Error("expected cache to be flushed")
	}
}

func TestCacheKeyIdentity(t *testing.T) {
	a := CacheKeyIdentity("token-a")
	b := CacheKeyIdentity("token-b")

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, CacheKeyIdentity("token-a"))
	assert.NotContains(t, a, "token-a")
	assert.Len(t, a, len("identity:")+64)
}
