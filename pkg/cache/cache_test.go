package cache_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/delivery-order-service/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache_SetGet(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("a", []byte("one"))

	value, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("one"), value)

	c.Set("a", []byte("two"))
	value, ok = c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("two"), value)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestLRUCache_Expiration(t *testing.T) {
	c := cache.NewLRUCache(2, 10*time.Millisecond)

	c.Set("a", []byte("one"))
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestLRUCache_Eviction(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("a", []byte("one"))
	c.Set("b", []byte("two"))

	// освежаем "a", вытесниться должен "b"
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", []byte("three"))

	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Size())
}

func TestLRUCache_Delete(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("a", []byte("one"))
	c.Delete("a")
	c.Delete("missing")

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func BenchmarkLRUCache_Set(b *testing.B) {
	c := cache.NewLRUCache(1000, time.Minute)
	value := []byte("payload")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(fmt.Sprintf("key-%d", i%2000), value)
	}
}
