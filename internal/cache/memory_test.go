package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(0)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "/dashboard/invoices?page=1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "/dashboard/invoices", "/dashboard/invoices?page=1", 0, []byte("page one")))

	body, ok, err := c.Get(ctx, "/dashboard/invoices?page=1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("page one"), body)
}

func TestMemoryCache_SetCopiesBody(t *testing.T) {
	c := NewMemoryCache(0)
	ctx := context.Background()

	body := []byte("abc")
	require.NoError(t, c.Set(ctx, "/p", "/p", 0, body))
	body[0] = 'x'

	got, _, _ := c.Get(ctx, "/p")
	assert.Equal(t, []byte("abc"), got)
}

func TestMemoryCache_RevalidateDropsAllKeysOfPath(t *testing.T) {
	c := NewMemoryCache(0)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "/dashboard/invoices", "/dashboard/invoices?page=1", 0, []byte("1")))
	require.NoError(t, c.Set(ctx, "/dashboard/invoices", "/dashboard/invoices?query=lee", 0, []byte("2")))
	require.NoError(t, c.Set(ctx, "/dashboard/customers", "/dashboard/customers", 0, []byte("3")))

	require.NoError(t, c.Revalidate(ctx, "/dashboard/invoices"))

	_, ok, _ := c.Get(ctx, "/dashboard/invoices?page=1")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "/dashboard/invoices?query=lee")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "/dashboard/customers")
	assert.True(t, ok)
}

func TestMemoryCache_RevalidateUnknownPath(t *testing.T) {
	c := NewMemoryCache(0)
	assert.NoError(t, c.Revalidate(context.Background(), "/nothing"))
}

func TestMemoryCache_TTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "/p", "/p", 0, []byte("body")))

	now = now.Add(30 * time.Second)
	_, ok, _ := c.Get(ctx, "/p")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = c.Get(ctx, "/p")
	assert.False(t, ok)
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	c := NewMemoryCache(0)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = c.Set(ctx, "/p", "/p?page=1", 0, []byte("x"))
		}()
		go func() {
			defer wg.Done()
			_, _, _ = c.Get(ctx, "/p?page=1")
		}()
		go func() {
			defer wg.Done()
			_ = c.Revalidate(ctx, "/p")
		}()
	}
	wg.Wait()
}

func TestMemoryCache_RevalidateAdvancesGeneration(t *testing.T) {
	c := NewMemoryCache(0)
	ctx := context.Background()

	gen, err := c.Generation(ctx, "/p")
	require.NoError(t, err)
	assert.Zero(t, gen)

	require.NoError(t, c.Revalidate(ctx, "/p"))

	next, err := c.Generation(ctx, "/p")
	require.NoError(t, err)
	assert.Equal(t, gen+1, next)

	other, err := c.Generation(ctx, "/q")
	require.NoError(t, err)
	assert.Zero(t, other)
}

func TestMemoryCache_SetRejectsStaleGeneration(t *testing.T) {
	c := NewMemoryCache(0)
	ctx := context.Background()

	gen, err := c.Generation(ctx, "/p")
	require.NoError(t, err)

	// revalidated while the page was rendering
	require.NoError(t, c.Revalidate(ctx, "/p"))

	err = c.Set(ctx, "/p", "/p?page=1", gen, []byte("stale"))
	assert.ErrorIs(t, err, ErrStaleGeneration)

	_, ok, _ := c.Get(ctx, "/p?page=1")
	assert.False(t, ok)

	current, err := c.Generation(ctx, "/p")
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "/p", "/p?page=1", current, []byte("fresh")))

	body, ok, _ := c.Get(ctx, "/p?page=1")
	assert.True(t, ok)
	assert.Equal(t, []byte("fresh"), body)
}
