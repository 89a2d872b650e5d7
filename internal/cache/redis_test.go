package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	fills := 0
	fill := func(dest *cachedThing) func() error {
		return func() error {
			fills++
			dest.Name = "tower"
			dest.Count = 16
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, Aside(ctx, "thing:1", &first, time.Minute, fill(&first)))
	assert.Equal(t, 1, fills)
	assert.Equal(t, "tower", first.Name)

	var second cachedThing
	require.NoError(t, Aside(ctx, "thing:1", &second, time.Minute, fill(&second)))
	assert.Equal(t, 1, fills, "second read should be served from cache")
	assert.Equal(t, 16, second.Count)
}

func TestAside_FillErrorPropagates(t *testing.T) {
	withMiniredis(t)

	var dest cachedThing
	err := Aside(context.Background(), "thing:2", &dest, time.Minute, func() error {
		return errors.New("store down")
	})
	assert.EqualError(t, err, "store down")
}

func TestAside_CorruptEntryIsRefilled(t *testing.T) {
	mr := withMiniredis(t)
	require.NoError(t, mr.Set("thing:3", "{not json"))

	var dest cachedThing
	err := Aside(context.Background(), "thing:3", &dest, time.Minute, func() error {
		dest.Name = "moon"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "moon", dest.Name)
}

func TestAside_NoClientStillFills(t *testing.T) {
	SetClient(nil)

	var dest cachedThing
	err := Aside(context.Background(), "thing:4", &dest, time.Minute, func() error {
		dest.Count = 3
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, dest.Count)
}

func TestInvalidatePost(t *testing.T) {
	mr := withMiniredis(t)
	require.NoError(t, mr.Set(PostKey("abc"), "{}"))
	require.NoError(t, mr.Set(PostsListKey("free-discussion"), "[]"))

	InvalidatePost(context.Background(), "abc", "free-discussion")

	assert.False(t, mr.Exists(PostKey("abc")))
	assert.False(t, mr.Exists(PostsListKey("free-discussion")))
}
