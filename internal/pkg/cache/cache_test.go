package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(client, 5*time.Minute), mr
}

type payload struct {
	Title string `json:"title"`
	Price float64
}

func TestCache_SetGet(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	key := ContentDetailKey("physics-mcq-set-1")
	require.NoError(t, c.Set(ctx, key, payload{Title: "Physics MCQ Set 1", Price: 99}))

	var got payload
	hit, err := c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Physics MCQ Set 1", got.Title)
	assert.Equal(t, float64(99), got.Price)
}

func TestCache_Get_Miss(t *testing.T) {
	c, _ := setupCache(t)

	var got payload
	hit, err := c.Get(context.Background(), ContentDetailKey("missing"), &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_Get_Expired(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	key := ContentDetailKey("short-lived")
	require.NoError(t, c.Set(ctx, key, payload{Title: "x"}))

	mr.FastForward(10 * time.Minute)

	var got payload
	hit, err := c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_InvalidateContent(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, ContentDetailKey("a"), payload{Title: "a"}))
	require.NoError(t, c.Set(ctx, ContentListKey("", 1, 10, "createdAt", "desc"), []payload{{Title: "a"}}))

	require.NoError(t, c.InvalidateContent(ctx))

	var got payload
	hit, err := c.Get(ctx, ContentDetailKey("a"), &got)
	require.NoError(t, err)
	assert.False(t, hit)

	var list []payload
	hit, err = c.Get(ctx, ContentListKey("", 1, 10, "createdAt", "desc"), &list)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestContentListKey_DistinguishesQueries(t *testing.T) {
	k1 := ContentListKey("phy", 1, 10, "createdAt", "desc")
	k2 := ContentListKey("phy", 2, 10, "createdAt", "desc")
	k3 := ContentListKey("", 1, 10, "createdAt", "desc")
	assert.NotEqual(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}
