package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVillage struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

func newTestCache(t *testing.T) (*VillageCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewVillageCache(rdb), mr
}

func TestGetMissVsNegative(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	key := SubdomainKey("cibayan")

	var out fakeVillage
	hit, neg, err := c.Get(ctx, key, &out)
	require.NoError(t, err)
	assert.False(t, hit, "belum pernah di-cache")
	assert.False(t, neg)

	// negative cache: desa tidak ada tetap dicatat
	require.NoError(t, c.SetMissing(ctx, key))
	hit, neg, err = c.Get(ctx, key, &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.True(t, neg)
}

func TestSetGetRoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	v := fakeVillage{ID: uuid.New(), Slug: "cibayan"}
	key := SubdomainKey(v.Slug)

	require.NoError(t, c.Set(ctx, key, v))

	var out fakeVillage
	hit, neg, err := c.Get(ctx, key, &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.False(t, neg)
	assert.Equal(t, v, out)

	// TTL terpasang
	assert.Equal(t, DefaultTTL, mr.TTL(key))
}

func TestClearVillage(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	id := uuid.New()
	v := fakeVillage{ID: id, Slug: "cibayan"}

	require.NoError(t, c.Set(ctx, SubdomainKey("cibayan"), v))
	require.NoError(t, c.Set(ctx, DomainKey("desa-cibayan.id"), v))
	require.NoError(t, c.SetLinks(ctx, id, []string{"a", "b"}))

	c.ClearVillage(ctx, "cibayan", "desa-cibayan.id", id)

	assert.False(t, mr.Exists(SubdomainKey("cibayan")))
	assert.False(t, mr.Exists(DomainKey("desa-cibayan.id")))
	assert.False(t, mr.Exists(LinksKey(id)))
}

func TestCorruptEntryTreatedAsMiss(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	key := DomainKey("broken.id")
	require.NoError(t, mr.Set(key, "{not-json"))

	var out fakeVillage
	hit, neg, err := c.Get(ctx, key, &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.False(t, neg)
}
