package session

import (
    "context"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/mini-mall/internal/model"
)

func newStore(t *testing.T) (CartStore, *miniredis.Miniredis) {
    t.Helper()
    mr := miniredis.RunT(t)
    client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
    return NewCartStore(client, time.Hour), mr
}

func TestLoadUnknownTokenReturnsEmptyCart(t *testing.T) {
    store, _ := newStore(t)
    cart, err := store.Load(context.Background(), "nope")
    require.NoError(t, err)
    assert.Empty(t, cart)
}

func TestSaveLoadRoundtrip(t *testing.T) {
    store, _ := newStore(t)
    ctx := context.Background()

    require.NoError(t, store.Save(ctx, "tok", model.Cart{1: 2, 7: 1}))
    cart, err := store.Load(ctx, "tok")
    require.NoError(t, err)
    assert.Equal(t, model.Cart{1: 2, 7: 1}, cart)
}

func TestSaveClampsNonPositiveQuantities(t *testing.T) {
    store, _ := newStore(t)
    ctx := context.Background()

    require.NoError(t, store.Save(ctx, "tok", model.Cart{1: 2, 2: 0, 3: -5}))
    cart, err := store.Load(ctx, "tok")
    require.NoError(t, err)
    assert.Equal(t, model.Cart{1: 2}, cart)
}

func TestSaveEmptyCartDeletesKey(t *testing.T) {
    store, mr := newStore(t)
    ctx := context.Background()

    require.NoError(t, store.Save(ctx, "tok", model.Cart{1: 1}))
    require.NoError(t, store.Save(ctx, "tok", model.Cart{}))
    assert.False(t, mr.Exists("mall:cart:tok"))
}

func TestClear(t *testing.T) {
    store, _ := newStore(t)
    ctx := context.Background()

    require.NoError(t, store.Save(ctx, "tok", model.Cart{1: 3}))
    require.NoError(t, store.Clear(ctx, "tok"))
    cart, err := store.Load(ctx, "tok")
    require.NoError(t, err)
    assert.Empty(t, cart)
}

func TestCartExpiresWithSession(t *testing.T) {
    store, mr := newStore(t)
    ctx := context.Background()

    require.NoError(t, store.Save(ctx, "tok", model.Cart{1: 1}))
    mr.FastForward(2 * time.Hour)

    cart, err := store.Load(ctx, "tok")
    require.NoError(t, err)
    assert.Empty(t, cart)
}

func TestNewTokenIsUnique(t *testing.T) {
    assert.NotEqual(t, NewToken(), NewToken())
}
