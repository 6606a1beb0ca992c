package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewStore(logger), hook
}

func TestStore_Operations(t *testing.T) {
	store, _ := newTestStore(t)
	shirt := product("shirt", "25.00", 4)
	hat := product("hat", "10.50", 2)

	store.AddToCart(shirt)
	store.AddToCart(hat)
	store.AddToCart(shirt)

	s := store.UpdateQuantity("hat", 3)
	assert.True(t, decimal.RequireFromString("81.50").Equal(s.Total()))
	assert.Equal(t, 5, s.ItemCount())

	s = store.RemoveFromCart("shirt")
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, s, store.Snapshot())

	s = store.ClearCart()
	assert.True(t, s.IsEmpty())
	assert.True(t, store.Snapshot().Total().IsZero())
}

func TestStore_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("success clears the cart", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.AddToCart(product("p1", "3", 1))

		var charged State
		snapshot, err := store.Checkout(ctx, func(_ context.Context, s State) error {
			charged = s
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, charged, snapshot)
		assert.Equal(t, 1, snapshot.Len())
		assert.True(t, store.Snapshot().IsEmpty())
	})

	t.Run("failed payment keeps the cart", func(t *testing.T) {
		store, hook := newTestStore(t)
		before := store.AddToCart(product("p1", "3", 1))

		_, err := store.Checkout(ctx, func(context.Context, State) error {
			return domain.ErrPaymentDeclined
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPaymentDeclined))
		assert.Equal(t, before, store.Snapshot())
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})

	t.Run("empty cart does not reach the payment step", func(t *testing.T) {
		store, _ := newTestStore(t)
		called := false
		_, err := store.Checkout(ctx, func(context.Context, State) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, domain.ErrEmptyCart)
		assert.False(t, called)
	})
}

func TestStore_ConcurrentAdds(t *testing.T) {
	store, _ := newTestStore(t)
	p := product("p1", "0.01", 1)

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.AddToCart(p)
		}()
	}
	wg.Wait()

	s := store.Snapshot()
	line, ok := s.Line("p1")
	require.True(t, ok)
	assert.Equal(t, n, line.Quantity)
	assert.Equal(t, uint64(n), s.Version())
	assert.True(t, decimal.RequireFromString("2").Equal(s.Total()))
}
