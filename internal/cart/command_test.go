package cart

import (
	"testing"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, price string, stock int) domain.Product {
	return domain.Product{
		ID:    id,
		Name:  "Product " + id,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}

// sumLines recomputes the total independently of State.
func sumLines(s State) decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items() {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func TestReduce_AddItem(t *testing.T) {
	t.Run("repeated add increments a single line", func(t *testing.T) {
		p := product("p1", "19.99", 5)
		s := Empty()
		for i := 0; i < 7; i++ {
			s = Reduce(s, AddItem{Product: p})
		}

		require.Equal(t, 1, s.Len())
		line, ok := s.Line("p1")
		require.True(t, ok)
		assert.Equal(t, 7, line.Quantity)
		assert.True(t, decimal.RequireFromString("139.93").Equal(s.Total()))
	})

	t.Run("new products append in insertion order", func(t *testing.T) {
		s := Empty()
		s = Reduce(s, AddItem{Product: product("b", "1", 1)})
		s = Reduce(s, AddItem{Product: product("a", "2", 1)})
		s = Reduce(s, AddItem{Product: product("b", "1", 1)})

		items := s.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "b", items[0].Product.ID)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, "a", items[1].Product.ID)
	})

	t.Run("zero stock is not blocked by the core", func(t *testing.T) {
		s := Reduce(Empty(), AddItem{Product: product("gone", "5", 0)})
		assert.Equal(t, 1, s.Len())
	})
}

func TestReduce_UpdateQuantity(t *testing.T) {
	base := Reduce(Reduce(Empty(), AddItem{Product: product("p1", "2.50", 3)}), AddItem{Product: product("p2", "1.25", 3)})

	t.Run("positive quantity sets the line", func(t *testing.T) {
		s := Reduce(base, UpdateQuantity{ProductID: "p1", Quantity: 4})
		line, ok := s.Line("p1")
		require.True(t, ok)
		assert.Equal(t, 4, line.Quantity)
		assert.True(t, decimal.RequireFromString("11.25").Equal(s.Total()))
	})

	for _, q := range []int{0, -5} {
		q := q
		t.Run("non-positive quantity removes the line", func(t *testing.T) {
			s := Reduce(base, UpdateQuantity{ProductID: "p1", Quantity: q})
			_, ok := s.Line("p1")
			assert.False(t, ok)
			assert.Equal(t, 1, s.Len())
			assert.True(t, decimal.RequireFromString("1.25").Equal(s.Total()))
		})
	}

	t.Run("absent product leaves state unchanged", func(t *testing.T) {
		s := Reduce(base, UpdateQuantity{ProductID: "missing", Quantity: 3})
		assert.Equal(t, base, s)

		s = Reduce(base, UpdateQuantity{ProductID: "missing", Quantity: 0})
		assert.Equal(t, base, s)
	})
}

func TestReduce_RemoveItem(t *testing.T) {
	s := Reduce(Empty(), AddItem{Product: product("p1", "3", 1)})
	s = Reduce(s, AddItem{Product: product("p2", "4", 1)})

	once := Reduce(s, RemoveItem{ProductID: "p1"})
	twice := Reduce(once, RemoveItem{ProductID: "p1"})

	assert.Equal(t, once, twice)
	assert.Equal(t, 1, twice.Len())
	assert.True(t, decimal.NewFromInt(4).Equal(twice.Total()))
}

func TestReduce_Clear(t *testing.T) {
	s := Reduce(Empty(), AddItem{Product: product("p1", "3", 1)})
	s = Reduce(s, UpdateQuantity{ProductID: "p1", Quantity: 9})

	cleared := Reduce(s, Clear{})
	assert.True(t, cleared.IsEmpty())
	assert.Empty(t, cleared.Items())
	assert.True(t, cleared.Total().IsZero())
	assert.Equal(t, 0, cleared.ItemCount())

	again := Reduce(cleared, Clear{})
	assert.Equal(t, cleared, again)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := Reduce(Empty(), AddItem{Product: product("p1", "3", 1)})
	before := s.Items()

	_ = Reduce(s, AddItem{Product: product("p1", "3", 1)})
	_ = Reduce(s, UpdateQuantity{ProductID: "p1", Quantity: 8})
	_ = Reduce(s, RemoveItem{ProductID: "p1"})

	assert.Equal(t, before, s.Items())
	assert.True(t, decimal.NewFromInt(3).Equal(s.Total()))
}

func TestReduce_TotalInvariant(t *testing.T) {
	catalog := []domain.Product{
		product("a", "0.10", 1),
		product("b", "0.20", 1),
		product("c", "19.99", 1),
		product("d", "1000", 1),
	}
	commands := []Command{
		AddItem{Product: catalog[0]},
		AddItem{Product: catalog[1]},
		AddItem{Product: catalog[0]},
		UpdateQuantity{ProductID: "b", Quantity: 3},
		AddItem{Product: catalog[2]},
		RemoveItem{ProductID: "a"},
		AddItem{Product: catalog[3]},
		UpdateQuantity{ProductID: "c", Quantity: -1},
		RemoveItem{ProductID: "zzz"},
		AddItem{Product: catalog[0]},
		Clear{},
		AddItem{Product: catalog[2]},
	}

	s := Empty()
	assert.True(t, s.Total().IsZero())
	for _, cmd := range commands {
		s = Reduce(s, cmd)
		assert.Truef(t, sumLines(s).Equal(s.Total()), "after %s: total %s, lines sum to %s", cmd.Name(), s.Total(), sumLines(s))
		for _, item := range s.Items() {
			assert.GreaterOrEqual(t, item.Quantity, 1)
		}
	}
}

func TestReduce_Version(t *testing.T) {
	s := Empty()
	assert.Equal(t, uint64(0), s.Version())

	s = Reduce(s, AddItem{Product: product("p1", "1", 1)})
	assert.Equal(t, uint64(1), s.Version())

	s = Reduce(s, UpdateQuantity{ProductID: "p1", Quantity: 1})
	assert.Equal(t, uint64(1), s.Version(), "same quantity is a no-op")

	s = Reduce(s, Clear{})
	assert.Equal(t, uint64(2), s.Version())
}

func TestState_MarshalJSON(t *testing.T) {
	s := Reduce(Empty(), AddItem{Product: product("p1", "2.50", 1)})
	s = Reduce(s, AddItem{Product: product("p1", "2.50", 1)})

	data, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total":"5"`)
	assert.Contains(t, string(data), `"item_count":2`)
	assert.Contains(t, string(data), `"quantity":2`)

	data, err = Empty().MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"items":[]`)
}
