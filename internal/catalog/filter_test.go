package catalog

import (
	"testing"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Blue Shirt", Description: "Cotton", CategoryID: "c1"},
		{ID: "2", Name: "Red Hat", Description: "Wool hat", CategoryID: "c1"},
		{ID: "3", Name: "Blue Shirt", Description: "Linen", CategoryID: "c2"},
		{ID: "4", Name: "Desk Lamp", Description: "Warm light, pairs with any SHIRT drawer", CategoryID: "c3"},
	}
}

func TestVisibleProducts(t *testing.T) {
	products := sampleProducts()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "no criteria returns everything in order",
			criteria: Criteria{},
			want:     []string{"1", "2", "3", "4"},
		},
		{
			name:     "whitespace query is ignored",
			criteria: Criteria{Query: "   \t"},
			want:     []string{"1", "2", "3", "4"},
		},
		{
			name:     "category only",
			criteria: Criteria{CategoryID: ForCategory("c1")},
			want:     []string{"1", "2"},
		},
		{
			name:     "category and query intersect",
			criteria: Criteria{CategoryID: ForCategory("c1"), Query: "shirt"},
			want:     []string{"1"},
		},
		{
			name:     "query matches description case-insensitively",
			criteria: Criteria{Query: "  sHiRt "},
			want:     []string{"1", "3", "4"},
		},
		{
			name:     "substring inside a word",
			criteria: Criteria{Query: "ool"},
			want:     []string{"2"},
		},
		{
			name:     "unknown category yields empty result",
			criteria: Criteria{CategoryID: ForCategory("deleted")},
			want:     []string{},
		},
		{
			name:     "empty category id is still a restriction",
			criteria: Criteria{CategoryID: ForCategory("")},
			want:     []string{},
		},
		{
			name:     "no fuzzy matching",
			criteria: Criteria{Query: "shrt"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleProducts(products, tt.criteria)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestVisibleProducts_DoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	snapshot := sampleProducts()

	got := VisibleProducts(products, Criteria{CategoryID: ForCategory("c2")})
	require.Len(t, got, 1)
	got[0].Name = "changed"

	assert.Equal(t, snapshot, products)
}

func TestVisibleProducts_NilInput(t *testing.T) {
	got := VisibleProducts(nil, Criteria{Query: "x"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestVisibleProducts_UnicodeFolding(t *testing.T) {
	products := []domain.Product{{ID: "1", Name: "STRASSE Sign"}, {ID: "2", Name: "Éclair tray"}}

	assert.Equal(t, []string{"2"}, ids(VisibleProducts(products, Criteria{Query: "éclair"})))
	assert.Equal(t, []string{"1"}, ids(VisibleProducts(products, Criteria{Query: "strasse"})))
}

func TestMemo(t *testing.T) {
	products := sampleProducts()
	memo := NewMemo()

	first := memo.Visible(products, 1, Criteria{Query: "shirt"})
	second := memo.Visible(products, 1, Criteria{Query: " shirt "})
	assert.Equal(t, first, second)
	assert.Equal(t, uint64(1), memo.Hits())

	// a new catalog version forces recomputation
	products = append(products, domain.Product{ID: "5", Name: "Shirt Box", CategoryID: "c4"})
	third := memo.Visible(products, 2, Criteria{Query: "shirt"})
	assert.Equal(t, []string{"1", "3", "4", "5"}, ids(third))
	assert.Equal(t, uint64(1), memo.Hits())

	// nil category and empty-string category are different keys
	memo.Visible(products, 2, Criteria{CategoryID: ForCategory("")})
	assert.Equal(t, uint64(1), memo.Hits())

	// callers cannot corrupt the cached slice
	third[0].ID = "mutated"
	again := memo.Visible(products, 2, Criteria{CategoryID: ForCategory("")})
	assert.Empty(t, again)
	fresh := memo.Visible(products, 2, Criteria{Query: "shirt"})
	assert.Equal(t, "1", fresh[0].ID)
}

func TestSummarize(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Price: decimal.RequireFromString("10.00"), Stock: 20},
		{ID: "b", Price: decimal.RequireFromString("2.50"), Stock: 4},
		{ID: "c", Price: decimal.RequireFromString("99.99"), Stock: 0},
		{ID: "d", Price: decimal.RequireFromString("1.00"), Stock: 10},
	}

	d := Summarize(products)
	assert.Equal(t, 4, d.TotalProducts)
	assert.True(t, decimal.RequireFromString("220").Equal(d.InventoryValue))
	assert.Equal(t, []string{"b", "c"}, ids(d.LowStock))
	assert.Equal(t, 1, d.OutOfStockCount)

	empty := Summarize(nil)
	assert.Equal(t, 0, empty.TotalProducts)
	assert.True(t, empty.InventoryValue.IsZero())
	assert.NotNil(t, empty.LowStock)
}

func TestCountByCategory(t *testing.T) {
	categories := []domain.Category{{ID: "c1"}, {ID: "c2"}, {ID: "c9"}}
	counts := CountByCategory(categories, sampleProducts())

	require.Len(t, counts, 3)
	assert.Equal(t, 2, counts[0].ProductCount)
	assert.Equal(t, 1, counts[1].ProductCount)
	assert.Equal(t, 0, counts[2].ProductCount)
}
