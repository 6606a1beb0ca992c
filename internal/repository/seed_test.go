package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeed_Embedded(t *testing.T) {
	seed, err := LoadSeed("")
	require.NoError(t, err)

	assert.Len(t, seed.Categories, 4)
	require.Len(t, seed.Products, 8)

	first := seed.Products[0]
	assert.Equal(t, "1", first.ID)
	assert.True(t, decimal.RequireFromString("299.99").Equal(first.Price))
	assert.False(t, first.CreatedAt.IsZero())

	categories := map[string]bool{}
	for _, c := range seed.Categories {
		categories[c.ID] = true
	}
	for _, p := range seed.Products {
		assert.Truef(t, categories[p.CategoryID], "product %s references unknown category %s", p.ID, p.CategoryID)
	}
}

func TestLoadSeed_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  - id: c1
    name: Books
products:
  - id: b1
    name: Go in Practice
    price: "39.50"
    category_id: c1
    stock: 2
`), 0o644))

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, seed.Products, 1)
	assert.Equal(t, "39.5", seed.Products[0].Price.String())
}

func TestParseSeed_Rejects(t *testing.T) {
	_, err := ParseSeed([]byte("products:\n  - id: a\n  - id: a\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = ParseSeed([]byte("products:\n  - id: a\n    stock: -1\n"))
	assert.ErrorContains(t, err, "negative")

	_, err = ParseSeed([]byte("products: [oops"))
	assert.Error(t, err)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
