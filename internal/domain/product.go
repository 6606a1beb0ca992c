package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level under which a product is flagged as running low.
const LowStockThreshold = 10

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	CategoryID  string          `json:"category_id"` // may point at a category that no longer exists
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductInput is the admin form payload: a product without its id and creation time.
type ProductInput struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Image       string          `json:"image" yaml:"image"`
	CategoryID  string          `json:"category_id" yaml:"category_id"`
	Stock       int             `json:"stock" yaml:"stock"`
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

func (p Product) LowStock() bool {
	return p.Stock > 0 && p.Stock < LowStockThreshold
}

// MarshalJSON adds the derived stock flags to the wire form.
func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return json.Marshal(struct {
		plain
		InStock  bool `json:"in_stock"`
		LowStock bool `json:"low_stock"`
	}{plain(p), p.InStock(), p.LowStock()})
}

type ProductRepository interface {
	CreateProduct(product *Product) (*Product, error)
	GetProductByID(id string) (*Product, error)

	// UpdateProduct replaces the stored product with the same ID. It reports
	// false when no such product exists.
	UpdateProduct(product *Product) (bool, error)

	// DeleteProduct reports false when no such product exists.
	DeleteProduct(id string) (bool, error)

	// ListProducts returns the catalog in insertion order together with the
	// catalog version, which changes on every successful mutation.
	ListProducts() ([]Product, uint64, error)
}
