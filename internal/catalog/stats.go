package catalog

import (
	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

// Dashboard holds the admin overview figures.
type Dashboard struct {
	TotalProducts   int              `json:"total_products"`
	InventoryValue  decimal.Decimal  `json:"inventory_value"`
	LowStock        []domain.Product `json:"low_stock"`
	OutOfStockCount int              `json:"out_of_stock_count"`
}

// Summarize computes the dashboard. LowStock lists every product under
// domain.LowStockThreshold, out-of-stock ones included.
func Summarize(products []domain.Product) Dashboard {
	d := Dashboard{
		TotalProducts:  len(products),
		InventoryValue: decimal.Zero,
		LowStock:       []domain.Product{},
	}
	for _, p := range products {
		d.InventoryValue = d.InventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		if p.Stock < domain.LowStockThreshold {
			d.LowStock = append(d.LowStock, p)
		}
		if p.Stock == 0 {
			d.OutOfStockCount++
		}
	}
	return d
}

// CountByCategory returns each category with the number of products that
// reference it, in category order.
func CountByCategory(categories []domain.Category, products []domain.Product) []domain.CategoryCount {
	counts := make(map[string]int, len(categories))
	for _, p := range products {
		counts[p.CategoryID]++
	}
	out := make([]domain.CategoryCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, domain.CategoryCount{Category: c, ProductCount: counts[c.ID]})
	}
	return out
}
