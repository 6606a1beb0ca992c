// Package catalog derives views over the product catalog: the visible product
// list for a set of filter criteria, and the admin dashboard figures.
package catalog

import (
	"strings"

	"storefront/internal/domain"

	"golang.org/x/text/cases"
)

// Criteria selects the visible products. A nil CategoryID means every category.
type Criteria struct {
	CategoryID *string
	Query      string
}

// ForCategory is shorthand for building a category restriction.
func ForCategory(id string) *string {
	return &id
}

// VisibleProducts keeps the products matching the category restriction and,
// when the trimmed query is non-empty, whose name or description contains it
// regardless of case. Relative order is preserved and all is never modified.
func VisibleProducts(all []domain.Product, c Criteria) []domain.Product {
	query := strings.TrimSpace(c.Query)
	fold := cases.Fold()
	if query != "" {
		query = fold.String(query)
	}

	visible := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if c.CategoryID != nil && p.CategoryID != *c.CategoryID {
			continue
		}
		if query != "" && !matches(fold, p, query) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

func matches(fold cases.Caser, p domain.Product, foldedQuery string) bool {
	return strings.Contains(fold.String(p.Name), foldedQuery) ||
		strings.Contains(fold.String(p.Description), foldedQuery)
}
