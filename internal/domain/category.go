package domain

import "time"

type Category struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// CategoryCount pairs a category with the number of catalog products filed under it.
type CategoryCount struct {
	Category
	ProductCount int `json:"product_count"`
}

type CategoryRepository interface {
	GetCategoryByID(id string) (*Category, error)
	ListCategories() ([]Category, error)
}
