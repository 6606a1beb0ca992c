package repository

import (
	"fmt"

	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

type memoryCategoryRepository struct {
	categories []domain.Category
	log        *logrus.Logger
}

// NewMemoryCategoryRepository serves a fixed category list; categories are not
// mutated through this module.
func NewMemoryCategoryRepository(categories []domain.Category, logger *logrus.Logger) domain.CategoryRepository {
	list := make([]domain.Category, len(categories))
	copy(list, categories)
	return &memoryCategoryRepository{
		categories: list,
		log:        logger,
	}
}

func (r *memoryCategoryRepository) GetCategoryByID(id string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	r.log.Warnf("Repository: Category with ID %s not found", id)
	return nil, fmt.Errorf("category with id %s %w", id, domain.ErrNotFound)
}

func (r *memoryCategoryRepository) ListCategories() ([]domain.Category, error) {
	categories := make([]domain.Category, len(r.categories))
	copy(categories, r.categories)
	r.log.Debugf("Repository: Retrieved %d categories", len(categories))
	return categories, nil
}
