package usecase

import (
	"fmt"

	"storefront/internal/catalog"
	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	ListCategories() ([]domain.CategoryCount, error)
	GetCategoryByID(id string) (*domain.Category, error)
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	productRepo  domain.ProductRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(cRepo domain.CategoryRepository, pRepo domain.ProductRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: cRepo,
		productRepo:  pRepo,
		log:          logger,
	}
}

// ListCategories returns every category with its current product count.
func (uc *categoryUseCase) ListCategories() ([]domain.CategoryCount, error) {
	categories, err := uc.categoryRepo.ListCategories()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, fmt.Errorf("could not retrieve categories: %w", err)
	}
	products, _, err := uc.productRepo.ListProducts()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products for category counts: %v", err)
		return nil, fmt.Errorf("could not retrieve categories: %w", err)
	}

	counts := catalog.CountByCategory(categories, products)
	uc.log.Infof("Use Case: Retrieved %d categories", len(counts))
	return counts, nil
}

func (uc *categoryUseCase) GetCategoryByID(id string) (*domain.Category, error) {
	category, err := uc.categoryRepo.GetCategoryByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get category ID %s: %v", id, err)
		return nil, err
	}
	return category, nil
}
