package usecase

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/catalog"
	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	ListVisibleProducts(criteria catalog.Criteria) ([]domain.Product, error)
	GetProductByID(id string) (*domain.Product, error)
	AddProduct(input domain.ProductInput) (*domain.Product, error)
	UpdateProduct(product *domain.Product) (*domain.Product, bool, error)
	DeleteProduct(id string) (bool, error)
	Dashboard() (catalog.Dashboard, error)
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	memo         *catalog.Memo
	log          *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		memo:         catalog.NewMemo(),
		log:          logger,
	}
}

func (uc *productUseCase) ListVisibleProducts(criteria catalog.Criteria) ([]domain.Product, error) {
	products, version, err := uc.productRepo.ListProducts()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}

	visible := uc.memo.Visible(products, version, criteria)
	uc.log.Debugf("Use Case: Product list cache served %d requests so far", uc.memo.Hits())
	category := "all"
	if criteria.CategoryID != nil {
		category = *criteria.CategoryID
	}
	uc.log.Infof("Use Case: %d of %d products visible (category: %s, query: %q)", len(visible), len(products), category, strings.TrimSpace(criteria.Query))
	return visible, nil
}

func (uc *productUseCase) GetProductByID(id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		uc.log.Warn("Use Case: Attempted to get product with empty ID")
		return nil, fmt.Errorf("invalid product ID: %w", domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetProductByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %s: %v", id, err)
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) AddProduct(input domain.ProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		CategoryID:  input.CategoryID,
		Stock:       input.Stock,
	}
	if err := uc.validate(product, true); err != nil {
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to create product '%s'", product.Name)
	created, err := uc.productRepo.CreateProduct(product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %s", created.Name, created.ID)
	return created, nil
}

// UpdateProduct replaces the product with the same ID. The stored creation
// time is kept. An unknown ID is not an error: it reports false.
func (uc *productUseCase) UpdateProduct(product *domain.Product) (*domain.Product, bool, error) {
	if strings.TrimSpace(product.ID) == "" {
		uc.log.Warn("Use Case: Attempted update with empty product ID")
		return nil, false, fmt.Errorf("invalid product ID for update: %w", domain.ErrInvalidInput)
	}
	product.Name = strings.TrimSpace(product.Name)

	existing, err := uc.productRepo.GetProductByID(product.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Warnf("Use Case: Product ID %s not found for update, nothing changed", product.ID)
			return nil, false, nil
		}
		uc.log.Errorf("Use Case: Repository failed to get product ID %s for update: %v", product.ID, err)
		return nil, false, err
	}
	// a product may keep pointing at a category that has since gone away
	if err := uc.validate(product, product.CategoryID != existing.CategoryID); err != nil {
		return nil, false, err
	}
	product.CreatedAt = existing.CreatedAt

	updated, err := uc.productRepo.UpdateProduct(product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update product ID %s: %v", product.ID, err)
		return nil, false, err
	}
	if !updated {
		uc.log.Warnf("Use Case: Product ID %s disappeared before update, nothing changed", product.ID)
		return nil, false, nil
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %s", product.ID)
	return product, true, nil
}

func (uc *productUseCase) DeleteProduct(id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		uc.log.Warn("Use Case: Attempted delete with empty product ID")
		return false, fmt.Errorf("invalid product ID for delete: %w", domain.ErrInvalidInput)
	}

	uc.log.Infof("Use Case: Attempting to delete product ID %s", id)
	deleted, err := uc.productRepo.DeleteProduct(id)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete product ID %s: %v", id, err)
		return false, err
	}
	if !deleted {
		uc.log.Warnf("Use Case: Product ID %s did not exist, nothing deleted", id)
		return false, nil
	}

	uc.log.Infof("Use Case: Product deleted successfully for ID %s", id)
	return true, nil
}

func (uc *productUseCase) Dashboard() (catalog.Dashboard, error) {
	products, _, err := uc.productRepo.ListProducts()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products for dashboard: %v", err)
		return catalog.Dashboard{}, fmt.Errorf("could not build dashboard: %w", err)
	}

	d := catalog.Summarize(products)
	uc.log.Infof("Use Case: Dashboard built: %d products, %d low stock, %d out of stock", d.TotalProducts, len(d.LowStock), d.OutOfStockCount)
	return d, nil
}

func (uc *productUseCase) validate(product *domain.Product, checkCategory bool) error {
	if product.Name == "" {
		uc.log.Warn("Use Case: Product validation failed - empty name")
		return fmt.Errorf("product name cannot be empty: %w", domain.ErrInvalidInput)
	}
	if product.Price.IsNegative() {
		uc.log.Warnf("Use Case: Product '%s' validation failed - negative price %s", product.Name, product.Price)
		return fmt.Errorf("product price cannot be negative: %w", domain.ErrInvalidInput)
	}
	if product.Stock < 0 {
		uc.log.Warnf("Use Case: Product '%s' validation failed - negative stock %d", product.Name, product.Stock)
		return fmt.Errorf("product stock cannot be negative: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(product.CategoryID) == "" {
		uc.log.Warnf("Use Case: Product '%s' validation failed - no category", product.Name)
		return fmt.Errorf("product category cannot be empty: %w", domain.ErrInvalidInput)
	}
	if checkCategory {
		if _, err := uc.categoryRepo.GetCategoryByID(product.CategoryID); err != nil {
			uc.log.Warnf("Use Case: Category ID %s not found for product '%s': %v", product.CategoryID, product.Name, err)
			return fmt.Errorf("category with id %s does not exist: %w", product.CategoryID, domain.ErrInvalidInput)
		}
	}
	return nil
}
