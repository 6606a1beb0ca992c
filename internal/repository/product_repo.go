package repository

import (
	"fmt"
	"sync"
	"time"

	"storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type memoryProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
	version  uint64
	now      func() time.Time
	log      *logrus.Logger
}

// NewMemoryProductRepository keeps the catalog in memory, starting from seed.
// Products without an ID get a fresh one.
func NewMemoryProductRepository(seed []domain.Product, logger *logrus.Logger) domain.ProductRepository {
	products := make([]domain.Product, 0, len(seed))
	for _, p := range seed {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		products = append(products, p)
	}
	logger.Infof("Repository: Product catalog initialised with %d products", len(products))
	return &memoryProductRepository{
		products: products,
		version:  1,
		now:      time.Now,
		log:      logger,
	}
}

func (r *memoryProductRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *product
	created.ID = uuid.NewString()
	created.CreatedAt = r.now().UTC()
	if r.indexOf(created.ID) >= 0 {
		r.log.Errorf("Repository: Generated duplicate product ID %s", created.ID)
		return nil, fmt.Errorf("product with id '%s' already exists", created.ID)
	}

	r.products = append(r.products, created)
	r.version++
	r.log.Infof("Repository: Product created successfully with ID: %s, Name: %s", created.ID, created.Name)
	return &created, nil
}

func (r *memoryProductRepository) GetProductByID(id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		r.log.Warnf("Repository: Product with ID %s not found", id)
		return nil, fmt.Errorf("product with id %s %w", id, domain.ErrNotFound)
	}
	product := r.products[i]
	return &product, nil
}

func (r *memoryProductRepository) UpdateProduct(product *domain.Product) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(product.ID)
	if i < 0 {
		r.log.Warnf("Repository: Product with ID %s not found for update", product.ID)
		return false, nil
	}
	r.products[i] = *product
	r.version++
	r.log.Infof("Repository: Product updated successfully with ID: %s", product.ID)
	return true, nil
}

func (r *memoryProductRepository) DeleteProduct(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		r.log.Warnf("Repository: Attempted to delete non-existent product ID %s", id)
		return false, nil
	}
	products := make([]domain.Product, 0, len(r.products)-1)
	products = append(products, r.products[:i]...)
	products = append(products, r.products[i+1:]...)
	r.products = products
	r.version++
	r.log.Infof("Repository: Product deleted successfully with ID: %s", id)
	return true, nil
}

func (r *memoryProductRepository) ListProducts() ([]domain.Product, uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, len(r.products))
	copy(products, r.products)
	r.log.Debugf("Repository: Retrieved %d products (catalog version %d)", len(products), r.version)
	return products, r.version, nil
}

func (r *memoryProductRepository) indexOf(id string) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}
