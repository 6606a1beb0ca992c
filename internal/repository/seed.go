package repository

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var defaultSeed []byte

// Seed is the mock catalog the in-memory repositories start from.
type Seed struct {
	Categories []domain.Category
	Products   []domain.Product
}

type seedFile struct {
	Categories []domain.Category `yaml:"categories"`
	Products   []seedProduct     `yaml:"products"`
}

type seedProduct struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Price       decimal.Decimal `yaml:"price"`
	Image       string          `yaml:"image"`
	CategoryID  string          `yaml:"category_id"`
	Stock       int             `yaml:"stock"`
	CreatedAt   time.Time       `yaml:"created_at"`
}

// LoadSeed reads the catalog seed from path, or the embedded seed when path is empty.
func LoadSeed(path string) (*Seed, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read catalog seed %s: %w", path, err)
		}
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (*Seed, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not parse catalog seed: %w", err)
	}

	seed := &Seed{
		Categories: f.Categories,
		Products:   make([]domain.Product, 0, len(f.Products)),
	}
	seen := make(map[string]bool, len(f.Products))
	for i, p := range f.Products {
		if p.ID != "" && seen[p.ID] {
			return nil, fmt.Errorf("seed product %d: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
		if p.Price.IsNegative() || p.Stock < 0 {
			return nil, fmt.Errorf("seed product %q: price and stock cannot be negative", p.ID)
		}
		seed.Products = append(seed.Products, domain.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Image:       p.Image,
			CategoryID:  p.CategoryID,
			Stock:       p.Stock,
			CreatedAt:   p.CreatedAt,
		})
	}
	return seed, nil
}
