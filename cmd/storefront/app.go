package main

import (
	"database/sql"
	"fmt"

	"storefront/config"
	"storefront/internal/cart"
	"storefront/internal/clients"
	"storefront/internal/delivery"
	grpcdelivery "storefront/internal/delivery/grpc"
	"storefront/internal/domain"
	"storefront/internal/repository"
	"storefront/internal/usecase"
	"storefront/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// app is the fully wired service; close releases the session database.
type app struct {
	router *gin.Engine
	grpc   *grpcdelivery.Server
	db     *sql.DB
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func newApp(cfg *config.Config, logger *logrus.Logger) (*app, error) {
	a := &app{}

	seed, err := repository.LoadSeed(cfg.CatalogSeedFile)
	if err != nil {
		return nil, err
	}
	logger.Infof("Catalog seed loaded: %d categories, %d products", len(seed.Categories), len(seed.Products))

	var storage domain.SessionStorage
	if cfg.SessionDBPath != "" {
		a.db, err = db.Connect(cfg.SessionDBPath)
		if err != nil {
			return nil, fmt.Errorf("could not open session database: %w", err)
		}
		logger.Info("Database connection established.")
		storage, err = repository.NewSQLiteSessionStorage(a.db, logger)
		if err != nil {
			_ = a.close()
			return nil, err
		}
	} else {
		storage = repository.NewMemorySessionStorage()
	}

	// Repository Layer
	productRepo := repository.NewMemoryProductRepository(seed.Products, logger)
	categoryRepo := repository.NewMemoryCategoryRepository(seed.Categories, logger)
	credentialRepo, err := repository.NewMockCredentialRepository(repository.DefaultMockAccounts(), logger)
	if err != nil {
		_ = a.close()
		return nil, err
	}
	logger.Info("Repositories initialized.")

	// Usecase Layer
	auth := usecase.NewAuthSession(credentialRepo, storage, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, logger)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, productRepo, logger)
	payments := clients.NewMockPaymentClient(cfg.PaymentLimit, logger)
	cartUseCase := usecase.NewCartUseCase(cart.NewStore(logger), productRepo, auth, payments, logger)
	logger.Info("Use cases initialized.")

	a.router, err = delivery.NewRouter(delivery.Handlers{
		Product:  delivery.NewProductHandler(productUseCase, logger),
		Category: delivery.NewCategoryHandler(categoryUseCase, logger),
		Cart:     delivery.NewCartHandler(cartUseCase, logger),
		Session:  delivery.NewSessionHandler(auth, logger),
		Admin:    delivery.NewAdminHandler(productUseCase, auth, logger),
	}, cfg.CORSOrigins, logger)
	if err != nil {
		_ = a.close()
		return nil, err
	}

	a.grpc = grpcdelivery.NewServer(grpcdelivery.NewCatalogHandler(productUseCase, categoryUseCase, logger), logger)
	logger.Info("Handlers initialized.")
	return a, nil
}
