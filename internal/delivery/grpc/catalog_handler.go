package grpc

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/usecase"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ CatalogServiceServer = (*CatalogHandler)(nil)

type CatalogHandler struct {
	productUseCase  usecase.ProductUseCase
	categoryUseCase usecase.CategoryUseCase
	log             *logrus.Logger
}

func NewCatalogHandler(puc usecase.ProductUseCase, cuc usecase.CategoryUseCase, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		productUseCase:  puc,
		categoryUseCase: cuc,
		log:             logger,
	}
}

func (h *CatalogHandler) ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error) {
	h.log.Infof("gRPC Handler: Received ListProducts request: CategoryID=%v, Query=%q", describeCategory(req.CategoryID), req.Query)

	products, err := h.productUseCase.ListVisibleProducts(catalog.Criteria{CategoryID: req.CategoryID, Query: req.Query})
	if err != nil {
		h.log.Errorf("gRPC Handler: ListProducts use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	h.log.Infof("gRPC Handler: Listed %d products successfully", len(products))
	return &ListProductsResponse{Products: products}, nil
}

func (h *CatalogHandler) GetProduct(ctx context.Context, req *GetProductRequest) (*domain.Product, error) {
	h.log.Infof("gRPC Handler: Received GetProduct request: ID=%s", req.ID)
	if strings.TrimSpace(req.ID) == "" {
		return nil, status.Error(codes.InvalidArgument, "Invalid product ID")
	}

	product, err := h.productUseCase.GetProductByID(req.ID)
	if err != nil {
		h.log.Warnf("gRPC Handler: GetProduct use case error for ID %s: %v", req.ID, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	h.log.Infof("gRPC Handler: Product retrieved successfully: ID=%s", product.ID)
	return product, nil
}

func (h *CatalogHandler) ListCategories(ctx context.Context, _ *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	h.log.Info("gRPC Handler: Received ListCategories request")

	categories, err := h.categoryUseCase.ListCategories()
	if err != nil {
		h.log.Errorf("gRPC Handler: ListCategories use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	h.log.Infof("gRPC Handler: Listed %d categories successfully", len(categories))
	return &ListCategoriesResponse{Categories: categories}, nil
}

func describeCategory(id *string) string {
	if id == nil {
		return "all"
	}
	return *id
}

func mapDomainErrorToGrpcStatus(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "not found"):
		return status.Error(codes.NotFound, err.Error())
	case strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "cannot be empty"),
		strings.Contains(errMsg, "cannot be negative"):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Errorf(codes.Internal, "Internal server error: %v", err)
	}
}
