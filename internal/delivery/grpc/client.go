package grpc

import (
	"context"
	"fmt"

	"storefront/internal/domain"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// CatalogClient calls the catalog service over a plaintext connection.
type CatalogClient struct {
	conn   *grpc.ClientConn
	health healthpb.HealthClient
}

func NewCatalogClient(target string, opts ...grpc.DialOption) (*CatalogClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create catalog client for %s: %w", target, err)
	}
	return &CatalogClient{
		conn:   conn,
		health: healthpb.NewHealthClient(conn),
	}, nil
}

func (c *CatalogClient) Close() error {
	return c.conn.Close()
}

func (c *CatalogClient) invoke(ctx context.Context, method string, req, resp any) error {
	return c.conn.Invoke(ctx, fullMethod(method), req, resp, grpc.CallContentSubtype(codecName))
}

func (c *CatalogClient) ListProducts(ctx context.Context, req *ListProductsRequest) ([]domain.Product, error) {
	resp := new(ListProductsResponse)
	if err := c.invoke(ctx, "ListProducts", req, resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *CatalogClient) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	resp := new(domain.Product)
	if err := c.invoke(ctx, "GetProduct", &GetProductRequest{ID: id}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *CatalogClient) ListCategories(ctx context.Context) ([]domain.CategoryCount, error) {
	resp := new(ListCategoriesResponse)
	if err := c.invoke(ctx, "ListCategories", &ListCategoriesRequest{}, resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// Healthy reports whether the catalog service answers SERVING.
func (c *CatalogClient) Healthy(ctx context.Context) (bool, error) {
	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{Service: CatalogServiceName})
	if err != nil {
		return false, err
	}
	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}
