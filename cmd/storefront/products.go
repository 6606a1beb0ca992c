package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"storefront/internal/catalog"
	grpcdelivery "storefront/internal/delivery/grpc"
	"storefront/internal/domain"

	"github.com/spf13/cobra"
)

type clientOptions struct {
	addr    string
	timeout time.Duration
}

func (o *clientOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.addr, "addr", "localhost:50051", "gRPC address of the catalog service")
	cmd.Flags().DurationVar(&o.timeout, "timeout", 5*time.Second, "Request timeout")
}

func (o *clientOptions) dial(parent context.Context) (*grpcdelivery.CatalogClient, context.Context, context.CancelFunc, error) {
	client, err := grpcdelivery.NewCatalogClient(o.addr)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithTimeout(parent, o.timeout)
	return client, ctx, cancel, nil
}

func newProductsCmd() *cobra.Command {
	var (
		opts     clientOptions
		category string
		query    string
	)
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List visible products from a running catalog service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, ctx, cancel, err := opts.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer cancel()
			defer client.Close()

			req := &grpcdelivery.ListProductsRequest{Query: query}
			if cmd.Flags().Changed("category") {
				req.CategoryID = catalog.ForCategory(category)
			}
			products, err := client.ListProducts(ctx, req)
			if err != nil {
				return fmt.Errorf("list products: %w", err)
			}
			return printProducts(cmd.OutOrStdout(), products)
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringVar(&category, "category", "", "Only list products in this category id")
	cmd.Flags().StringVar(&query, "query", "", "Case-insensitive search in name and description")
	return cmd
}

func newHealthCmd() *cobra.Command {
	var opts clientOptions
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the catalog service is serving",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, ctx, cancel, err := opts.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer cancel()
			defer client.Close()

			ok, err := client.Healthy(ctx)
			if err != nil {
				return fmt.Errorf("health check: %w", err)
			}
			if !ok {
				return fmt.Errorf("catalog service at %s is not serving", opts.addr)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog service at %s is serving\n", opts.addr)
			return nil
		},
	}
	opts.bind(cmd)
	return cmd
}

func printProducts(out io.Writer, products []domain.Product) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
	for _, p := range products {
		stock := fmt.Sprintf("%d", p.Stock)
		switch {
		case !p.InStock():
			stock += " (out)"
		case p.LowStock():
			stock += " (low)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.CategoryID, p.Price.StringFixed(2), stock)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d products\n", len(products))
	return nil
}
