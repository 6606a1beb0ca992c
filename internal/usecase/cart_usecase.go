package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/cart"
	"storefront/internal/clients"
	"storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CartUseCase interface {
	Cart() cart.State
	AddToCart(productID string) (cart.State, error)
	RemoveFromCart(productID string) cart.State
	UpdateQuantity(productID string, quantity int) cart.State
	ClearCart() cart.State
	Checkout(ctx context.Context) (*domain.Order, error)
}

var _ CartUseCase = (*cartUseCase)(nil)

type cartUseCase struct {
	store         *cart.Store
	productRepo   domain.ProductRepository
	auth          *AuthSession
	paymentClient clients.PaymentClient
	now           func() time.Time
	log           *logrus.Logger
}

func NewCartUseCase(store *cart.Store, pRepo domain.ProductRepository, auth *AuthSession, payClient clients.PaymentClient, logger *logrus.Logger) CartUseCase {
	return &cartUseCase{
		store:         store,
		productRepo:   pRepo,
		auth:          auth,
		paymentClient: payClient,
		now:           time.Now,
		log:           logger,
	}
}

func (uc *cartUseCase) Cart() cart.State {
	return uc.store.Snapshot()
}

// AddToCart snapshots the current catalog entry into the cart. A product with
// no stock left is refused.
func (uc *cartUseCase) AddToCart(productID string) (cart.State, error) {
	if strings.TrimSpace(productID) == "" {
		uc.log.Warn("Use Case: Attempted to add product with empty ID to cart")
		return uc.store.Snapshot(), fmt.Errorf("invalid product ID: %w", domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetProductByID(productID)
	if err != nil {
		uc.log.Warnf("Use Case: Cannot add product ID %s to cart: %v", productID, err)
		return uc.store.Snapshot(), err
	}
	if !product.InStock() {
		uc.log.Warnf("Use Case: Product ID %s ('%s') is out of stock", product.ID, product.Name)
		return uc.store.Snapshot(), fmt.Errorf("product %s: %w", product.ID, domain.ErrOutOfStock)
	}

	state := uc.store.AddToCart(*product)
	uc.log.Infof("Use Case: Added product ID %s to cart, %d items, total %s", product.ID, state.ItemCount(), state.Total().StringFixed(2))
	return state, nil
}

func (uc *cartUseCase) RemoveFromCart(productID string) cart.State {
	state := uc.store.RemoveFromCart(productID)
	uc.log.Infof("Use Case: Removed product ID %s from cart, %d lines left", productID, state.Len())
	return state
}

func (uc *cartUseCase) UpdateQuantity(productID string, quantity int) cart.State {
	state := uc.store.UpdateQuantity(productID, quantity)
	uc.log.Infof("Use Case: Set quantity of product ID %s to %d, total %s", productID, quantity, state.Total().StringFixed(2))
	return state
}

func (uc *cartUseCase) ClearCart() cart.State {
	state := uc.store.ClearCart()
	uc.log.Info("Use Case: Cart cleared")
	return state
}

// Checkout charges the cart and hands back the receipt. The cart is emptied
// only when the charge succeeds.
func (uc *cartUseCase) Checkout(ctx context.Context) (*domain.Order, error) {
	order := &domain.Order{
		ID:     uuid.NewString(),
		Status: domain.StatusPending,
	}
	if user := uc.auth.CurrentUser(); user != nil {
		order.UserID = user.ID
	}
	uc.log.Infof("Use Case: Starting checkout for order %s (user: %q)", order.ID, order.UserID)

	_, err := uc.store.Checkout(ctx, func(ctx context.Context, snapshot cart.State) error {
		order.Total = snapshot.Total()
		order.Items = make([]domain.OrderItem, 0, snapshot.Len())
		for _, line := range snapshot.Items() {
			order.Items = append(order.Items, domain.OrderItem{
				ID:        uuid.NewString(),
				OrderID:   order.ID,
				ProductID: line.Product.ID,
				Quantity:  line.Quantity,
				Price:     line.Product.Price,
			})
		}
		return uc.paymentClient.Charge(ctx, order.ID, order.Total)
	})
	if err != nil {
		uc.log.Warnf("Use Case: Checkout for order %s failed: %v", order.ID, err)
		return nil, err
	}

	order.CreatedAt = uc.now().UTC()
	uc.log.Infof("Use Case: Order %s placed with %d items, total %s", order.ID, len(order.Items), order.Total.StringFixed(2))
	return order, nil
}
