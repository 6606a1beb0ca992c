package cart

import (
	"context"
	"fmt"
	"sync"

	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

// PaymentFunc charges for a cart snapshot. A nil error is the success signal
// that lets Checkout clear the cart.
type PaymentFunc func(ctx context.Context, snapshot State) error

// Store owns the cart of one session. All operations are serialised, so a
// reader never sees the items and total of two different transitions.
type Store struct {
	mu    sync.Mutex
	state State
	log   *logrus.Logger
}

func NewStore(logger *logrus.Logger) *Store {
	return &Store{
		state: Empty(),
		log:   logger,
	}
}

// Dispatch applies cmd and returns the new snapshot.
func (s *Store) Dispatch(cmd Command) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.state.version
	s.state = Reduce(s.state, cmd)
	if s.state.version == before {
		s.log.Debugf("Cart: %s left cart unchanged (version %d)", cmd.Name(), before)
	} else {
		s.log.Debugf("Cart: %s applied, version %d, %d lines, total %s", cmd.Name(), s.state.version, s.state.Len(), s.state.total.StringFixed(2))
	}
	return s.state
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) AddToCart(product domain.Product) State {
	return s.Dispatch(AddItem{Product: product})
}

func (s *Store) RemoveFromCart(productID string) State {
	return s.Dispatch(RemoveItem{ProductID: productID})
}

func (s *Store) UpdateQuantity(productID string, quantity int) State {
	return s.Dispatch(UpdateQuantity{ProductID: productID, Quantity: quantity})
}

func (s *Store) ClearCart() State {
	return s.Dispatch(Clear{})
}

// Checkout passes the current snapshot to pay and clears the cart only when
// pay succeeds. It returns the snapshot that was charged. The store stays
// locked while pay runs.
func (s *Store) Checkout(ctx context.Context, pay PaymentFunc) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state
	if snapshot.IsEmpty() {
		s.log.Warn("Cart: checkout attempted on an empty cart")
		return snapshot, domain.ErrEmptyCart
	}

	if err := pay(ctx, snapshot); err != nil {
		s.log.Warnf("Cart: payment failed for version %d, cart kept: %v", snapshot.version, err)
		return snapshot, fmt.Errorf("checkout failed: %w", err)
	}

	s.state = Reduce(snapshot, Clear{})
	s.log.Infof("Cart: checkout succeeded for %d lines, total %s", snapshot.Len(), snapshot.total.StringFixed(2))
	return snapshot, nil
}
