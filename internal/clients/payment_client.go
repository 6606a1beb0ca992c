package clients

import (
	"context"
	"fmt"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PaymentClient charges an order. Payment processing itself is out of scope;
// the storefront only ships the mock below.
type PaymentClient interface {
	Charge(ctx context.Context, orderID string, amount decimal.Decimal) error
}

type mockPaymentClient struct {
	limit decimal.Decimal
	log   *logrus.Logger
}

// NewMockPaymentClient approves every charge. A positive limit declines
// charges above it, which lets callers exercise the failure path.
func NewMockPaymentClient(limit decimal.Decimal, logger *logrus.Logger) PaymentClient {
	return &mockPaymentClient{limit: limit, log: logger}
}

func (c *mockPaymentClient) Charge(ctx context.Context, orderID string, amount decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.limit.IsPositive() && amount.GreaterThan(c.limit) {
		c.log.Warnf("Payment: Declined order %s for %s (limit %s)", orderID, amount.StringFixed(2), c.limit.StringFixed(2))
		return fmt.Errorf("amount %s exceeds limit: %w", amount.StringFixed(2), domain.ErrPaymentDeclined)
	}
	c.log.Infof("Payment: Approved order %s for %s", orderID, amount.StringFixed(2))
	return nil
}
