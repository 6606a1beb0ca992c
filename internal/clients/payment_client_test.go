package clients

import (
	"context"
	"testing"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestMockPaymentClient(t *testing.T) {
	logger, _ := test.NewNullLogger()

	t.Run("zero limit approves everything", func(t *testing.T) {
		c := NewMockPaymentClient(decimal.Zero, logger)
		assert.NoError(t, c.Charge(context.Background(), "o1", decimal.NewFromInt(1_000_000)))
	})

	t.Run("limit is inclusive", func(t *testing.T) {
		c := NewMockPaymentClient(decimal.NewFromInt(50), logger)
		assert.NoError(t, c.Charge(context.Background(), "o1", decimal.NewFromInt(50)))
		assert.ErrorIs(t, c.Charge(context.Background(), "o2", decimal.RequireFromString("50.01")), domain.ErrPaymentDeclined)
	})

	t.Run("cancelled context", func(t *testing.T) {
		c := NewMockPaymentClient(decimal.Zero, logger)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, c.Charge(ctx, "o1", decimal.NewFromInt(1)), context.Canceled)
	})
}
