package entity

import (
	"testing"
	"time"

	"github.com/shopsphere/storefront-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestIsReturnEligible(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	daysAgo := func(n int) *time.Time {
		t := now.AddDate(0, 0, -n)
		return &t
	}

	t.Run("delivered within window", func(t *testing.T) {
		order := &Order{OrderStatus: enum.OrderStatusDelivered, DeliveryDate: daysAgo(3)}
		assert.True(t, order.IsReturnEligible(now))
	})

	t.Run("delivered outside window", func(t *testing.T) {
		order := &Order{OrderStatus: enum.OrderStatusDelivered, DeliveryDate: daysAgo(8)}
		assert.False(t, order.IsReturnEligible(now))
	})

	t.Run("not delivered yet", func(t *testing.T) {
		order := &Order{OrderStatus: enum.OrderStatusShipped, DeliveryDate: daysAgo(1)}
		assert.False(t, order.IsReturnEligible(now))
	})

	t.Run("missing delivery date falls back to order date", func(t *testing.T) {
		order := &Order{OrderStatus: enum.OrderStatusDelivered, CreatedAt: *daysAgo(5)}
		assert.True(t, order.IsReturnEligible(now))

		order.CreatedAt = *daysAgo(10)
		assert.False(t, order.IsReturnEligible(now))
	})
}
