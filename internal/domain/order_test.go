package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOrderTotals_FlatShippingBelowThreshold(t *testing.T) {
	lines := []OrderLine{
		{ProductID: 1, Price: 99999, Quantity: 1}, // 999.99
	}

	totals := CalculateOrderTotals(lines)

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("999.99")))
	assert.True(t, totals.Shipping.Equal(decimal.NewFromInt(FlatShippingRate)))
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("1024.99")))
}

func TestCalculateOrderTotals_MultipliesQuantity(t *testing.T) {
	lines := []OrderLine{
		{ProductID: 1, Price: 25000, Quantity: 3}, // 750.00
		{ProductID: 2, Price: 10000, Quantity: 2}, // 200.00
	}

	totals := CalculateOrderTotals(lines)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(950)))
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(975)))
}

func TestCalculateOrderTotals_FreeShippingAtThreshold(t *testing.T) {
	lines := []OrderLine{
		{ProductID: 1, Price: 100000, Quantity: 1}, // ровно 1000.00
	}

	totals := CalculateOrderTotals(lines)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, totals.Shipping.IsZero())
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(1000)))
}

func TestCalculateOrderTotals_EmptyOrder(t *testing.T) {
	totals := CalculateOrderTotals(nil)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Shipping.Equal(decimal.NewFromInt(FlatShippingRate)))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to processing", OrderPending, OrderProcessing, true},
		{"pending to cancelled", OrderPending, OrderCancelled, true},
		{"pending to delivered", OrderPending, OrderDelivered, false},
		{"processing to shipped", OrderProcessing, OrderShipped, true},
		{"processing to cancelled", OrderProcessing, OrderCancelled, true},
		{"shipped to delivered", OrderShipped, OrderDelivered, true},
		{"shipped to cancelled", OrderShipped, OrderCancelled, false},
		{"delivered is terminal", OrderDelivered, OrderProcessing, false},
		{"cancelled is terminal", OrderCancelled, OrderPending, false},
		{"unknown status", OrderStatus("refunded"), OrderPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}
