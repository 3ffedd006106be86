package usecase

import (
	"time"

	"github.com/thriftysouq/go-backend/internal/domain"
)

// WebhookPayload — конверт события, доставляемый подписчикам и в Kafka.
type WebhookPayload struct {
	Event     string         `json:"event"`
	Timestamp string         `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// NewOrderCreatedPayload собирает конверт события order.created:
// заказ, позиции, покупатель, расчётные суммы и метаданные.
func NewOrderCreatedPayload(order *domain.Order, lines []domain.OrderLine) *WebhookPayload {
	totals := domain.CalculateOrderTotals(lines)

	items := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		items = append(items, map[string]any{
			"productId": line.ProductID,
			"name":      line.ProductName,
			"price":     centsToAmount(line.Price),
			"quantity":  line.Quantity,
		})
	}

	return &WebhookPayload{
		Event:     domain.EventOrderCreated,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data: map[string]any{
			"order": map[string]any{
				"id":          order.ID,
				"orderNumber": order.OrderNumber,
				"status":      string(order.Status),
				"createdAt":   order.CreatedAt.UTC().Format(time.RFC3339),
			},
			"items": items,
			"customer": map[string]any{
				"name":    order.CustomerName,
				"email":   order.CustomerEmail,
				"phone":   order.CustomerPhone,
				"address": order.CustomerAddress,
			},
			"totals": map[string]any{
				"subtotal": totals.Subtotal.InexactFloat64(),
				"shipping": totals.Shipping.InexactFloat64(),
				"total":    totals.Total.InexactFloat64(),
			},
			"metadata": map[string]any{
				"orderNumber":   order.OrderNumber,
				"paymentMethod": order.PaymentMethod,
				"status":        string(order.Status),
			},
		},
	}
}

// NewOrderStatusChangedPayload собирает конверт события order.status_changed.
func NewOrderStatusChangedPayload(order *domain.Order, oldStatus, newStatus domain.OrderStatus) *WebhookPayload {
	return &WebhookPayload{
		Event:     domain.EventOrderStatusChanged,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data: map[string]any{
			"order": map[string]any{
				"id":          order.ID,
				"orderNumber": order.OrderNumber,
				"status":      string(newStatus),
			},
			"statusChange": map[string]any{
				"from": string(oldStatus),
				"to":   string(newStatus),
			},
			"metadata": map[string]any{
				"orderNumber": order.OrderNumber,
			},
		},
	}
}

func centsToAmount(cents int64) float64 {
	return float64(cents) / 100
}
