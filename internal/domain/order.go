package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus — статус заказа в жизненном цикле.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// допустимые переходы статусов
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

// CanTransition проверяет, разрешён ли переход статуса from -> to.
func CanTransition(from, to OrderStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Order описывает заказ покупателя
type Order struct {
	ID              int64
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	PaymentMethod   string
	Status          OrderStatus
	Subtotal        int64 // Суммы хранятся в центах
	Shipping        int64
	Total           int64
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// OrderLine — позиция заказа с зафиксированной на момент покупки ценой.
type OrderLine struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Price       int64 // цена за единицу в центах
	Quantity    int
}

// OrderTotals — расчётные суммы заказа.
type OrderTotals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

const (
	// FreeShippingThreshold — порог бесплатной доставки (в валюте магазина).
	FreeShippingThreshold = 1000
	// FlatShippingRate — фиксированная стоимость доставки ниже порога.
	FlatShippingRate = 25
)

// CalculateOrderTotals считает subtotal/shipping/total заказа.
// Доставка бесплатна при subtotal >= FreeShippingThreshold, иначе FlatShippingRate.
func CalculateOrderTotals(lines []OrderLine) OrderTotals {
	cents := decimal.NewFromInt(100)

	subtotal := decimal.Zero
	for _, line := range lines {
		price := decimal.NewFromInt(line.Price).Div(cents)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	shipping := decimal.NewFromInt(FlatShippingRate)
	if subtotal.GreaterThanOrEqual(decimal.NewFromInt(FreeShippingThreshold)) {
		shipping = decimal.Zero
	}

	return OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}
