package converter

import (
	"time"

	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/internal/usecase"
)

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID              int64      `db:"id"`
	Name            string     `db:"name"`
	Brand           string     `db:"brand"`
	Category        string     `db:"category"`
	OriginalPrice   int64      `db:"original_price"`
	DiscountedPrice int64      `db:"discounted_price"`
	DiscountPercent int        `db:"discount_percent"`
	Stock           int        `db:"stock"`
	ImageKey        string     `db:"image_key"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at"`
	IsArchived      bool       `db:"is_archived"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID              int64              `db:"id"`
	OrderNumber     string             `db:"order_number"`
	CustomerName    string             `db:"customer_name"`
	CustomerEmail   string             `db:"customer_email"`
	CustomerPhone   string             `db:"customer_phone"`
	CustomerAddress string             `db:"customer_address"`
	PaymentMethod   string             `db:"payment_method"`
	Status          domain.OrderStatus `db:"status"`
	Subtotal        int64              `db:"subtotal"`
	Shipping        int64              `db:"shipping"`
	Total           int64              `db:"total"`
	CreatedAt       time.Time          `db:"created_at"`
	UpdatedAt       *time.Time         `db:"updated_at"`
}

// OrderLineModel представляет запись таблицы order_lines в PostgreSQL.
type OrderLineModel struct {
	ID          int64  `db:"id"`
	OrderID     int64  `db:"order_id"`
	ProductID   int64  `db:"product_id"`
	ProductName string `db:"product_name"`
	Price       int64  `db:"price"`
	Quantity    int    `db:"quantity"`
}

// WebhookModel представляет запись таблицы webhooks в PostgreSQL.
type WebhookModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	URL       string     `db:"url"`
	Events    []string   `db:"events"`
	IsActive  bool       `db:"is_active"`
	Secret    string     `db:"secret"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	OrderID     int64                   `db:"order_id"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
