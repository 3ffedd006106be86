package domain

import "time"

// Имена доменных событий, доставляемых подписчикам.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// Webhook описывает зарегистрированного подписчика на доменные события
type Webhook struct {
	ID        int64
	Name      string
	URL       string
	Events    []string
	IsActive  bool
	Secret    string // опциональный HMAC-секрет; пустая строка — подпись не отправляется
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewWebhook(name, url string, events []string, secret string) *Webhook {
	return &Webhook{
		Name:     name,
		URL:      url,
		Events:   events,
		Secret:   secret,
		IsActive: true,
	}
}

// SubscribedTo проверяет подписку вебхука на событие.
func (w *Webhook) SubscribedTo(event string) bool {
	for _, ev := range w.Events {
		if ev == event {
			return true
		}
	}
	return false
}
