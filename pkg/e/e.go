package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки AI-провайдеров
	ErrNoProviderAvailable = fmt.Errorf("no provider available")
	ErrProviderCall        = fmt.Errorf("provider call failed")
	ErrEmptyResponse       = fmt.Errorf("provider returned empty response")
	ErrUnparsableResponse  = fmt.Errorf("provider response is not valid json")
	ErrMissingAPIKey       = fmt.Errorf("provider api key is not configured")

	// Ошибки заказов
	ErrOrderNotFound        = fmt.Errorf("order not found")
	ErrEmptyOrder           = fmt.Errorf("order has no items")
	ErrInvalidStatusChange  = fmt.Errorf("invalid order status transition")
	ErrCustomerNameRequired = fmt.Errorf("customer name is required")

	// Ошибки вебхуков
	ErrWebhookNotFound    = fmt.Errorf("webhook not found")
	ErrWebhookURLRequired = fmt.Errorf("webhook url is required")
	ErrNoEvents           = fmt.Errorf("webhook has no subscribed events")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrNoProducts       = fmt.Errorf("no products provided")
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrEmptyText        = fmt.Errorf("text is empty")
	ErrMissingFields    = fmt.Errorf("required fields are missing")
	ErrInvalidPrice     = fmt.Errorf("invalid price")

	// 401 / 500
	ErrUnauthorized        = fmt.Errorf("unauthorized")
	ErrInternalServerError = fmt.Errorf("internal server error")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
