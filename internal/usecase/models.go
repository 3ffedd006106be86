package usecase

import (
	"time"

	"github.com/thriftysouq/go-backend/internal/domain"
)

// MARKETING USECASE

// AnalyzeProductsReq — запрос AI-анализа каталога.
// Пустой список ID означает «весь активный каталог».
type AnalyzeProductsReq struct {
	ProductIDs []int64
}

func NewAnalyzeProductsReq(ids []int64) *AnalyzeProductsReq {
	return &AnalyzeProductsReq{ProductIDs: ids}
}

// GenerateBannerReq — запрос генерации hero-баннера.
type GenerateBannerReq struct {
	ProductIDs []int64
	Provider   ProviderKind            // пустое значение — провайдер по умолчанию
	Analysis   *domain.ProductAnalysis // nil — анализ вычисляется на месте
}

func NewGenerateBannerReq(ids []int64, provider ProviderKind, analysis *domain.ProductAnalysis) *GenerateBannerReq {
	return &GenerateBannerReq{ProductIDs: ids, Provider: provider, Analysis: analysis}
}

// GenerateAudioReq — запрос синтеза речи по маркетинговому тексту.
type GenerateAudioReq struct {
	Text    string
	VoiceID string // пустое значение — голос по умолчанию
}

func NewGenerateAudioReq(text, voiceID string) *GenerateAudioReq {
	return &GenerateAudioReq{Text: text, VoiceID: voiceID}
}

// GenerateAudioRes — синтезированное аудио и ключ объекта в MinIO.
type GenerateAudioRes struct {
	ObjectKey string
	Audio     []byte
	MimeType  string
}

func NewGenerateAudioRes(objectKey string, audio []byte, mimeType string) *GenerateAudioRes {
	return &GenerateAudioRes{ObjectKey: objectKey, Audio: audio, MimeType: mimeType}
}

// ProviderDescriptor — пара id/имя провайдера для выпадающих списков админки.
type ProviderDescriptor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RelatedProduct — похожий товар из векторного поиска.
type RelatedProduct struct {
	ProductID int64
	Name      string
	Score     float32
}

// ORDER USECASE

// OrderItemReq — позиция создаваемого заказа.
type OrderItemReq struct {
	ProductID int64
	Quantity  int
}

// CreateOrderReq — запрос на создание заказа.
type CreateOrderReq struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	PaymentMethod   string
	Items           []OrderItemReq
}

// CreateOrderRes — созданный заказ с позициями.
type CreateOrderRes struct {
	Order *domain.Order
	Lines []domain.OrderLine
}

func NewCreateOrderRes(order *domain.Order, lines []domain.OrderLine) *CreateOrderRes {
	return &CreateOrderRes{Order: order, Lines: lines}
}

// UpdateOrderStatusReq — запрос смены статуса заказа.
type UpdateOrderStatusReq struct {
	OrderID   int64
	NewStatus domain.OrderStatus
}

// WEBHOOK USECASE

// UpsertWebhookReq — создание или изменение регистрации вебхука.
type UpsertWebhookReq struct {
	Name     string
	URL      string
	Events   []string
	IsActive bool
	Secret   string
}

// PRODUCT USECASE

// UpsertProductReq — запрос на создание/обновление товара каталога.
type UpsertProductReq struct {
	Name            string
	Brand           string
	Category        string
	OriginalPrice   int64
	DiscountedPrice int64
	DiscountPercent int
	Stock           int
	ImageKey        string
}

// INFRASTRUCTURE

// WriteRawMessageReq — запрос на публикацию готового payload в Kafka.
type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{OrderID: orderID, Payload: payload}
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OutboxOrderCreated       OutboxEventType = domain.EventOrderCreated
	OutboxOrderStatusChanged OutboxEventType = domain.EventOrderStatusChanged
)

// OutboxEvent — запись transactional outbox для публикации доменных событий.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}
