package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

// OrderUseCase реализует бизнес-логику заказов: создание, смену статуса
// и публикацию доменных событий через outbox и вебхуки.
type OrderUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	dispatcher  EventDispatcher
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	dispatcher EventDispatcher,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

// CreateOrder создаёт заказ: в одной транзакции пишутся заказ, позиции и
// outbox-событие, после коммита уходит вебхук order.created.
// Неудача доставки вебхука никогда не роняет создание заказа.
func (o *OrderUseCase) CreateOrder(ctx context.Context, req *CreateOrderReq) (*CreateOrderRes, error) {
	const op = "OrderUseCase.CreateOrder"

	var err error
	if err = o.validateOrder(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	lines, err := o.buildLines(ctx, req.Items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	totals := domain.CalculateOrderTotals(lines)
	cents := decimal.NewFromInt(100)

	order := &domain.Order{
		OrderNumber:     newOrderNumber(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		PaymentMethod:   req.PaymentMethod,
		Status:          domain.OrderPending,
		Subtotal:        totals.Subtotal.Mul(cents).IntPart(),
		Shipping:        totals.Shipping.Mul(cents).IntPart(),
		Total:           totals.Total.Mul(cents).IntPart(),
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	order, lines, err = o.orderRepo.Create(ctx, order, lines)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = o.writeOutboxEvent(ctx, OutboxOrderCreated, order.ID, NewOrderCreatedPayload(order, lines)); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	o.fireAndForget(func(bgCtx context.Context) {
		o.dispatcher.TriggerOrderCreated(bgCtx, order, lines)
	})

	return NewCreateOrderRes(order, lines), nil
}

// UpdateOrderStatus валидирует переход статуса, фиксирует его и outbox-событие
// в одной транзакции, после коммита уходит вебхук order.status_changed.
func (o *OrderUseCase) UpdateOrderStatus(ctx context.Context, req *UpdateOrderStatusReq) (*domain.Order, error) {
	const op = "OrderUseCase.UpdateOrderStatus"

	order, err := o.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	oldStatus := order.Status
	if !domain.CanTransition(oldStatus, req.NewStatus) {
		return nil, e.Wrap(fmt.Sprintf("%s: %s -> %s", op, oldStatus, req.NewStatus), e.ErrInvalidStatusChange)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = o.orderRepo.UpdateStatus(ctx, order.ID, req.NewStatus); err != nil {
		return nil, e.Wrap(op, err)
	}
	order.Status = req.NewStatus

	if err = o.writeOutboxEvent(ctx, OutboxOrderStatusChanged, order.ID, NewOrderStatusChangedPayload(order, oldStatus, req.NewStatus)); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	o.fireAndForget(func(bgCtx context.Context) {
		o.dispatcher.TriggerOrderStatusChanged(bgCtx, order, oldStatus, req.NewStatus)
	})

	return order, nil
}

// GetOrder возвращает заказ с позициями.
func (o *OrderUseCase) GetOrder(ctx context.Context, id int64) (*CreateOrderRes, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	lines, err := o.orderRepo.GetLines(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCreateOrderRes(order, lines), nil
}

// buildLines собирает позиции заказа по текущим ценам каталога.
func (o *OrderUseCase) buildLines(ctx context.Context, items []OrderItemReq) ([]domain.OrderLine, error) {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := o.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]domain.OrderLine, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, e.Wrap(fmt.Sprintf("product %d", item.ProductID), e.ErrProductNotFound)
		}

		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}

		lines = append(lines, domain.OrderLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.DiscountedPrice,
			Quantity:    qty,
		})
	}

	return lines, nil
}

// writeOutboxEvent сериализует конверт события и кладёт его в outbox.
func (o *OrderUseCase) writeOutboxEvent(ctx context.Context, eventType OutboxEventType, orderID int64, payload *WebhookPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), eventType, orderID, data))
	return err
}

// fireAndForget запускает доставку событий на отвязанном от запроса контексте.
func (o *OrderUseCase) fireAndForget(fn func(ctx context.Context)) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		fn(bgCtx)
	}()
}

func (o *OrderUseCase) validateOrder(req *CreateOrderReq) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return e.ErrCustomerNameRequired
	}

	if len(req.Items) == 0 {
		return e.ErrEmptyOrder
	}

	return nil
}

func newOrderNumber() string {
	return "TS-" + strings.ToUpper(uuid.NewString()[:8])
}
