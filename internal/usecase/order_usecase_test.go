package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

type mockOrderRepo struct {
	order *domain.Order
	lines []domain.OrderLine
}

func (m *mockOrderRepo) Create(ctx context.Context, order *domain.Order, lines []domain.OrderLine) (*domain.Order, []domain.OrderLine, error) {
	order.ID = 1
	return order, lines, nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if m.order == nil || m.order.ID != id {
		return nil, e.ErrOrderNotFound
	}
	return m.order, nil
}

func (m *mockOrderRepo) GetLines(ctx context.Context, orderID int64) ([]domain.OrderLine, error) {
	return m.lines, nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	m.order.Status = status
	return nil
}

func newTestOrderUC(orderRepo OrderRepository, productRepo ProductRepository) *OrderUseCase {
	return NewOrderUC(orderRepo, productRepo, nil, nil, nil, logger.NewSlogLogger())
}

func TestCreateOrder_ValidationErrors(t *testing.T) {
	uc := newTestOrderUC(&mockOrderRepo{}, &mockProductRepo{})

	_, err := uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerName: "  ",
		Items:        []OrderItemReq{{ProductID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, e.ErrCustomerNameRequired)

	_, err = uc.CreateOrder(context.Background(), &CreateOrderReq{
		CustomerName: "Amina",
	})
	assert.ErrorIs(t, err, e.ErrEmptyOrder)
}

func TestBuildLines_SnapshotsDiscountedPrice(t *testing.T) {
	uc := newTestOrderUC(&mockOrderRepo{}, &mockProductRepo{products: testProducts()})

	lines, err := uc.buildLines(context.Background(), []OrderItemReq{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 0}, // нормализуется в 1
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, int64(800000), lines[0].Price)
	assert.Equal(t, "Submariner", lines[0].ProductName)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestBuildLines_UnknownProduct(t *testing.T) {
	uc := newTestOrderUC(&mockOrderRepo{}, &mockProductRepo{products: testProducts()})

	_, err := uc.buildLines(context.Background(), []OrderItemReq{{ProductID: 99, Quantity: 1}})
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestUpdateOrderStatus_RejectsInvalidTransition(t *testing.T) {
	repo := &mockOrderRepo{order: &domain.Order{ID: 5, Status: domain.OrderDelivered}}
	uc := newTestOrderUC(repo, &mockProductRepo{})

	_, err := uc.UpdateOrderStatus(context.Background(), &UpdateOrderStatusReq{
		OrderID:   5,
		NewStatus: domain.OrderProcessing,
	})
	assert.ErrorIs(t, err, e.ErrInvalidStatusChange)
	assert.Equal(t, domain.OrderDelivered, repo.order.Status, "status must stay unchanged")
}

func TestUpdateOrderStatus_UnknownOrder(t *testing.T) {
	uc := newTestOrderUC(&mockOrderRepo{}, &mockProductRepo{})

	_, err := uc.UpdateOrderStatus(context.Background(), &UpdateOrderStatusReq{
		OrderID:   42,
		NewStatus: domain.OrderProcessing,
	})
	assert.ErrorIs(t, err, e.ErrOrderNotFound)
}

func TestGetOrder(t *testing.T) {
	repo := &mockOrderRepo{
		order: &domain.Order{ID: 7, OrderNumber: "TS-AB12CD34", Status: domain.OrderPending},
		lines: []domain.OrderLine{{OrderID: 7, ProductID: 1, Quantity: 1}},
	}
	uc := newTestOrderUC(repo, &mockProductRepo{})

	res, err := uc.GetOrder(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "TS-AB12CD34", res.Order.OrderNumber)
	require.Len(t, res.Lines, 1)
}

func TestNewOrderNumber_Format(t *testing.T) {
	n := newOrderNumber()
	assert.Len(t, n, 11)
	assert.Equal(t, "TS-", n[:3])
	assert.NotEqual(t, n, newOrderNumber())
}
