package http

import (
	"net/http"

	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/internal/usecase"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

type OrderHandler struct {
	orderUC usecase.OrderUC
	logger  logger.Logger
}

func NewOrderHandler(orderUC usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, logger: logger}
}

type createOrderRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	PaymentMethod   string `json:"paymentMethod"`
	Items           []struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	} `json:"items"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// createOrder
//
//	@Summary		Создание заказа
//	@Description	Создаёт заказ, рассчитывает суммы и рассылает событие order.created
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createOrderRequest	true	"Заказ"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Router			/orders [post]
func (o *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	items := make([]usecase.OrderItemReq, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemReq{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	res, err := o.orderUC.CreateOrder(r.Context(), &usecase.CreateOrderReq{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		PaymentMethod:   req.PaymentMethod,
		Items:           items,
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"order": res.Order,
		"lines": res.Lines,
	})
}

// getOrder
//
//	@Summary		Заказ по ID
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		int	true	"ID заказа"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/orders/{id} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := o.orderUC.GetOrder(r.Context(), id)
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"order": res.Order,
		"lines": res.Lines,
	})
}

// updateOrderStatus
//
//	@Summary		Смена статуса заказа
//	@Description	Проверяет допустимость перехода и рассылает событие order.status_changed
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"ID заказа"
//	@Param			request	body		updateOrderStatusRequest	true	"Новый статус"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/orders/{id}/status [patch]
func (o *OrderHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req updateOrderStatusRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	order, err := o.orderUC.UpdateOrderStatus(r.Context(), &usecase.UpdateOrderStatusReq{
		OrderID:   id,
		NewStatus: domain.OrderStatus(req.Status),
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"order": order})
}
