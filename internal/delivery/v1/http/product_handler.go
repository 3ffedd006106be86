package http

import (
	"net/http"
	"strconv"

	"github.com/thriftysouq/go-backend/internal/usecase"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

type ProductHandler struct {
	productUC usecase.ProductUC
	logger    logger.Logger
}

func NewProductHandler(productUC usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUC: productUC, logger: logger}
}

type upsertProductRequest struct {
	Name            string `json:"name"`
	Brand           string `json:"brand"`
	Category        string `json:"category"`
	OriginalPrice   int64  `json:"originalPrice"`
	DiscountedPrice int64  `json:"discountedPrice"`
	DiscountPercent int    `json:"discountPercent"`
	Stock           int    `json:"stock"`
	ImageKey        string `json:"imageKey"`
}

// listProducts
//
//	@Summary		Активный каталог
//	@Tags			products
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUC.ListProducts(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"products": products})
}

// getProduct
//
//	@Summary		Товар по ID
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUC.GetProduct(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"product": product})
}

// relatedProducts
//
//	@Summary		Похожие товары по векторному поиску
//	@Tags			products
//	@Produce		json
//	@Param			id		path		int	true	"ID товара"
//	@Param			limit	query		int	false	"Максимум результатов (по умолчанию 5)"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products/{id}/related [get]
func (p *ProductHandler) relatedProducts(w http.ResponseWriter, r *http.Request) {
	const defaultLimit = 5

	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	limit := uint64(defaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	related, err := p.productUC.RelatedProducts(r.Context(), id, limit)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"related": related})
}

// upsertProduct
//
//	@Summary		Создание или обновление товара
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		upsertProductRequest	true	"Товар"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/products [post]
func (p *ProductHandler) upsertProduct(w http.ResponseWriter, r *http.Request) {
	var req upsertProductRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUC.UpsertProduct(r.Context(), &usecase.UpsertProductReq{
		Name:            req.Name,
		Brand:           req.Brand,
		Category:        req.Category,
		OriginalPrice:   req.OriginalPrice,
		DiscountedPrice: req.DiscountedPrice,
		DiscountPercent: req.DiscountPercent,
		Stock:           req.Stock,
		ImageKey:        req.ImageKey,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"product": product})
}
