package http

import (
	"net/http"

	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/internal/usecase"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

// StorefrontHandler — публичные read-only эндпоинты витрины и /mcp.
// Маршруты /mcp не требуют авторизации: их читают внешние агенты.
type StorefrontHandler struct {
	marketingUC usecase.MarketingUC
	productUC   usecase.ProductUC
	logger      logger.Logger
}

func NewStorefrontHandler(marketingUC usecase.MarketingUC, productUC usecase.ProductUC, logger logger.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		marketingUC: marketingUC,
		productUC:   productUC,
		logger:      logger,
	}
}

// heroBanner
//
//	@Summary		Активный hero-баннер витрины
//	@Tags			storefront
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/hero-banner [get]
func (s *StorefrontHandler) heroBanner(w http.ResponseWriter, r *http.Request) {
	banner, err := s.marketingUC.ActiveHeroBanner(r.Context())
	if err != nil {
		s.logger.Warnf("active banner lookup failed, serving fallback: %v", err)
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"fallback": true,
			"content":  fallbackHeroBanner(),
		})
		return
	}

	if banner == nil {
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"fallback": true,
			"content":  fallbackHeroBanner(),
		})
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"fallback": false,
		"content":  banner.Content,
	})
}

// catalogStats
//
//	@Summary		Агрегаты активного каталога
//	@Tags			storefront
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/catalog-stats [get]
func (s *StorefrontHandler) catalogStats(w http.ResponseWriter, r *http.Request) {
	products, err := s.productUC.ListProducts(r.Context())
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	stats := domain.ComputeCatalogStats(products)
	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"totalSavings":    stats.TotalSavings.StringFixed(2),
		"averageDiscount": stats.AverageDiscount.String(),
		"brands":          stats.Brands,
		"categories":      stats.Categories,
		"productCount":    len(products),
	})
}
