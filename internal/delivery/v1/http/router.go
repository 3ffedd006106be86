package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/thriftysouq/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/thriftysouq/go-backend/internal/cfg"
	"github.com/thriftysouq/go-backend/internal/usecase"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	cfg    *cfg.AdminCfg
	logger logger.Logger
}

func NewRouter(router *chi.Mux, cfg *cfg.AdminCfg, logger logger.Logger) *Router {
	return &Router{router: router, cfg: cfg, logger: logger}
}

func (r *Router) Init(
	marketingUC usecase.MarketingUC,
	productUC usecase.ProductUC,
	orderUC usecase.OrderUC,
	webhookUC usecase.WebhookUC,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	marketingHandler := NewMarketingHandler(marketingUC, r.logger)
	productHandler := NewProductHandler(productUC, r.logger)
	orderHandler := NewOrderHandler(orderUC, r.logger)
	webhookHandler := NewWebhookHandler(webhookUC, r.logger)
	storefrontHandler := NewStorefrontHandler(marketingUC, productUC, r.logger)

	// публичная витрина
	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Get("/products", productHandler.listProducts)
		v1.Get("/products/{id}", productHandler.getProduct)
		v1.Get("/products/{id}/related", productHandler.relatedProducts)
		v1.Get("/hero-banner", storefrontHandler.heroBanner)
		v1.Get("/catalog-stats", storefrontHandler.catalogStats)
		v1.Post("/orders", orderHandler.createOrder)
	})

	// админка за статическим bearer-токеном
	r.router.Route("/api/admin", func(admin chi.Router) {
		admin.Use(AdminAuth(r.cfg.APIToken, r.logger))

		admin.Route("/ai-marketing", func(ai chi.Router) {
			ai.Post("/analyze", marketingHandler.analyzeProducts)
			ai.Post("/generate-banner", marketingHandler.generateBanner)
			ai.Post("/generate-dual", marketingHandler.generateDual)
			ai.Post("/select-best", marketingHandler.selectBest)
			ai.Post("/product-description/{id}", marketingHandler.productDescription)
			ai.Post("/optimize", marketingHandler.optimizeContent)
			ai.Post("/apply-banner", marketingHandler.applyBanner)
			ai.Post("/product-audio", marketingHandler.productAudio)
			ai.Get("/voices", marketingHandler.listVoices)
			ai.Get("/providers", marketingHandler.listProviders)
		})

		admin.Route("/webhooks", func(wh chi.Router) {
			wh.Get("/", webhookHandler.listWebhooks)
			wh.Post("/", webhookHandler.createWebhook)
			wh.Get("/{id}", webhookHandler.getWebhook)
			wh.Put("/{id}", webhookHandler.updateWebhook)
			wh.Delete("/{id}", webhookHandler.deleteWebhook)
		})

		admin.Post("/products", productHandler.upsertProduct)
		admin.Get("/orders/{id}", orderHandler.getOrder)
		admin.Patch("/orders/{id}/status", orderHandler.updateOrderStatus)
	})

	// неавторизованные read-only маршруты для внешних агентов
	r.router.Route("/mcp", func(mcp chi.Router) {
		mcp.Get("/products", productHandler.listProducts)
		mcp.Get("/products/{id}", productHandler.getProduct)
		mcp.Get("/hero-banner", storefrontHandler.heroBanner)
		mcp.Get("/catalog-stats", storefrontHandler.catalogStats)
	})
}
