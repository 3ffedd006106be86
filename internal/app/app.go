package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/thriftysouq/go-backend/internal/cfg"
	v1Http "github.com/thriftysouq/go-backend/internal/delivery/v1/http"
	"github.com/thriftysouq/go-backend/internal/infrastructure/ai"
	"github.com/thriftysouq/go-backend/internal/infrastructure/kafka"
	"github.com/thriftysouq/go-backend/internal/infrastructure/webhook"
	s3Repo "github.com/thriftysouq/go-backend/internal/repository/minio"
	"github.com/thriftysouq/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/thriftysouq/go-backend/internal/repository/pgdb/converter/generated"
	qdrantRepo "github.com/thriftysouq/go-backend/internal/repository/qdrant"
	"github.com/thriftysouq/go-backend/internal/repository/redis"
	redisConv "github.com/thriftysouq/go-backend/internal/repository/redis/converter/generated"
	"github.com/thriftysouq/go-backend/internal/usecase"
	"github.com/thriftysouq/go-backend/pkg/clients"
	"github.com/thriftysouq/go-backend/pkg/closer"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
	"github.com/thriftysouq/go-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// Run собирает приложение: подключения к инфраструктуре, репозитории,
// AI-провайдеры, usecase-слой и HTTP-сервер. Блокируется до сигнала
// завершения или фатальной ошибки сервера.
func Run(cfg *config.Config, logger logger.Logger) {
	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}

	prConv := pgdbConv.NewProductConverterImpl()
	orderConv := pgdbConv.NewOrderConverterImpl()
	webhookConv := pgdbConv.NewWebhookConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	analysisConv := redisConv.NewProductAnalysisConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv)
	webhookRepo := pgdb.NewWebhookRepo(db.Pool, webhookConv)
	bannerRepo := pgdb.NewHeroBannerRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	minioCancel()

	audioRepo := s3Repo.NewAudioRepo(minioClient, cfg.Minio)

	qdrantClient, err := clients.NewQdrantClient(cfg.Qdrant)
	if err != nil {
		logger.Errorf(err, "failed to initialize qdrant")
		os.Exit(1)
	}
	qdrantCtx, qdrantCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureCollection(qdrantCtx, qdrantClient); err != nil {
		qdrantCancel()
		logger.Errorf(err, "failed to initialize qdrant")
		os.Exit(1)
	}
	qdrantCancel()

	embRepo := qdrantRepo.NewEmbeddingRepo(qdrantClient.Client, cfg.Qdrant)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	cacheRepo := redis.NewCacheRepo(redisClient, analysisConv, cfg.Redis, logger)

	openaiProvider := ai.NewOpenAIProvider(cfg.Ai, logger)
	geminiProvider := ai.NewGeminiProvider(cfg.Ai, logger)
	elevenProvider := ai.NewElevenLabsProvider(cfg.Ai, logger)

	registry := ai.NewRegistry(usecase.ProviderOpenAI, elevenProvider.ID(), logger)
	registry.RegisterConversational(openaiProvider)
	registry.RegisterConversational(geminiProvider)
	registry.RegisterSpeech(elevenProvider)

	dispatcher := webhook.NewDispatcher(webhookRepo, cfg.Webhook, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Warnf("Failed to ensure kafka topic, relying on broker auto-creation: %v", err)
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	outboxWorker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)
	outboxWorker.Start(workerCtx)

	marketingUC := usecase.NewMarketingUC(registry, productRepo, bannerRepo, cacheRepo, audioRepo, logger)
	productUC := usecase.NewProductUC(productRepo, embRepo, openaiProvider, logger)
	orderUC := usecase.NewOrderUC(orderRepo, productRepo, outboxRepo, db.Pool, dispatcher, logger)
	webhookUC := usecase.NewWebhookUC(webhookRepo, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, cfg.Admin, logger)
	router.Init(marketingUC, productUC, orderUC, webhookUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// Закрытие ресурсов в обратном порядке инициализации.
	cl := closer.NewCloser(2 * time.Second)
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cl.Add(func(ctx context.Context) error {
		return qdrantClient.Client.Close()
	})
	cl.Add(func(ctx context.Context) error {
		return geminiProvider.Close()
	})
	cl.Add(func(ctx context.Context) error {
		workerCancel()
		outboxWorker.Stop()
		return nil
	})
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Errorf(err, "HTTP server shutdown error")
	} else {
		logger.Infof("HTTP server stopped")
	}

	if err := cl.Close(shutdownCtx); err != nil {
		logger.Warnf("Resource shutdown finished with errors: %v", err)
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
