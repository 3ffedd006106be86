package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"

	"github.com/thriftysouq/go-backend/internal/cfg"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/internal/repository/redis/converter"
	"github.com/thriftysouq/go-backend/pkg/clients"
	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

// CacheRepo кэширует результаты AI-анализа каталога с TTL из конфигурации.
// Промах кэша — это nil без ошибки: вызывающая сторона идёт к провайдеру.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductAnalysisConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductAnalysisConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetAnalysis возвращает закэшированный анализ или nil при промахе.
func (c *CacheRepo) GetAnalysis(ctx context.Context, key string) (*domain.ProductAnalysis, error) {
	data, err := c.client.Client.Get(ctx, c.analysisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil // cache miss
		}
		c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ProductAnalysisRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		// битая запись бесполезна, убираем её
		if err := c.client.Client.Del(context.Background(), c.analysisKey(key)).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	return c.conv.ToDomain(&model), nil
}

// SetAnalysis кэширует анализ с TTL. Ошибки записи логируются, не возвращаются:
// кэш — это ускорение, а не источник истины.
func (c *CacheRepo) SetAnalysis(ctx context.Context, key string, analysis *domain.ProductAnalysis) error {
	model := c.conv.ToRedisModel(analysis)

	data, err := json.Marshal(model)
	if err != nil {
		c.logger.Warnf("Failed to marshal analysis for caching: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := c.client.Client.Set(ctx, c.analysisKey(key), data, c.cfg.AnalysisTTL).Err(); err != nil {
		c.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// analysisKey возвращает Redis-ключ для анализа набора товаров
func (c *CacheRepo) analysisKey(key string) string {
	return fmt.Sprintf("analysis:%s", key)
}
