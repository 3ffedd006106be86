//go:generate goverter gen github.com/thriftysouq/go-backend/internal/repository/redis/converter

package converter

import (
	"github.com/thriftysouq/go-backend/internal/domain"
)

// goverter:converter
type ProductAnalysisConverter interface {
	ToRedisModel(entity *domain.ProductAnalysis) *ProductAnalysisRedisModel
	ToDomain(model *ProductAnalysisRedisModel) *domain.ProductAnalysis
}
