package interfaces

import (
	"context"
	"inspection_estimator/internal/domain/entities"
)

// IEstimateAnalyzer sends inspection text to the inference service and returns the
// structured estimate. Callers truncate text before calling Analyze.
type IEstimateAnalyzer interface {
	Analyze(ctx context.Context, text string) (entities.CostEstimate, error)
}
