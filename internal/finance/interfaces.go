package finance

import "context"

// RepositoryInterface defines the interface for financial rollup queries
type RepositoryInterface interface {
	TotalRevenue(ctx context.Context) (float64, error)
	TotalOperationalCosts(ctx context.Context) (float64, error)
	AverageMileage(ctx context.Context) (float64, error)
}
