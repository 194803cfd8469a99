package finance

import (
	"context"

	"github.com/richxcame/fleet-admin/pkg/common"
	"github.com/richxcame/fleet-admin/pkg/logger"
	"go.uber.org/zap"
)

// Service computes the financial rollups. Each metric is independently
// computable; nothing is cached.
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new finance service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// TotalRevenue returns the sum of revenue over all transactions
func (s *Service) TotalRevenue(ctx context.Context) (float64, error) {
	revenue, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("failed to get total revenue", zap.Error(err))
		return 0, common.NewInternalServerError("failed to get total revenue")
	}
	return revenue, nil
}

// TotalOperationalCosts returns the sum of all fees over all transactions
func (s *Service) TotalOperationalCosts(ctx context.Context) (float64, error) {
	costs, err := s.repo.TotalOperationalCosts(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("failed to get total operational costs", zap.Error(err))
		return 0, common.NewInternalServerError("failed to get total operational costs")
	}
	return costs, nil
}

// TotalProfit returns revenue minus operational costs
func (s *Service) TotalProfit(ctx context.Context) (float64, error) {
	revenue, err := s.TotalRevenue(ctx)
	if err != nil {
		return 0, err
	}
	costs, err := s.TotalOperationalCosts(ctx)
	if err != nil {
		return 0, err
	}
	return revenue - costs, nil
}

// AverageMileage returns the mean mileage across the fleet
func (s *Service) AverageMileage(ctx context.Context) (float64, error) {
	avg, err := s.repo.AverageMileage(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("failed to get average mileage", zap.Error(err))
		return 0, common.NewInternalServerError("failed to get average mileage")
	}
	return avg, nil
}

// GenerateFullReport bundles all four metrics
func (s *Service) GenerateFullReport(ctx context.Context) (*Report, error) {
	revenue, err := s.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	costs, err := s.TotalOperationalCosts(ctx)
	if err != nil {
		return nil, err
	}
	avg, err := s.AverageMileage(ctx)
	if err != nil {
		return nil, err
	}

	return &Report{
		TotalRevenue:          revenue,
		TotalOperationalCosts: costs,
		TotalProfit:           revenue - costs,
		AverageMileage:        avg,
	}, nil
}
