package ledger

import (
	"context"

	"github.com/richxcame/fleet-admin/pkg/common"
	"github.com/richxcame/fleet-admin/pkg/logger"
	"go.uber.org/zap"
)

// Service exposes the transaction log
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new ledger service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// ViewTransactions returns the full transaction log in store order
func (s *Service) ViewTransactions(ctx context.Context) ([]*Transaction, error) {
	transactions, err := s.repo.ListTransactions(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("failed to list transactions", zap.Error(err))
		return nil, common.NewInternalServerError("failed to list transactions")
	}
	return transactions, nil
}
