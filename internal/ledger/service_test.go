package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/richxcame/fleet-admin/pkg/common"
)

// MockRepository is an in-package mock for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListTransactions(ctx context.Context) ([]*Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Transaction), args.Error(1)
}

func TestViewTransactions(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	expected := []*Transaction{
		{TransactionID: 1, CustomerName: "Alice", VehicleID: "V001", Revenue: 170.0},
	}
	mockRepo.On("ListTransactions", ctx).Return(expected, nil)

	transactions, err := service.ViewTransactions(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, transactions)
	mockRepo.AssertExpectations(t)
}

func TestViewTransactions_RepositoryFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ListTransactions", ctx).Return(nil, errors.New("connection refused"))

	_, err := service.ViewTransactions(ctx)

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindInternal, appErr.Kind)
}
