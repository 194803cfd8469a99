package ledger

import "context"

// RepositoryInterface defines the interface for transaction log reads
type RepositoryInterface interface {
	ListTransactions(ctx context.Context) ([]*Transaction, error)
}
