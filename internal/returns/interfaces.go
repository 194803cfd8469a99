package returns

import "context"

// RepositoryInterface defines the interface for return repository operations.
// SaveReturn applies the whole return unit of work atomically and re-checks the
// already-returned guard inside the same transaction.
type RepositoryInterface interface {
	GetBookingForReturn(ctx context.Context, bookingID int64) (*BookingDetails, error)
	SaveReturn(ctx context.Context, in *SaveReturnInput) (*Return, error)
	ListReturns(ctx context.Context) ([]*Return, error)
}
