package maintenance

import "context"

// RepositoryInterface defines the interface for maintenance repository
// operations. RecordSweep commits every log insert and availability demotion
// of one sweep as a single unit of work.
type RepositoryInterface interface {
	ListVehicleServiceState(ctx context.Context) ([]*VehicleServiceState, error)
	RecordSweep(ctx context.Context, entries []*LogEntry) error
	SetVehicleAvailable(ctx context.Context, vehicleID string) error
	ListLog(ctx context.Context) ([]*LogEntry, error)
}
