package fleet

import "context"

// RepositoryInterface defines the interface for fleet repository operations
type RepositoryInterface interface {
	ListVehicles(ctx context.Context) ([]*Vehicle, error)
	GetVehicle(ctx context.Context, vehicleID string) (*Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *Vehicle) error
	SetAvailability(ctx context.Context, vehicleID string, available bool) error
	MaxVehicleNumber(ctx context.Context) (int, error)
}
