package booking

import "context"

// RepositoryInterface defines the interface for booking repository operations.
// CreateBookingAndReserveVehicle is a single atomic unit of work: the booking
// insert and the vehicle availability flip either both commit or neither does.
type RepositoryInterface interface {
	GetVehicleRates(ctx context.Context, vehicleID string) (*VehicleRates, error)
	CreateBookingAndReserveVehicle(ctx context.Context, b *Booking) error
	ListBookings(ctx context.Context) ([]*Booking, error)
}
