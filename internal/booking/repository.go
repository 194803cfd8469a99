package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles database operations for bookings
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new booking repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetVehicleRates retrieves the pricing and availability data for a vehicle
func (r *Repository) GetVehicleRates(ctx context.Context, vehicleID string) (*VehicleRates, error) {
	query := `
		SELECT vehicle_id, daily_price, maint_cost_per_km, available
		FROM vehicles
		WHERE vehicle_id = $1
	`

	rates := &VehicleRates{}
	err := r.db.QueryRow(ctx, query, vehicleID).Scan(
		&rates.VehicleID, &rates.DailyPrice, &rates.MaintCostPerKM, &rates.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle rates: %w", err)
	}

	return rates, nil
}

// CreateBookingAndReserveVehicle inserts the booking row and marks the vehicle
// unavailable in one transaction. The availability flip is guarded so that two
// concurrent callers cannot both reserve the same vehicle.
func (r *Repository) CreateBookingAndReserveVehicle(ctx context.Context, b *Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE vehicles
		SET available = FALSE
		WHERE vehicle_id = $1 AND available = TRUE
	`, b.VehicleID)
	if err != nil {
		return fmt.Errorf("failed to reserve vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVehicleUnavailable
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (customer_name, vehicle_id, start_date, end_date, estimated_km, estimated_cost)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING booking_id
	`, b.CustomerName, b.VehicleID, b.StartDate, b.EndDate, b.EstimatedKM, b.EstimatedCost).Scan(&b.BookingID)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListBookings retrieves all bookings in store order
func (r *Repository) ListBookings(ctx context.Context) ([]*Booking, error) {
	query := `
		SELECT booking_id, customer_name, vehicle_id, start_date, end_date, estimated_km, estimated_cost
		FROM bookings
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]*Booking, 0)
	for rows.Next() {
		b := &Booking{}
		err := rows.Scan(&b.BookingID, &b.CustomerName, &b.VehicleID, &b.StartDate, &b.EndDate, &b.EstimatedKM, &b.EstimatedCost)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}
