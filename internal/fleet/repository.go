package fleet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles database operations for the vehicle fleet
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new fleet repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListVehicles retrieves all vehicles in the fleet
func (r *Repository) ListVehicles(ctx context.Context) ([]*Vehicle, error) {
	query := `
		SELECT vehicle_id, brand_model, mileage, daily_price, maint_cost_per_km, available
		FROM vehicles
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := make([]*Vehicle, 0)
	for rows.Next() {
		v := &Vehicle{}
		err := rows.Scan(&v.VehicleID, &v.BrandModel, &v.Mileage, &v.DailyPrice, &v.MaintCostPerKM, &v.Available)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}

// GetVehicle retrieves a vehicle by its id
func (r *Repository) GetVehicle(ctx context.Context, vehicleID string) (*Vehicle, error) {
	query := `
		SELECT vehicle_id, brand_model, mileage, daily_price, maint_cost_per_km, available
		FROM vehicles
		WHERE vehicle_id = $1
	`

	v := &Vehicle{}
	err := r.db.QueryRow(ctx, query, vehicleID).Scan(
		&v.VehicleID, &v.BrandModel, &v.Mileage, &v.DailyPrice, &v.MaintCostPerKM, &v.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return v, nil
}

// CreateVehicle inserts a new vehicle
func (r *Repository) CreateVehicle(ctx context.Context, vehicle *Vehicle) error {
	query := `
		INSERT INTO vehicles (vehicle_id, brand_model, mileage, daily_price, maint_cost_per_km, available)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		vehicle.VehicleID, vehicle.BrandModel, vehicle.Mileage,
		vehicle.DailyPrice, vehicle.MaintCostPerKM, vehicle.Available,
	)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	return nil
}

// SetAvailability flips a vehicle's availability flag
func (r *Repository) SetAvailability(ctx context.Context, vehicleID string, available bool) error {
	query := `
		UPDATE vehicles
		SET available = $1
		WHERE vehicle_id = $2
	`

	tag, err := r.db.Exec(ctx, query, available, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to update availability: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

// MaxVehicleNumber returns the highest numeric suffix among V-prefixed vehicle
// ids, or 0 when the fleet is empty.
func (r *Repository) MaxVehicleNumber(ctx context.Context) (int, error) {
	query := `
		SELECT COALESCE(MAX(CAST(SUBSTRING(vehicle_id FROM 2) AS INTEGER)), 0)
		FROM vehicles
		WHERE vehicle_id ~ '^V[0-9]+$'
	`

	var max int
	if err := r.db.QueryRow(ctx, query).Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to get max vehicle number: %w", err)
	}

	return max, nil
}
