package returns

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles database operations for returns
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new returns repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetBookingForReturn retrieves the booking joined with its vehicle, the
// vehicle's last serviced mileage and whether a return already exists.
func (r *Repository) GetBookingForReturn(ctx context.Context, bookingID int64) (*BookingDetails, error) {
	query := `
		SELECT b.booking_id, b.customer_name, b.vehicle_id, b.start_date, b.end_date,
		       b.estimated_km, b.estimated_cost,
		       v.mileage, v.maint_cost_per_km,
		       COALESCE((SELECT MAX(m.mileage_at_service) FROM maintenance_log m WHERE m.vehicle_id = v.vehicle_id), 0),
		       EXISTS(SELECT 1 FROM returns rt WHERE rt.booking_id = b.booking_id)
		FROM bookings b
		JOIN vehicles v ON b.vehicle_id = v.vehicle_id
		WHERE b.booking_id = $1
	`

	d := &BookingDetails{}
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&d.BookingID, &d.CustomerName, &d.VehicleID, &d.StartDate, &d.EndDate,
		&d.EstimatedKM, &d.EstimatedCost,
		&d.VehicleMileage, &d.MaintCostPerKM,
		&d.LastServiceMileage,
		&d.Returned,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking for return: %w", err)
	}

	return d, nil
}

// SaveReturn applies the return unit of work in one transaction: insert the
// return row, insert the ledger transaction, update vehicle mileage and set it
// available again, and insert the maintenance log entry when one was triggered.
// The inline maintenance entry deliberately leaves the vehicle available; only
// the standalone maintenance sweep demotes vehicles.
func (r *Repository) SaveReturn(ctx context.Context, in *SaveReturnInput) (*Return, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Guard against double processing inside the transaction
	var returned bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM returns WHERE booking_id = $1)
	`, in.Return.BookingID).Scan(&returned)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing return: %w", err)
	}
	if returned {
		return nil, ErrAlreadyReturned
	}

	ret := in.Return
	err = tx.QueryRow(ctx, `
		INSERT INTO returns (booking_id, actual_km, late_fee, cleaning_fee, maintenance_fee, return_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING return_id
	`, ret.BookingID, ret.ActualKM, ret.LateFee, ret.CleaningFee, ret.MaintenanceFee, ret.ReturnDate).Scan(&ret.ReturnID)
	if err != nil {
		return nil, fmt.Errorf("failed to create return: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO transactions (customer_name, vehicle_id, rental_duration_days,
		                          revenue, cleaning_fee, maintenance_fee, late_fee, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, in.CustomerName, in.VehicleID, in.RentalDurationDays,
		in.Revenue, ret.CleaningFee, ret.MaintenanceFee, ret.LateFee, ret.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE vehicles
		SET mileage = $1, available = TRUE
		WHERE vehicle_id = $2
	`, in.NewMileage, in.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	if in.Maintenance != nil {
		m := in.Maintenance
		_, err = tx.Exec(ctx, `
			INSERT INTO maintenance_log (vehicle_id, mileage_at_service, cost, service_date)
			VALUES ($1, $2, $3, $4)
		`, m.VehicleID, m.MileageAtService, m.Cost, m.ServiceDate)
		if err != nil {
			return nil, fmt.Errorf("failed to create maintenance log entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &ret, nil
}

// ListReturns retrieves all processed returns in store order
func (r *Repository) ListReturns(ctx context.Context) ([]*Return, error) {
	query := `
		SELECT return_id, booking_id, actual_km, late_fee, cleaning_fee, maintenance_fee, return_date
		FROM returns
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list returns: %w", err)
	}
	defer rows.Close()

	results := make([]*Return, 0)
	for rows.Next() {
		ret := &Return{}
		err := rows.Scan(&ret.ReturnID, &ret.BookingID, &ret.ActualKM, &ret.LateFee, &ret.CleaningFee, &ret.MaintenanceFee, &ret.ReturnDate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan return: %w", err)
		}
		results = append(results, ret)
	}

	return results, nil
}
