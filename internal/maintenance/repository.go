package maintenance

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles database operations for maintenance scheduling
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new maintenance repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListVehicleServiceState retrieves every vehicle's mileage together with the
// mileage recorded at its most recent service.
func (r *Repository) ListVehicleServiceState(ctx context.Context) ([]*VehicleServiceState, error) {
	query := `
		SELECT v.vehicle_id, v.mileage, v.maint_cost_per_km,
		       COALESCE(MAX(m.mileage_at_service), 0)
		FROM vehicles v
		LEFT JOIN maintenance_log m ON m.vehicle_id = v.vehicle_id
		GROUP BY v.vehicle_id, v.mileage, v.maint_cost_per_km
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle service state: %w", err)
	}
	defer rows.Close()

	states := make([]*VehicleServiceState, 0)
	for rows.Next() {
		s := &VehicleServiceState{}
		err := rows.Scan(&s.VehicleID, &s.Mileage, &s.MaintCostPerKM, &s.LastServiceMileage)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle service state: %w", err)
		}
		states = append(states, s)
	}

	return states, nil
}

// RecordSweep inserts the given log entries and demotes each affected vehicle
// to unavailable, all in one transaction.
func (r *Repository) RecordSweep(ctx context.Context, entries []*LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		err := tx.QueryRow(ctx, `
			INSERT INTO maintenance_log (vehicle_id, mileage_at_service, cost, service_date)
			VALUES ($1, $2, $3, $4)
			RETURNING maint_id
		`, e.VehicleID, e.MileageAtService, e.Cost, e.ServiceDate).Scan(&e.MaintID)
		if err != nil {
			return fmt.Errorf("failed to create maintenance log entry: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE vehicles
			SET available = FALSE
			WHERE vehicle_id = $1
		`, e.VehicleID)
		if err != nil {
			return fmt.Errorf("failed to demote vehicle: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SetVehicleAvailable marks a serviced vehicle available again
func (r *Repository) SetVehicleAvailable(ctx context.Context, vehicleID string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE vehicles
		SET available = TRUE
		WHERE vehicle_id = $1
	`, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to mark vehicle available: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

// ListLog retrieves the full maintenance history in store order
func (r *Repository) ListLog(ctx context.Context) ([]*LogEntry, error) {
	query := `
		SELECT maint_id, vehicle_id, mileage_at_service, cost, service_date
		FROM maintenance_log
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance log: %w", err)
	}
	defer rows.Close()

	entries := make([]*LogEntry, 0)
	for rows.Next() {
		e := &LogEntry{}
		err := rows.Scan(&e.MaintID, &e.VehicleID, &e.MileageAtService, &e.Cost, &e.ServiceDate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance log entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}
