package finance

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository runs the read-only financial rollups. It rides database/sql
// rather than the pgx pool since every query is a single scalar aggregate.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new finance repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// TotalRevenue sums the revenue of all transactions, 0 if there are none
func (r *Repository) TotalRevenue(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(revenue), 0) FROM transactions`

	var total float64
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to get total revenue: %w", err)
	}

	return total, nil
}

// TotalOperationalCosts sums cleaning, maintenance and late fees over all
// transactions, 0 if there are none
func (r *Repository) TotalOperationalCosts(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(cleaning_fee + maintenance_fee + late_fee), 0) FROM transactions`

	var total float64
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to get total operational costs: %w", err)
	}

	return total, nil
}

// AverageMileage returns the mean mileage across the fleet, 0 if it is empty
func (r *Repository) AverageMileage(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(AVG(mileage), 0) FROM vehicles`

	var avg float64
	if err := r.db.QueryRowContext(ctx, query).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to get average mileage: %w", err)
	}

	return avg, nil
}
