package ledger

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles database reads for the transaction log
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new ledger repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListTransactions retrieves all transactions in store order
func (r *Repository) ListTransactions(ctx context.Context) ([]*Transaction, error) {
	query := `
		SELECT transaction_id, customer_name, vehicle_id, rental_duration_days,
		       revenue, cleaning_fee, maintenance_fee, late_fee, transaction_date
		FROM transactions
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]*Transaction, 0)
	for rows.Next() {
		t := &Transaction{}
		err := rows.Scan(
			&t.TransactionID, &t.CustomerName, &t.VehicleID, &t.RentalDurationDays,
			&t.Revenue, &t.CleaningFee, &t.MaintenanceFee, &t.LateFee, &t.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}
