package ledger

import "time"

// Transaction is the financial ledger row produced once per completed return.
// Rows are written by the return engine and are append-only; this package is
// the read model over them.
type Transaction struct {
	TransactionID      int64     `json:"transaction_id" db:"transaction_id"`
	CustomerName       string    `json:"customer_name" db:"customer_name"`
	VehicleID          string    `json:"vehicle_id" db:"vehicle_id"`
	RentalDurationDays int       `json:"rental_duration_days" db:"rental_duration_days"`
	Revenue            float64   `json:"revenue" db:"revenue"` // the booking-time estimate
	CleaningFee        float64   `json:"cleaning_fee" db:"cleaning_fee"`
	MaintenanceFee     float64   `json:"maintenance_fee" db:"maintenance_fee"`
	LateFee            float64   `json:"late_fee" db:"late_fee"`
	Date               time.Time `json:"date" db:"transaction_date"`
}
