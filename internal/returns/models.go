package returns

import (
	"errors"
	"time"
)

// Fee schedule and service interval. These are business constants, not config.
const (
	// LateFeePerDay is charged for each day past the booked end date
	LateFeePerDay = 10.0
	// CleaningFee is a flat fee charged on every return
	CleaningFee = 20.0
	// MaintThresholdKM is the distance since last service that triggers a
	// maintenance log entry during return processing
	MaintThresholdKM = 10000
)

// Return is the closing event of a booking, recording actual usage and fees
type Return struct {
	ReturnID       int64     `json:"return_id" db:"return_id"`
	BookingID      int64     `json:"booking_id" db:"booking_id"`
	ActualKM       int64     `json:"actual_km" db:"actual_km"`
	LateFee        float64   `json:"late_fee" db:"late_fee"`
	CleaningFee    float64   `json:"cleaning_fee" db:"cleaning_fee"`
	MaintenanceFee float64   `json:"maintenance_fee" db:"maintenance_fee"`
	ReturnDate     time.Time `json:"return_date" db:"return_date"`
}

// BookingDetails is the booking row joined with its vehicle, as needed for fee
// computation during return processing.
type BookingDetails struct {
	BookingID          int64
	CustomerName       string
	VehicleID          string
	StartDate          time.Time
	EndDate            time.Time
	EstimatedKM        int64
	EstimatedCost      float64
	VehicleMileage     int64
	MaintCostPerKM     float64
	LastServiceMileage int64 // max mileage_at_service for the vehicle, 0 if never serviced
	Returned           bool  // a Return row already exists for this booking
}

// MaintenanceEntry is the log row written when a return crosses the service threshold
type MaintenanceEntry struct {
	VehicleID        string
	MileageAtService int64
	Cost             float64
	ServiceDate      time.Time
}

// SaveReturnInput carries every write of the return unit of work: the return
// row, the ledger transaction, the vehicle mileage/availability update and,
// when the service threshold was crossed, the maintenance log entry.
type SaveReturnInput struct {
	Return             Return
	CustomerName       string
	VehicleID          string
	RentalDurationDays int
	Revenue            float64
	NewMileage         int64
	Maintenance        *MaintenanceEntry
}

// ReturnSummary is the result of processing a return
type ReturnSummary struct {
	BookingID            int64     `json:"booking_id"`
	CustomerName         string    `json:"customer_name"`
	VehicleID            string    `json:"vehicle_id"`
	ReturnDate           time.Time `json:"return_date"`
	ActualKM             int64     `json:"actual_km"`
	LateDays             int       `json:"late_days"`
	LateFee              float64   `json:"late_fee"`
	CleaningFee          float64   `json:"cleaning_fee"`
	MaintenanceFee       float64   `json:"maintenance_fee"`
	TotalAdditional      float64   `json:"total_additional"`
	MaintenanceScheduled bool      `json:"maintenance_scheduled"`
	Revenue              float64   `json:"revenue"`
	RentalDurationDays   int       `json:"rental_duration_days"`
}

// ProcessReturnRequest is the API request for processing a return
type ProcessReturnRequest struct {
	BookingID  int64  `json:"booking_id" binding:"required"`
	ActualKM   int64  `json:"actual_km" binding:"gte=0"`
	ReturnDate string `json:"return_date" binding:"required,datetime=2006-01-02"`
}

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

var (
	// ErrBookingNotFound is returned by the repository when the booking id does not exist
	ErrBookingNotFound = errors.New("booking not found")
	// ErrAlreadyReturned is returned when a return was already processed for the booking
	ErrAlreadyReturned = errors.New("booking already returned")
)
