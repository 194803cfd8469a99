package booking

import (
	"errors"
	"time"
)

// Booking represents a reservation of one vehicle by one customer for a fixed
// date range and estimated distance. Bookings are immutable once created.
type Booking struct {
	BookingID     int64     `json:"booking_id" db:"booking_id"`
	CustomerName  string    `json:"customer_name" db:"customer_name"`
	VehicleID     string    `json:"vehicle_id" db:"vehicle_id"`
	StartDate     time.Time `json:"start_date" db:"start_date"`
	EndDate       time.Time `json:"end_date" db:"end_date"`
	EstimatedKM   int64     `json:"estimated_km" db:"estimated_km"`
	EstimatedCost float64   `json:"estimated_cost" db:"estimated_cost"` // frozen at creation time
}

// VehicleRates is the subset of vehicle data the booking engine needs
type VehicleRates struct {
	VehicleID      string
	DailyPrice     float64
	MaintCostPerKM float64
	Available      bool
}

// CreateBookingRequest is the API request for creating a booking
type CreateBookingRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	VehicleID    string `json:"vehicle_id" binding:"required"`
	StartDate    string `json:"start_date" binding:"required,datetime=2006-01-02"`
	RentalDays   int    `json:"rental_days" binding:"required,gte=1"`
	EstimatedKM  int64  `json:"estimated_km" binding:"gte=0"`
}

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

var (
	// ErrVehicleNotFound is returned by the repository when the vehicle id does not exist
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrVehicleUnavailable is returned when the vehicle is booked or under maintenance
	ErrVehicleUnavailable = errors.New("vehicle unavailable")
)
