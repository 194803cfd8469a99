package maintenance

import (
	"errors"
	"time"
)

// DefaultThresholdKM is the service interval used when no threshold is given
const DefaultThresholdKM = 10000

// LogEntry is one row of the append-only maintenance history
type LogEntry struct {
	MaintID          int64     `json:"maint_id" db:"maint_id"`
	VehicleID        string    `json:"vehicle_id" db:"vehicle_id"`
	MileageAtService int64     `json:"mileage_at_service" db:"mileage_at_service"`
	Cost             float64   `json:"cost" db:"cost"`
	ServiceDate      time.Time `json:"service_date" db:"service_date"`
}

// Event describes a maintenance entry created by a sweep
type Event struct {
	VehicleID        string    `json:"vehicle_id"`
	MileageAtService int64     `json:"mileage_at_service"`
	Cost             float64   `json:"cost"`
	ServiceDate      time.Time `json:"service_date"`
}

// VehicleServiceState is a vehicle's mileage position relative to its last service
type VehicleServiceState struct {
	VehicleID          string
	Mileage            int64
	MaintCostPerKM     float64
	LastServiceMileage int64 // 0 if the vehicle was never serviced
}

// ScheduleRequest is the API request for a maintenance sweep
type ScheduleRequest struct {
	ThresholdKM int64 `json:"threshold_km" binding:"omitempty,gte=1"`
}

// ErrVehicleNotFound is returned by the repository when a vehicle id does not exist
var ErrVehicleNotFound = errors.New("vehicle not found")
