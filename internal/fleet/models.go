package fleet

import "errors"

// Vehicle represents a vehicle in the shared fleet
type Vehicle struct {
	VehicleID      string  `json:"vehicle_id" db:"vehicle_id"`
	BrandModel     string  `json:"brand_model" db:"brand_model"`
	Mileage        int64   `json:"mileage" db:"mileage"`                     // cumulative odometer, km
	DailyPrice     float64 `json:"daily_price" db:"daily_price"`             // rental price per day
	MaintCostPerKM float64 `json:"maint_cost_per_km" db:"maint_cost_per_km"` // maintenance cost per km
	Available      bool    `json:"available" db:"available"`
}

// AddVehicleRequest is the API request for adding a vehicle to the fleet
type AddVehicleRequest struct {
	BrandModel     string  `json:"brand_model" binding:"required"`
	Mileage        int64   `json:"mileage" binding:"gte=0"`
	DailyPrice     float64 `json:"daily_price" binding:"gte=0"`
	MaintCostPerKM float64 `json:"maint_cost_per_km" binding:"gte=0"`
}

// UpdateAvailabilityRequest is the API request for flipping a vehicle's availability
type UpdateAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// ErrVehicleNotFound is returned by the repository when a vehicle id does not exist
var ErrVehicleNotFound = errors.New("vehicle not found")
