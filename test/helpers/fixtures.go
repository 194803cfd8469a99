package helpers

import (
	"time"

	"github.com/richxcame/fleet-admin/internal/booking"
	"github.com/richxcame/fleet-admin/internal/fleet"
	"github.com/richxcame/fleet-admin/internal/returns"
)

// CreateTestVehicle creates a test vehicle with default values
func CreateTestVehicle() *fleet.Vehicle {
	return &fleet.Vehicle{
		VehicleID:      "V001",
		BrandModel:     "Toyota Corolla",
		Mileage:        0,
		DailyPrice:     30.0,
		MaintCostPerKM: 0.10,
		Available:      true,
	}
}

// CreateTestBooking creates a test booking with default values
func CreateTestBooking() *booking.Booking {
	start := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)
	return &booking.Booking{
		BookingID:     1,
		CustomerName:  "Alice",
		VehicleID:     "V001",
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 5),
		EstimatedKM:   200,
		EstimatedCost: 170.0,
	}
}

// CreateTestBookingDetails creates the booking details used by return processing
func CreateTestBookingDetails() *returns.BookingDetails {
	b := CreateTestBooking()
	return &returns.BookingDetails{
		BookingID:          b.BookingID,
		CustomerName:       b.CustomerName,
		VehicleID:          b.VehicleID,
		StartDate:          b.StartDate,
		EndDate:            b.EndDate,
		EstimatedKM:        b.EstimatedKM,
		EstimatedCost:      b.EstimatedCost,
		VehicleMileage:     0,
		MaintCostPerKM:     0.10,
		LastServiceMileage: 0,
		Returned:           false,
	}
}

// CreateTestReturnRequest creates a test return request two days late
func CreateTestReturnRequest() *returns.ProcessReturnRequest {
	return &returns.ProcessReturnRequest{
		BookingID:  1,
		ActualKM:   250,
		ReturnDate: "2025-04-27",
	}
}
