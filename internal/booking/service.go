package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/richxcame/fleet-admin/pkg/common"
	"github.com/richxcame/fleet-admin/pkg/logger"
	"go.uber.org/zap"
)

// Service handles booking business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new booking service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// CreateBooking books an available vehicle for a customer. The estimated cost
// is frozen at creation time; later rate changes do not affect it.
func (s *Service) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		return nil, common.NewBadRequestError("customer_name is required", nil)
	}
	if req.RentalDays < 1 {
		return nil, common.NewBadRequestError("rental_days must be at least 1", nil)
	}
	if req.EstimatedKM < 0 {
		return nil, common.NewBadRequestError("estimated_km cannot be negative", nil)
	}

	startDate, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return nil, common.NewBadRequestError("invalid start_date format", err)
	}

	rates, err := s.repo.GetVehicleRates(ctx, strings.TrimSpace(req.VehicleID))
	if err != nil {
		if errors.Is(err, ErrVehicleNotFound) {
			return nil, common.NewNotFoundError(fmt.Sprintf("vehicle %q not found", req.VehicleID), err)
		}
		logger.WithContext(ctx).Error("failed to get vehicle rates", zap.Error(err))
		return nil, common.NewInternalServerError("failed to create booking")
	}
	if !rates.Available {
		return nil, common.NewUnavailableError(fmt.Sprintf("vehicle %q is currently unavailable", req.VehicleID))
	}

	endDate := startDate.AddDate(0, 0, req.RentalDays)
	estimatedCost := float64(req.RentalDays)*rates.DailyPrice + float64(req.EstimatedKM)*rates.MaintCostPerKM

	b := &Booking{
		CustomerName:  customerName,
		VehicleID:     rates.VehicleID,
		StartDate:     startDate,
		EndDate:       endDate,
		EstimatedKM:   req.EstimatedKM,
		EstimatedCost: estimatedCost,
	}

	if err := s.repo.CreateBookingAndReserveVehicle(ctx, b); err != nil {
		if errors.Is(err, ErrVehicleUnavailable) {
			return nil, common.NewUnavailableError(fmt.Sprintf("vehicle %q is currently unavailable", req.VehicleID))
		}
		logger.WithContext(ctx).Error("failed to create booking", zap.Error(err))
		return nil, common.NewInternalServerError("failed to create booking")
	}

	logger.Info("Booking created",
		zap.Int64("booking_id", b.BookingID),
		zap.String("vehicle_id", b.VehicleID),
		zap.String("customer_name", b.CustomerName),
		zap.Float64("estimated_cost", b.EstimatedCost),
	)

	return b, nil
}

// ViewBookings returns all bookings in store order
func (s *Service) ViewBookings(ctx context.Context) ([]*Booking, error) {
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("failed to list bookings", zap.Error(err))
		return nil, common.NewInternalServerError("failed to list bookings")
	}
	return bookings, nil
}
