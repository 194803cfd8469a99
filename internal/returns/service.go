package returns

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/richxcame/fleet-admin/pkg/common"
	"github.com/richxcame/fleet-admin/pkg/logger"
	"go.uber.org/zap"
)

// Service handles return processing business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new returns service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// ProcessReturn closes a booking: computes late, cleaning and maintenance
// fees, records the return and its ledger transaction, credits the driven
// kilometres to the vehicle and makes it available again. Revenue is always
// the booking-time estimate; actual kilometres only affect the maintenance
// fee. When the vehicle crosses the service threshold the maintenance entry
// is logged but the vehicle stays available - only the standalone sweep
// demotes vehicles.
func (s *Service) ProcessReturn(ctx context.Context, req *ProcessReturnRequest) (*ReturnSummary, error) {
	if req.ActualKM < 0 {
		return nil, common.NewBadRequestError("actual_km cannot be negative", nil)
	}

	returnDate, err := time.Parse(DateLayout, req.ReturnDate)
	if err != nil {
		return nil, common.NewBadRequestError("invalid return_date format", err)
	}

	details, err := s.repo.GetBookingForReturn(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, common.NewNotFoundError(fmt.Sprintf("booking %d not found", req.BookingID), err)
		}
		logger.WithContext(ctx).Error("failed to get booking for return", zap.Error(err))
		return nil, common.NewInternalServerError("failed to process return")
	}
	if details.Returned {
		return nil, common.NewConflictError(fmt.Sprintf("booking %d was already returned", req.BookingID))
	}

	lateDays := daysBetween(details.EndDate, returnDate)
	if lateDays < 0 {
		lateDays = 0
	}
	lateFee := float64(lateDays) * LateFeePerDay

	maintenanceFee := float64(req.ActualKM) * details.MaintCostPerKM
	rentalDuration := daysBetween(details.StartDate, details.EndDate)

	newMileage := details.VehicleMileage + req.ActualKM
	kmSinceService := newMileage - details.LastServiceMileage

	var maintenance *MaintenanceEntry
	if kmSinceService >= MaintThresholdKM {
		maintenance = &MaintenanceEntry{
			VehicleID:        details.VehicleID,
			MileageAtService: newMileage,
			Cost:             float64(kmSinceService) * details.MaintCostPerKM,
			ServiceDate:      returnDate,
		}
	}

	in := &SaveReturnInput{
		Return: Return{
			BookingID:      details.BookingID,
			ActualKM:       req.ActualKM,
			LateFee:        lateFee,
			CleaningFee:    CleaningFee,
			MaintenanceFee: maintenanceFee,
			ReturnDate:     returnDate,
		},
		CustomerName:       details.CustomerName,
		VehicleID:          details.VehicleID,
		RentalDurationDays: rentalDuration,
		Revenue:            details.EstimatedCost,
		NewMileage:         newMileage,
		Maintenance:        maintenance,
	}

	if _, err := s.repo.SaveReturn(ctx, in); err != nil {
		if errors.Is(err, ErrAlreadyReturned) {
			return nil, common.NewConflictError(fmt.Sprintf("booking %d was already returned", req.BookingID))
		}
		logger.WithContext(ctx).Error("failed to save return", zap.Error(err))
		return nil, common.NewInternalServerError("failed to process return")
	}

	logger.Info("Return processed",
		zap.Int64("booking_id", details.BookingID),
		zap.String("vehicle_id", details.VehicleID),
		zap.Int64("actual_km", req.ActualKM),
		zap.Float64("late_fee", lateFee),
		zap.Bool("maintenance_scheduled", maintenance != nil),
	)

	return &ReturnSummary{
		BookingID:            details.BookingID,
		CustomerName:         details.CustomerName,
		VehicleID:            details.VehicleID,
		ReturnDate:           returnDate,
		ActualKM:             req.ActualKM,
		LateDays:             lateDays,
		LateFee:              lateFee,
		CleaningFee:          CleaningFee,
		MaintenanceFee:       maintenanceFee,
		TotalAdditional:      lateFee + CleaningFee + maintenanceFee,
		MaintenanceScheduled: maintenance != nil,
		Revenue:              details.EstimatedCost,
		RentalDurationDays:   rentalDuration,
	}, nil
}

// ViewReturns returns all processed returns in store order
func (s *Service) ViewReturns(ctx context.Context) ([]*Return, error) {
	results, err := s.repo.ListReturns(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("failed to list returns", zap.Error(err))
		return nil, common.NewInternalServerError("failed to list returns")
	}
	return results, nil
}

// daysBetween returns the number of calendar days from a to b. Both values are
// date-only (midnight) timestamps.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
