package fleet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/richxcame/fleet-admin/pkg/common"
	"github.com/richxcame/fleet-admin/pkg/logger"
	"go.uber.org/zap"
)

// Service handles fleet business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new fleet service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// ViewInventory returns all vehicles in the fleet
func (s *Service) ViewInventory(ctx context.Context) ([]*Vehicle, error) {
	vehicles, err := s.repo.ListVehicles(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("failed to list vehicles", zap.Error(err))
		return nil, common.NewInternalServerError("failed to list vehicles")
	}
	return vehicles, nil
}

// GetVehicle returns a single vehicle by id
func (s *Service) GetVehicle(ctx context.Context, vehicleID string) (*Vehicle, error) {
	vehicle, err := s.repo.GetVehicle(ctx, strings.TrimSpace(vehicleID))
	if err != nil {
		if errors.Is(err, ErrVehicleNotFound) {
			return nil, common.NewNotFoundError(fmt.Sprintf("vehicle %q not found", vehicleID), err)
		}
		return nil, common.NewInternalServerError("failed to get vehicle")
	}
	return vehicle, nil
}

// AddVehicle registers a new vehicle with the next free V### id and marks it available
func (s *Service) AddVehicle(ctx context.Context, req *AddVehicleRequest) (*Vehicle, error) {
	brandModel := strings.TrimSpace(req.BrandModel)
	if brandModel == "" {
		return nil, common.NewBadRequestError("brand_model is required", nil)
	}
	if req.Mileage < 0 {
		return nil, common.NewBadRequestError("mileage cannot be negative", nil)
	}
	if req.DailyPrice < 0 {
		return nil, common.NewBadRequestError("daily_price cannot be negative", nil)
	}
	if req.MaintCostPerKM < 0 {
		return nil, common.NewBadRequestError("maint_cost_per_km cannot be negative", nil)
	}

	vehicleID, err := s.GenerateVehicleID(ctx)
	if err != nil {
		return nil, common.NewInternalServerError("failed to generate vehicle id")
	}

	vehicle := &Vehicle{
		VehicleID:      vehicleID,
		BrandModel:     brandModel,
		Mileage:        req.Mileage,
		DailyPrice:     req.DailyPrice,
		MaintCostPerKM: req.MaintCostPerKM,
		Available:      true,
	}

	if err := s.repo.CreateVehicle(ctx, vehicle); err != nil {
		logger.WithContext(ctx).Error("failed to create vehicle", zap.Error(err))
		return nil, common.NewInternalServerError("failed to create vehicle")
	}

	logger.Info("Vehicle added to fleet",
		zap.String("vehicle_id", vehicle.VehicleID),
		zap.String("brand_model", vehicle.BrandModel),
	)

	return vehicle, nil
}

// GenerateVehicleID produces the next unused vehicle id of the form V###
func (s *Service) GenerateVehicleID(ctx context.Context) (string, error) {
	max, err := s.repo.MaxVehicleNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to generate vehicle id: %w", err)
	}
	return fmt.Sprintf("V%03d", max+1), nil
}

// UpdateAvailability marks a vehicle as available or unavailable
func (s *Service) UpdateAvailability(ctx context.Context, vehicleID string, available bool) error {
	err := s.repo.SetAvailability(ctx, strings.TrimSpace(vehicleID), available)
	if err != nil {
		if errors.Is(err, ErrVehicleNotFound) {
			return common.NewNotFoundError(fmt.Sprintf("vehicle %q not found", vehicleID), err)
		}
		logger.WithContext(ctx).Error("failed to update availability", zap.Error(err))
		return common.NewInternalServerError("failed to update availability")
	}

	logger.Info("Vehicle availability updated",
		zap.String("vehicle_id", vehicleID),
		zap.Bool("available", available),
	)

	return nil
}
