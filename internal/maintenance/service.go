package maintenance

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

// Service handles maintenance scheduling business logic
type Service struct {
	repo RepositoryInterface
	now  func() time.Time
}

// NewService creates a new maintenance service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo, now: time.Now}
}

// ScheduleMaintenance sweeps the whole fleet: every vehicle whose distance
// since last service has reached the threshold gets a maintenance log entry
// dated today and is demoted to unavailable until CompleteMaintenance is
// called. Running the sweep again without intervening mileage produces no new
// entries, since the threshold is measured from the last logged service.
func (s *Service) ScheduleMaintenance(ctx context.Context, thresholdKM int64) ([]*Event, error) {
	if thresholdKM <= 0 {
		thresholdKM = DefaultThresholdKM
	}

	states, err := s.repo.ListVehicleServiceState(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("failed to list vehicle service state", zap.Error(err))
		return nil, common.NewInternalServerError("failed to schedule maintenance")
	}

	today := s.today()

	entries := make([]*LogEntry, 0)
	events := make([]*Event, 0)
	for _, st := range states {
		kmSince := st.Mileage - st.LastServiceMileage
		if kmSince < thresholdKM {
			continue
		}

		cost := float64(kmSince) * st.MaintCostPerKM
		entries = append(entries, &LogEntry{
			VehicleID:        st.VehicleID,
			MileageAtService: st.Mileage,
			Cost:             cost,
			ServiceDate:      today,
		})
		events = append(events, &Event{
			VehicleID:        st.VehicleID,
			MileageAtService: st.Mileage,
			Cost:             cost,
			ServiceDate:      today,
		})
	}

	if err := s.repo.RecordSweep(ctx, entries); err != nil {
		logger.WithContext(ctx).Error("failed to record maintenance sweep", zap.Error(err))
		return nil, common.NewInternalServerError("failed to schedule maintenance")
	}

	logger.Info("Maintenance sweep completed",
		zap.Int64("threshold_km", thresholdKM),
		zap.Int("vehicles_scheduled", len(events)),
	)

	return events, nil
}

// CompleteMaintenance marks a serviced vehicle available again. There is no
// check that a maintenance entry is actually open for the vehicle.
func (s *Service) CompleteMaintenance(ctx context.Context, vehicleID string) error {
	err := s.repo.SetVehicleAvailable(ctx, strings.TrimSpace(vehicleID))
	if err != nil {
		if errors.Is(err, ErrVehicleNotFound) {
			return common.NewNotFoundError(fmt.Sprintf("vehicle %q not found", vehicleID), err)
		}
		logger.WithContext(ctx).Error("failed to complete maintenance", zap.Error(err))
		return common.NewInternalServerError("failed to complete maintenance")
	}

	logger.Info("Maintenance completed", zap.String("vehicle_id", vehicleID))
	return nil
}

// ViewLog returns the full maintenance history
func (s *Service) ViewLog(ctx context.Context) ([]*LogEntry, error) {
	entries, err := s.repo.ListLog(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("failed to list maintenance log", zap.Error(err))
		return nil, common.NewInternalServerError("failed to list maintenance log")
	}
	return entries, nil
}

// today returns the current date truncated to midnight UTC, matching the
// date-only representation used throughout the store.
func (s *Service) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
