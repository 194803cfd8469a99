package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/richxcame/fleet-admin/pkg/common"
)

// MockRepository is an in-package mock for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListVehicleServiceState(ctx context.Context) ([]*VehicleServiceState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*VehicleServiceState), args.Error(1)
}

func (m *MockRepository) RecordSweep(ctx context.Context, entries []*LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockRepository) SetVehicleAvailable(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

func (m *MockRepository) ListLog(ctx context.Context) ([]*LogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*LogEntry), args.Error(1)
}

func newTestService(repo RepositoryInterface) *Service {
	s := NewService(repo)
	s.now = func() time.Time {
		return time.Date(2025, 5, 1, 15, 30, 0, 0, time.UTC)
	}
	return s
}

func TestScheduleMaintenance_SweepsVehiclesOverThreshold(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	states := []*VehicleServiceState{
		{VehicleID: "V001", Mileage: 12000, MaintCostPerKM: 0.10, LastServiceMileage: 0},
		{VehicleID: "V002", Mileage: 4000, MaintCostPerKM: 0.12, LastServiceMileage: 0},
		{VehicleID: "V003", Mileage: 21000, MaintCostPerKM: 0.20, LastServiceMileage: 10000},
	}
	mockRepo.On("ListVehicleServiceState", ctx).Return(states, nil)
	mockRepo.On("RecordSweep", ctx, mock.AnythingOfType("[]*maintenance.LogEntry")).Return(nil)

	events, err := service.ScheduleMaintenance(ctx, DefaultThresholdKM)

	require.NoError(t, err)
	require.Len(t, events, 2)

	today := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "V001", events[0].VehicleID)
	assert.Equal(t, int64(12000), events[0].MileageAtService)
	assert.InDelta(t, 1200.0, events[0].Cost, 0.0001)
	assert.Equal(t, today, events[0].ServiceDate)

	// V003 is measured from its last service, not from zero
	assert.Equal(t, "V003", events[1].VehicleID)
	assert.Equal(t, int64(21000), events[1].MileageAtService)
	assert.InDelta(t, 2200.0, events[1].Cost, 0.0001)

	entries := mockRepo.Calls[1].Arguments.Get(1).([]*LogEntry)
	require.Len(t, entries, 2)
	assert.Equal(t, "V001", entries[0].VehicleID)
	assert.Equal(t, "V003", entries[1].VehicleID)
	mockRepo.AssertExpectations(t)
}

func TestScheduleMaintenance_SecondSweepIsIdempotent(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	// After a sweep the last service mileage equals the odometer, so the next
	// sweep finds nothing to do
	states := []*VehicleServiceState{
		{VehicleID: "V001", Mileage: 12000, MaintCostPerKM: 0.10, LastServiceMileage: 12000},
	}
	mockRepo.On("ListVehicleServiceState", ctx).Return(states, nil)
	mockRepo.On("RecordSweep", ctx, mock.AnythingOfType("[]*maintenance.LogEntry")).Return(nil)

	events, err := service.ScheduleMaintenance(ctx, DefaultThresholdKM)

	require.NoError(t, err)
	assert.Empty(t, events)

	entries := mockRepo.Calls[1].Arguments.Get(1).([]*LogEntry)
	assert.Empty(t, entries)
}

func TestScheduleMaintenance_NonPositiveThresholdUsesDefault(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	// 9999 km is under the 10000 default
	states := []*VehicleServiceState{
		{VehicleID: "V001", Mileage: 9999, MaintCostPerKM: 0.10, LastServiceMileage: 0},
	}
	mockRepo.On("ListVehicleServiceState", ctx).Return(states, nil)
	mockRepo.On("RecordSweep", ctx, mock.AnythingOfType("[]*maintenance.LogEntry")).Return(nil)

	events, err := service.ScheduleMaintenance(ctx, 0)

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestScheduleMaintenance_CustomThreshold(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	states := []*VehicleServiceState{
		{VehicleID: "V001", Mileage: 6000, MaintCostPerKM: 0.10, LastServiceMileage: 0},
	}
	mockRepo.On("ListVehicleServiceState", ctx).Return(states, nil)
	mockRepo.On("RecordSweep", ctx, mock.AnythingOfType("[]*maintenance.LogEntry")).Return(nil)

	events, err := service.ScheduleMaintenance(ctx, 5000)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "V001", events[0].VehicleID)
}

func TestScheduleMaintenance_RepositoryFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ListVehicleServiceState", ctx).Return(nil, errors.New("connection refused"))

	_, err := service.ScheduleMaintenance(ctx, DefaultThresholdKM)

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindInternal, appErr.Kind)
}

func TestCompleteMaintenance(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	mockRepo.On("SetVehicleAvailable", ctx, "V001").Return(nil)

	err := service.CompleteMaintenance(ctx, " V001 ")

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCompleteMaintenance_VehicleNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	mockRepo.On("SetVehicleAvailable", ctx, "V999").Return(ErrVehicleNotFound)

	err := service.CompleteMaintenance(ctx, "V999")

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindNotFound, appErr.Kind)
}

func TestViewLog(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)
	ctx := context.Background()

	expected := []*LogEntry{
		{MaintID: 1, VehicleID: "V001", MileageAtService: 12000, Cost: 1200.0},
	}
	mockRepo.On("ListLog", ctx).Return(expected, nil)

	entries, err := service.ViewLog(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}
