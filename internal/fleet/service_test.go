package fleet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/richxcame/fleet-admin/pkg/common"
)

// MockRepository is an in-package mock for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListVehicles(ctx context.Context) ([]*Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Vehicle), args.Error(1)
}

func (m *MockRepository) GetVehicle(ctx context.Context, vehicleID string) (*Vehicle, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Vehicle), args.Error(1)
}

func (m *MockRepository) CreateVehicle(ctx context.Context, vehicle *Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockRepository) SetAvailability(ctx context.Context, vehicleID string, available bool) error {
	args := m.Called(ctx, vehicleID, available)
	return args.Error(0)
}

func (m *MockRepository) MaxVehicleNumber(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Get(0).(int), args.Error(1)
}

func TestGenerateVehicleID(t *testing.T) {
	tests := []struct {
		name string
		max  int
		want string
	}{
		{name: "empty fleet", max: 0, want: "V001"},
		{name: "single digit", max: 9, want: "V010"},
		{name: "triple digit", max: 123, want: "V124"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo)

			mockRepo.On("MaxVehicleNumber", mock.Anything).Return(tt.max, nil)

			id, err := service.GenerateVehicleID(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestAddVehicle(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("MaxVehicleNumber", ctx).Return(2, nil)
	mockRepo.On("CreateVehicle", ctx, mock.AnythingOfType("*fleet.Vehicle")).Return(nil)

	vehicle, err := service.AddVehicle(ctx, &AddVehicleRequest{
		BrandModel:     "  Toyota Corolla  ",
		Mileage:        0,
		DailyPrice:     30.0,
		MaintCostPerKM: 0.10,
	})

	require.NoError(t, err)
	assert.Equal(t, "V003", vehicle.VehicleID)
	assert.Equal(t, "Toyota Corolla", vehicle.BrandModel)
	assert.True(t, vehicle.Available)
	mockRepo.AssertExpectations(t)
}

func TestAddVehicle_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  AddVehicleRequest
	}{
		{
			name: "blank brand model",
			req:  AddVehicleRequest{BrandModel: "  ", DailyPrice: 30.0},
		},
		{
			name: "negative mileage",
			req:  AddVehicleRequest{BrandModel: "Toyota Corolla", Mileage: -1},
		},
		{
			name: "negative daily price",
			req:  AddVehicleRequest{BrandModel: "Toyota Corolla", DailyPrice: -5},
		},
		{
			name: "negative maintenance cost",
			req:  AddVehicleRequest{BrandModel: "Toyota Corolla", MaintCostPerKM: -0.1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo)

			_, err := service.AddVehicle(context.Background(), &tt.req)

			var appErr *common.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, common.KindInvalidInput, appErr.Kind)
			mockRepo.AssertNotCalled(t, "CreateVehicle", mock.Anything, mock.Anything)
		})
	}
}

func TestViewInventory(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	expected := []*Vehicle{
		{VehicleID: "V001", BrandModel: "Toyota Corolla", Available: true},
		{VehicleID: "V002", BrandModel: "Honda Civic", Available: false},
	}
	mockRepo.On("ListVehicles", ctx).Return(expected, nil)

	vehicles, err := service.ViewInventory(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, vehicles)
}

func TestGetVehicle_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetVehicle", ctx, "V999").Return(nil, ErrVehicleNotFound)

	_, err := service.GetVehicle(ctx, "V999")

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindNotFound, appErr.Kind)
}

func TestUpdateAvailability(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("SetAvailability", ctx, "V001", false).Return(nil)

	err := service.UpdateAvailability(ctx, "V001", false)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdateAvailability_RepositoryFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("SetAvailability", ctx, "V001", true).Return(errors.New("connection refused"))

	err := service.UpdateAvailability(ctx, "V001", true)

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindInternal, appErr.Kind)
}
