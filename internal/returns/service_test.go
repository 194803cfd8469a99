package returns

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

func (m *MockRepository) GetBookingForReturn(ctx context.Context, bookingID int64) (*BookingDetails, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BookingDetails), args.Error(1)
}

func (m *MockRepository) SaveReturn(ctx context.Context, in *SaveReturnInput) (*Return, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Return), args.Error(1)
}

func (m *MockRepository) ListReturns(ctx context.Context) ([]*Return, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Return), args.Error(1)
}

// aliceBooking is a 5-day Corolla booking from 2025-04-20 to 2025-04-25
func aliceBooking() *BookingDetails {
	return &BookingDetails{
		BookingID:          1,
		CustomerName:       "Alice",
		VehicleID:          "V001",
		StartDate:          time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC),
		EstimatedKM:        200,
		EstimatedCost:      170.0,
		VehicleMileage:     0,
		MaintCostPerKM:     0.10,
		LastServiceMileage: 0,
		Returned:           false,
	}
}

func TestProcessReturn_LateReturnFees(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetBookingForReturn", ctx, int64(1)).Return(aliceBooking(), nil)
	mockRepo.On("SaveReturn", ctx, mock.AnythingOfType("*returns.SaveReturnInput")).
		Return(&Return{ReturnID: 1}, nil)

	// Two days past the 2025-04-25 end date
	summary, err := service.ProcessReturn(ctx, &ProcessReturnRequest{
		BookingID:  1,
		ActualKM:   250,
		ReturnDate: "2025-04-27",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, summary.LateDays)
	assert.Equal(t, 20.0, summary.LateFee)
	assert.Equal(t, 20.0, summary.CleaningFee)
	assert.Equal(t, 25.0, summary.MaintenanceFee) // 250 km * 0.10
	assert.Equal(t, 65.0, summary.TotalAdditional)
	assert.Equal(t, 170.0, summary.Revenue) // booking-time estimate, never recomputed
	assert.Equal(t, 5, summary.RentalDurationDays)
	assert.False(t, summary.MaintenanceScheduled)

	saved := mockRepo.Calls[1].Arguments.Get(1).(*SaveReturnInput)
	assert.Equal(t, int64(250), saved.NewMileage)
	assert.Equal(t, 170.0, saved.Revenue)
	assert.Nil(t, saved.Maintenance)
	mockRepo.AssertExpectations(t)
}

func TestProcessReturn_OnTimeNoLateFee(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetBookingForReturn", ctx, int64(1)).Return(aliceBooking(), nil)
	mockRepo.On("SaveReturn", ctx, mock.AnythingOfType("*returns.SaveReturnInput")).
		Return(&Return{ReturnID: 1}, nil)

	summary, err := service.ProcessReturn(ctx, &ProcessReturnRequest{
		BookingID:  1,
		ActualKM:   180,
		ReturnDate: "2025-04-25",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, summary.LateDays)
	assert.Equal(t, 0.0, summary.LateFee)
	assert.Equal(t, 20.0, summary.CleaningFee)
}

func TestProcessReturn_EarlyReturnNoNegativeFee(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetBookingForReturn", ctx, int64(1)).Return(aliceBooking(), nil)
	mockRepo.On("SaveReturn", ctx, mock.AnythingOfType("*returns.SaveReturnInput")).
		Return(&Return{ReturnID: 1}, nil)

	summary, err := service.ProcessReturn(ctx, &ProcessReturnRequest{
		BookingID:  1,
		ActualKM:   100,
		ReturnDate: "2025-04-23",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, summary.LateDays)
	assert.Equal(t, 0.0, summary.LateFee)
	assert.Equal(t, 170.0, summary.Revenue)
}

func TestProcessReturn_CrossesServiceThreshold(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	details := aliceBooking()
	details.VehicleMileage = 9900
	details.LastServiceMileage = 0
	mockRepo.On("GetBookingForReturn", ctx, int64(1)).Return(details, nil)
	mockRepo.On("SaveReturn", ctx, mock.AnythingOfType("*returns.SaveReturnInput")).
		Return(&Return{ReturnID: 1}, nil)

	// 9900 + 250 = 10150 km since the last service, over the 10000 threshold
	summary, err := service.ProcessReturn(ctx, &ProcessReturnRequest{
		BookingID:  1,
		ActualKM:   250,
		ReturnDate: "2025-04-25",
	})

	require.NoError(t, err)
	assert.True(t, summary.MaintenanceScheduled)

	saved := mockRepo.Calls[1].Arguments.Get(1).(*SaveReturnInput)
	require.NotNil(t, saved.Maintenance)
	assert.Equal(t, "V001", saved.Maintenance.VehicleID)
	assert.Equal(t, int64(10150), saved.Maintenance.MileageAtService)
	assert.InDelta(t, 1015.0, saved.Maintenance.Cost, 0.0001) // 10150 km * 0.10
	assert.Equal(t, time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC), saved.Maintenance.ServiceDate)
}

func TestProcessReturn_ThresholdMeasuredFromLastService(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	// Serviced at 10000 km, so 10500 + 300 is only 800 km since service
	details := aliceBooking()
	details.VehicleMileage = 10500
	details.LastServiceMileage = 10000
	mockRepo.On("GetBookingForReturn", ctx, int64(1)).Return(details, nil)
	mockRepo.On("SaveReturn", ctx, mock.AnythingOfType("*returns.SaveReturnInput")).
		Return(&Return{ReturnID: 1}, nil)

	summary, err := service.ProcessReturn(ctx, &ProcessReturnRequest{
		BookingID:  1,
		ActualKM:   300,
		ReturnDate: "2025-04-25",
	})

	require.NoError(t, err)
	assert.False(t, summary.MaintenanceScheduled)

	saved := mockRepo.Calls[1].Arguments.Get(1).(*SaveReturnInput)
	assert.Nil(t, saved.Maintenance)
	assert.Equal(t, int64(10800), saved.NewMileage)
}

func TestProcessReturn_AlreadyReturned(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	details := aliceBooking()
	details.Returned = true
	mockRepo.On("GetBookingForReturn", ctx, int64(1)).Return(details, nil)

	_, err := service.ProcessReturn(ctx, &ProcessReturnRequest{
		BookingID:  1,
		ActualKM:   250,
		ReturnDate: "2025-04-27",
	})

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindConflict, appErr.Kind)
	mockRepo.AssertNotCalled(t, "SaveReturn", mock.Anything, mock.Anything)
}

func TestProcessReturn_AlreadyReturnedRace(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	// Not returned at read time, but a concurrent return commits first and the
	// in-transaction guard fires
	mockRepo.On("GetBookingForReturn", ctx, int64(1)).Return(aliceBooking(), nil)
	mockRepo.On("SaveReturn", ctx, mock.AnythingOfType("*returns.SaveReturnInput")).
		Return(nil, ErrAlreadyReturned)

	_, err := service.ProcessReturn(ctx, &ProcessReturnRequest{
		BookingID:  1,
		ActualKM:   250,
		ReturnDate: "2025-04-27",
	})

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindConflict, appErr.Kind)
}

func TestProcessReturn_BookingNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetBookingForReturn", ctx, int64(42)).Return(nil, ErrBookingNotFound)

	_, err := service.ProcessReturn(ctx, &ProcessReturnRequest{
		BookingID:  42,
		ActualKM:   250,
		ReturnDate: "2025-04-27",
	})

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindNotFound, appErr.Kind)
}

func TestProcessReturn_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  ProcessReturnRequest
	}{
		{
			name: "negative actual km",
			req:  ProcessReturnRequest{BookingID: 1, ActualKM: -10, ReturnDate: "2025-04-27"},
		},
		{
			name: "malformed return date",
			req:  ProcessReturnRequest{BookingID: 1, ActualKM: 250, ReturnDate: "27/04/2025"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo)

			_, err := service.ProcessReturn(context.Background(), &tt.req)

			var appErr *common.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, common.KindInvalidInput, appErr.Kind)
			mockRepo.AssertNotCalled(t, "GetBookingForReturn", mock.Anything, mock.Anything)
		})
	}
}

func TestViewReturns(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	expected := []*Return{{ReturnID: 1, BookingID: 1, ActualKM: 250}}
	mockRepo.On("ListReturns", ctx).Return(expected, nil)

	results, err := service.ViewReturns(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, results)
}

func TestViewReturns_RepositoryFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ListReturns", ctx).Return(nil, errors.New("connection refused"))

	_, err := service.ViewReturns(ctx)

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindInternal, appErr.Kind)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, daysBetween(a, b))
	assert.Equal(t, -5, daysBetween(b, a))
	assert.Equal(t, 0, daysBetween(a, a))
}
