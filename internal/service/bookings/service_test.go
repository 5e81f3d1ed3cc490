package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	barberRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, barberID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockBarberRepository struct {
	mock.Mock
}

func (m *MockBarberRepository) GetLunchBreak(ctx context.Context, shopID, barberID int64) (*domain.LunchBreak, error) {
	args := m.Called(ctx, shopID, barberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LunchBreak), args.Error(1)
}

var agendaDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func tod(s string) types.TimeOfDay {
	return types.MustParseTimeOfDay(s)
}

func TestGetBarberAgenda_Success(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	barbers := &MockBarberRepository{}

	barbers.On("GetLunchBreak", mock.Anything, int64(1), int64(7)).
		Return(&domain.LunchBreak{Start: tod("12:00"), End: tod("13:00")}, nil)
	bookingRepo.On("GetByBarberAndDate", mock.Anything, int64(7), agendaDate).Return([]*domain.Booking{
		{ID: 3, BarberID: 7, StartAt: tod("15:00"), EndAt: tod("15:30"), Status: domain.StatusConfirmed},
		{ID: 1, BarberID: 7, StartAt: tod("09:00"), Status: domain.StatusPending},
		{ID: 2, BarberID: 7, StartAt: tod("10:00"), EndAt: tod("10:30"), Status: domain.StatusCanceled},
	}, nil)

	svc := NewService(bookingRepo, barbers, logger.Nop())
	result, err := svc.GetBarberAgenda(context.Background(), &models.GetBarberAgendaRequest{
		ShopID: 1, BarberID: 7, Date: agendaDate,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", result.Date)
	require.Len(t, result.Bookings, 2)

	assert.Equal(t, int64(1), result.Bookings[0].ID)
	assert.Nil(t, result.Bookings[0].End)
	assert.Equal(t, "pending", result.Bookings[0].Status)

	assert.Equal(t, int64(3), result.Bookings[1].ID)
	require.NotNil(t, result.Bookings[1].End)
	assert.Equal(t, "15:30", result.Bookings[1].End.String())

	require.NotNil(t, result.LunchBreak)
	assert.Equal(t, "12:00", result.LunchBreak.Start.String())
}

func TestGetBarberAgenda_EmptyDay(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	barbers := &MockBarberRepository{}

	barbers.On("GetLunchBreak", mock.Anything, int64(1), int64(7)).Return(nil, nil)
	bookingRepo.On("GetByBarberAndDate", mock.Anything, int64(7), agendaDate).Return([]*domain.Booking{}, nil)

	result, err := NewService(bookingRepo, barbers, logger.Nop()).GetBarberAgenda(context.Background(),
		&models.GetBarberAgendaRequest{ShopID: 1, BarberID: 7, Date: agendaDate})
	require.NoError(t, err)

	assert.NotNil(t, result.Bookings)
	assert.Empty(t, result.Bookings)
	assert.Nil(t, result.LunchBreak)
}

func TestGetBarberAgenda_BarberNotFound(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	barbers := &MockBarberRepository{}

	barbers.On("GetLunchBreak", mock.Anything, int64(1), int64(99)).Return(nil, barberRepo.ErrBarberNotFound)

	_, err := NewService(bookingRepo, barbers, logger.Nop()).GetBarberAgenda(context.Background(),
		&models.GetBarberAgendaRequest{ShopID: 1, BarberID: 99, Date: agendaDate})
	assert.ErrorIs(t, err, ErrBarberNotFound)
	bookingRepo.AssertNotCalled(t, "GetByBarberAndDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetBarberAgenda_RepositoryErrors(t *testing.T) {
	t.Run("barber lookup", func(t *testing.T) {
		barbers := &MockBarberRepository{}
		barbers.On("GetLunchBreak", mock.Anything, int64(1), int64(7)).Return(nil, errors.New("timeout"))

		_, err := NewService(&MockBookingRepository{}, barbers, logger.Nop()).GetBarberAgenda(context.Background(),
			&models.GetBarberAgendaRequest{ShopID: 1, BarberID: 7, Date: agendaDate})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("bookings", func(t *testing.T) {
		bookingRepo := &MockBookingRepository{}
		barbers := &MockBarberRepository{}
		barbers.On("GetLunchBreak", mock.Anything, int64(1), int64(7)).Return(nil, nil)
		bookingRepo.On("GetByBarberAndDate", mock.Anything, int64(7), agendaDate).Return(nil, errors.New("timeout"))

		_, err := NewService(bookingRepo, barbers, logger.Nop()).GetBarberAgenda(context.Background(),
			&models.GetBarberAgendaRequest{ShopID: 1, BarberID: 7, Date: agendaDate})
		assert.ErrorIs(t, err, ErrInternal)
		assert.Contains(t, err.Error(), "timeout")
	})
}

func TestGetBarberAgenda_InvalidInput(t *testing.T) {
	svc := NewService(&MockBookingRepository{}, &MockBarberRepository{}, logger.Nop())

	_, err := svc.GetBarberAgenda(context.Background(), &models.GetBarberAgendaRequest{ShopID: 1, BarberID: 0, Date: agendaDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetBarberAgenda(context.Background(), &models.GetBarberAgendaRequest{ShopID: 1, BarberID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
