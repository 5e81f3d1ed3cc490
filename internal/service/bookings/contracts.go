package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Booking, error)
}

// BarberRepository интерфейс репозитория мастеров
// GetLunchBreak заодно проверяет, что мастер работает в барбершопе
type BarberRepository interface {
	GetLunchBreak(ctx context.Context, shopID, barberID int64) (*domain.LunchBreak, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
