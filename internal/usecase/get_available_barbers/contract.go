package get_available_barbers

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// BarberRepository интерфейс репозитория мастеров
type BarberRepository interface {
	// GetActiveBarbers получает активных мастеров барбершопа в стабильном порядке
	GetActiveBarbers(ctx context.Context, shopID int64) ([]*domain.Barber, error)
}

// SlotsUseCase расчет свободных слотов одного мастера
type SlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
