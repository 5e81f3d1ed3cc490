package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ScheduleRepository интерфейс репозитория недельного расписания
type ScheduleRepository interface {
	// GetDaySchedule получает рабочие часы барбершопа на день недели
	GetDaySchedule(ctx context.Context, shopID int64, weekday domain.Weekday) (*domain.OperatingWindow, error)
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// GetByBarberAndDate получает активные записи мастера на дату
	GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Booking, error)
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetDuration(ctx context.Context, shopID, serviceID int64) (int, error)
}

// BarberRepository интерфейс репозитория мастеров
type BarberRepository interface {
	// GetLunchBreak возвращает nil, если перерыв не задан
	GetLunchBreak(ctx context.Context, shopID, barberID int64) (*domain.LunchBreak, error)
}

// Metrics счетчики результатов расчета доступности
type Metrics interface {
	RecordSlotRejected(reason string)
	RecordAvailabilityOutcome(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type nopMetrics struct{}

func (nopMetrics) RecordSlotRejected(string)        {}
func (nopMetrics) RecordAvailabilityOutcome(string) {}
