package schedule

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ScheduleRepository источник расписания, которое кешируется
type ScheduleRepository interface {
	GetDaySchedule(ctx context.Context, shopID int64, weekday domain.Weekday) (*domain.OperatingWindow, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
