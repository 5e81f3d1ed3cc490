package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Причины пустого ответа
const (
	ReasonScheduleNotFound = "schedule_not_found"
	ReasonDayClosed        = "day_closed"
)

// Outcome метки результата для метрик
const (
	outcomeAvailable        = "available"
	outcomeFullyBooked      = "fully_booked"
	outcomeScheduleNotFound = ReasonScheduleNotFound
	outcomeDayClosed        = ReasonDayClosed
	outcomeError            = "error"
)

// Request модель запроса на получение доступных слотов мастера
type Request struct {
	ShopID    int64     // ID барбершопа
	BarberID  int64     // ID мастера
	ServiceID int64     // ID услуги
	Date      time.Time // Дата в календаре барбершопа (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time
	ShopID          int64
	BarberID        int64
	ServiceID       int64
	DurationMinutes int               // 0, если до длительности услуги дело не дошло
	Slots           []types.TimeOfDay // Всегда не nil
	Reason          string            // Почему список пуст без проверки слотов (schedule_not_found, day_closed)
}
