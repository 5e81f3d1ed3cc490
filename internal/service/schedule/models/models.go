package models

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// DayScheduleResponse рабочие часы на один день недели
// Для закрытого дня OpensAt/ClosesAt не передаются
type DayScheduleResponse struct {
	Weekday  int              `json:"weekday"`
	Name     string           `json:"name"`
	Open     bool             `json:"open"`
	OpensAt  *types.TimeOfDay `json:"opensAt,omitempty"`
	ClosesAt *types.TimeOfDay `json:"closesAt,omitempty"`
}

// WeeklyScheduleResponse расписание барбершопа на неделю вместе с параметрами сетки слотов
type WeeklyScheduleResponse struct {
	ShopID              int64                 `json:"shopId"`
	SlotIntervalMinutes int                   `json:"slotIntervalMinutes"`
	Timezone            string                `json:"timezone"`
	Days                []DayScheduleResponse `json:"days"`
}

// ToDayScheduleResponse конвертирует рабочее окно в ответ. window = nil означает отсутствие строки расписания.
func ToDayScheduleResponse(weekday domain.Weekday, window *domain.OperatingWindow) DayScheduleResponse {
	day := DayScheduleResponse{
		Weekday: int(weekday),
		Name:    weekday.String(),
	}

	if window == nil || !window.DayActive {
		return day
	}

	opensAt, closesAt := window.OpensAt, window.ClosesAt
	day.Open = true
	day.OpensAt = &opensAt
	day.ClosesAt = &closesAt

	return day
}
