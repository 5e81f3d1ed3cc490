package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// GetBarberAgendaRequest запрос на получение занятости мастера на дату
type GetBarberAgendaRequest struct {
	ShopID   int64
	BarberID int64
	Date     time.Time
}

// BookingResponse занятый интервал мастера
// End не передается, если конец записи не задан
type BookingResponse struct {
	ID     int64            `json:"id"`
	Start  types.TimeOfDay  `json:"start"`
	End    *types.TimeOfDay `json:"end,omitempty"`
	Status string           `json:"status"`
}

// LunchBreakResponse обеденный перерыв мастера
type LunchBreakResponse struct {
	Start types.TimeOfDay `json:"start"`
	End   types.TimeOfDay `json:"end"`
}

// BarberAgendaResponse занятость мастера на дату
type BarberAgendaResponse struct {
	Date       string              `json:"date"`
	ShopID     int64               `json:"shopId"`
	BarberID   int64               `json:"barberId"`
	Bookings   []BookingResponse   `json:"bookings"`
	LunchBreak *LunchBreakResponse `json:"lunchBreak,omitempty"`
}

// ToBookingResponse конвертирует domain запись в ответ
func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:     b.ID,
		Start:  b.StartAt,
		Status: string(b.Status),
	}

	if b.EndAt.IsAfter(b.StartAt) {
		end := b.EndAt
		resp.End = &end
	}

	return resp
}

// ToLunchBreakResponse конвертирует перерыв в ответ, nil остается nil
func ToLunchBreakResponse(lb *domain.LunchBreak) *LunchBreakResponse {
	if lb == nil {
		return nil
	}
	return &LunchBreakResponse{Start: lb.Start, End: lb.End}
}
