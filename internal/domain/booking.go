package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// BookingStatus represents the status of an appointment
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
)

// Booking represents an existing appointment of a barber on one calendar day (shop-local)
type Booking struct {
	ID       int64
	BarberID int64
	Date     time.Time
	StartAt  types.TimeOfDay
	EndAt    types.TimeOfDay // может быть не заполнен, см. Interval
	Status   BookingStatus
}

// OccupiesTime returns true if the booking blocks the barber's time.
// Отменённые записи никогда не занимают слот.
func (b *Booking) OccupiesTime() bool {
	return b.Status == StatusConfirmed || b.Status == StatusPending
}

// Interval возвращает занятый интервал [start, end).
// Если конец записи не задан или не позже начала, длительность берётся из fallbackMinutes.
func (b *Booking) Interval(fallbackMinutes int) (types.TimeOfDay, types.TimeOfDay) {
	if b.EndAt.IsAfter(b.StartAt) {
		return b.StartAt, b.EndAt
	}
	return b.StartAt, b.StartAt.Add(fallbackMinutes)
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	switch status {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return status, true
	default:
		return "", false
	}
}
