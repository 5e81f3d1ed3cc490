package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// FilterInput неизменяемый снимок данных для одного расчёта доступности.
// Все времена уже приведены к локальному календарю барбершопа.
type FilterInput struct {
	Slots           []types.TimeOfDay
	ServiceDuration int
	Bookings        []*domain.Booking
	LunchBreak      *domain.LunchBreak
	ClosesAt        types.TimeOfDay
	Date            time.Time // запрошенная дата
	Now             time.Time // текущее локальное время; нулевое значение = проверка "в прошлом" не выполняется
}

// dayRelation положение запрошенной даты относительно сегодняшнего дня
type dayRelation int

const (
	dayFuture dayRelation = iota
	dayToday
	dayPast
)

type interval struct {
	start int
	end   int
}

// FilterAvailable оставляет только слоты, в которые услугу реально можно оказать.
// Результат - подпоследовательность входа с сохранением порядка, никогда не nil.
//
// Слот s проходит, если выполнены все условия:
//  1. s + duration <= closesAt
//  2. [s, s+duration) не пересекается ни с одной активной записью
//  3. [s, s+duration) не пересекается с обеденным перерывом
//  4. сегодня: s строго позже текущего времени; прошлые даты не проходят никогда
func FilterAvailable(in FilterInput, observer Observer) []types.TimeOfDay {
	if observer == nil {
		observer = nopObserver{}
	}

	occupied := occupiedIntervals(in.Bookings, in.ServiceDuration)
	relation, nowMinute := relationToNow(in.Date, in.Now)

	result := make([]types.TimeOfDay, 0, len(in.Slots))
	for _, slot := range in.Slots {
		if reason, ok := checkSlot(slot, in, occupied, relation, nowMinute); !ok {
			observer.SlotRejected(slot, reason)
			continue
		}
		result = append(result, slot)
	}

	return result
}

// checkSlot проверяет один слот; порядок проверок определяет код причины отказа
func checkSlot(
	slot types.TimeOfDay,
	in FilterInput,
	occupied []interval,
	relation dayRelation,
	nowMinute int,
) (RejectReason, bool) {
	service := interval{start: slot.Minutes(), end: slot.Minutes() + in.ServiceDuration}

	if service.end > in.ClosesAt.Minutes() {
		return ReasonAfterClose, false
	}

	for _, b := range occupied {
		if overlaps(service, b) {
			return ReasonBookingOverlap, false
		}
	}

	if in.LunchBreak != nil {
		lunch := interval{start: in.LunchBreak.Start.Minutes(), end: in.LunchBreak.End.Minutes()}
		if overlaps(service, lunch) {
			return ReasonLunchBreak, false
		}
	}

	switch relation {
	case dayPast:
		return ReasonInPast, false
	case dayToday:
		if service.start <= nowMinute {
			return ReasonInPast, false
		}
	}

	return "", true
}

// overlaps проверяет РЕАЛЬНОЕ пересечение полуоткрытых интервалов.
// Запись, которая заканчивается ровно в начале другой, пересечением не считается.
func overlaps(a, b interval) bool {
	return !(a.end <= b.start || a.start >= b.end)
}

// occupiedIntervals собирает интервалы подтверждённых и ожидающих записей
func occupiedIntervals(bookings []*domain.Booking, fallbackMinutes int) []interval {
	result := make([]interval, 0, len(bookings))
	for _, b := range bookings {
		if b == nil || !b.OccupiesTime() {
			continue
		}
		start, end := b.Interval(fallbackMinutes)
		result = append(result, interval{start: start.Minutes(), end: end.Minutes()})
	}
	return result
}

// relationToNow сравнивает календарные даты без перевода часовых поясов
func relationToNow(date, now time.Time) (dayRelation, int) {
	if now.IsZero() {
		return dayFuture, 0
	}

	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	dateOnly := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)

	switch {
	case dateOnly.Before(nowOnly):
		return dayPast, 0
	case dateOnly.Equal(nowOnly):
		return dayToday, types.TimeOfDayFromTime(now).Minutes()
	default:
		return dayFuture, 0
	}
}
