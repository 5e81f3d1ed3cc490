package availability

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// RejectReason код причины, по которой слот отброшен фильтром
type RejectReason string

const (
	ReasonAfterClose     RejectReason = "after_close"
	ReasonBookingOverlap RejectReason = "booking_overlap"
	ReasonLunchBreak     RejectReason = "lunch_break"
	ReasonInPast         RejectReason = "in_past"
)

// Observer получает событие на каждый отброшенный слот.
// Фильтр остаётся чистым: наблюдатель только считает/логирует.
type Observer interface {
	SlotRejected(slot types.TimeOfDay, reason RejectReason)
}

// ObserverFunc адаптер обычной функции к Observer
type ObserverFunc func(slot types.TimeOfDay, reason RejectReason)

func (f ObserverFunc) SlotRejected(slot types.TimeOfDay, reason RejectReason) {
	f(slot, reason)
}

type nopObserver struct{}

func (nopObserver) SlotRejected(types.TimeOfDay, RejectReason) {}

// Observers объединяет нескольких наблюдателей в одного
func Observers(observers ...Observer) Observer {
	return ObserverFunc(func(slot types.TimeOfDay, reason RejectReason) {
		for _, o := range observers {
			if o != nil {
				o.SlotRejected(slot, reason)
			}
		}
	})
}
