package get_available_slots

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var reasonOrder = []availability.RejectReason{
	availability.ReasonAfterClose,
	availability.ReasonBookingOverlap,
	availability.ReasonLunchBreak,
	availability.ReasonInPast,
}

// rejectionCounter считает отброшенные слоты по причинам и передает их в метрики
type rejectionCounter struct {
	metrics Metrics
	counts  map[availability.RejectReason]int
}

func newRejectionCounter(metrics Metrics) *rejectionCounter {
	return &rejectionCounter{
		metrics: metrics,
		counts:  make(map[availability.RejectReason]int, len(reasonOrder)),
	}
}

func (c *rejectionCounter) SlotRejected(_ types.TimeOfDay, reason availability.RejectReason) {
	c.counts[reason]++
	c.metrics.RecordSlotRejected(string(reason))
}

// newDebugObserver пишет каждый отброшенный слот в debug-лог
func newDebugObserver(logger Logger, barberID int64) availability.Observer {
	return availability.ObserverFunc(func(slot types.TimeOfDay, reason availability.RejectReason) {
		logger.Debug("GetAvailableSlots: barber=%d slot %s rejected: %s", barberID, slot, reason)
	})
}

// String сводка для лога, например "after_close=1 booking_overlap=2"
func (c *rejectionCounter) String() string {
	parts := make([]string, 0, len(reasonOrder))
	for _, reason := range reasonOrder {
		if n := c.counts[reason]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", reason, n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
