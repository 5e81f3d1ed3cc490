package domain

import (
	"errors"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ErrInvalidWindow возвращается, когда у рабочего дня время открытия не раньше закрытия
var ErrInvalidWindow = errors.New("operating window: opens_at must be before closes_at")

// OperatingWindow рабочие часы барбершопа на один день недели
// Если DayActive = false, OpensAt/ClosesAt не имеют смысла и не используются
type OperatingWindow struct {
	DayActive bool
	OpensAt   types.TimeOfDay
	ClosesAt  types.TimeOfDay
}

// Validate проверяет инвариант активного дня
func (w *OperatingWindow) Validate() error {
	if !w.DayActive {
		return nil
	}
	if !w.OpensAt.IsBefore(w.ClosesAt) {
		return ErrInvalidWindow
	}
	return nil
}
