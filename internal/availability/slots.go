package availability

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// GenerateSlots перечисляет кандидатов на начало записи: opensAt, opensAt+interval, ...
// строго раньше closesAt. Для закрытого дня возвращает пустой список, а не ошибку.
func GenerateSlots(window domain.OperatingWindow, intervalMinutes int) ([]types.TimeOfDay, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot interval must be positive, got %d", ErrInvalidConfig, intervalMinutes)
	}

	if !window.DayActive {
		return []types.TimeOfDay{}, nil
	}

	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	slots := make([]types.TimeOfDay, 0, (window.ClosesAt.Minutes()-window.OpensAt.Minutes())/intervalMinutes+1)
	for current := window.OpensAt; current.IsBefore(window.ClosesAt); current = current.Add(intervalMinutes) {
		slots = append(slots, current)
	}

	return slots, nil
}
