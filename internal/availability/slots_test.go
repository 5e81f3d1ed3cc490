package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func window(open, close string) domain.OperatingWindow {
	return domain.OperatingWindow{
		DayActive: true,
		OpensAt:   types.MustParseTimeOfDay(open),
		ClosesAt:  types.MustParseTimeOfDay(close),
	}
}

func formatSlots(slots []types.TimeOfDay) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.String()
	}
	return result
}

func TestGenerateSlots_FullDay(t *testing.T) {
	slots, err := GenerateSlots(window("09:00", "18:00"), 30)
	require.NoError(t, err)

	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0].String())
	assert.Equal(t, "17:30", slots[len(slots)-1].String())
}

func TestGenerateSlots_CloseIsNotAStart(t *testing.T) {
	slots, err := GenerateSlots(window("09:00", "10:00"), 20)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:20", "09:40"}, formatSlots(slots))
}

func TestGenerateSlots_UnevenInterval(t *testing.T) {
	slots, err := GenerateSlots(window("09:00", "10:00"), 25)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:25", "09:50"}, formatSlots(slots))
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	slots, err := GenerateSlots(domain.OperatingWindow{DayActive: false}, 30)
	require.NoError(t, err)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlots_InvalidInterval(t *testing.T) {
	for _, interval := range []int{0, -15} {
		_, err := GenerateSlots(window("09:00", "18:00"), interval)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	}
}

func TestGenerateSlots_InvalidWindow(t *testing.T) {
	_, err := GenerateSlots(window("18:00", "09:00"), 30)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGenerateSlots_Restartable(t *testing.T) {
	w := window("08:00", "12:00")

	first, err := GenerateSlots(w, 15)
	require.NoError(t, err)
	second, err := GenerateSlots(w, 15)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
