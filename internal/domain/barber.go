package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Barber мастер барбершопа
type Barber struct {
	ID         int64
	ShopID     int64
	Name       string
	Active     bool
	LunchBreak *LunchBreak // nil = без перерыва
}

// LunchBreak обеденный перерыв мастера [Start, End)
type LunchBreak struct {
	Start types.TimeOfDay
	End   types.TimeOfDay
}
