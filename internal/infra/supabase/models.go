package supabase

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Строки таблиц в том виде, в котором их отдает PostgREST

type scheduleRow struct {
	OpensAt  *types.TimeOfDay `json:"opens_at"`
	ClosesAt *types.TimeOfDay `json:"closes_at"`
	IsActive bool             `json:"is_active"`
}

type appointmentRow struct {
	ID              int64            `json:"id"`
	BarberID        int64            `json:"barber_id"`
	AppointmentDate string           `json:"appointment_date"`
	StartTime       types.TimeOfDay  `json:"start_time"`
	EndTime         *types.TimeOfDay `json:"end_time"`
	Status          string           `json:"status"`
}

type barberRow struct {
	ID         int64            `json:"id"`
	ShopID     int64            `json:"shop_id"`
	Name       string           `json:"name"`
	IsActive   bool             `json:"is_active"`
	LunchStart *types.TimeOfDay `json:"lunch_start"`
	LunchEnd   *types.TimeOfDay `json:"lunch_end"`
}

type serviceRow struct {
	DurationMinutes int `json:"duration_minutes"`
}
