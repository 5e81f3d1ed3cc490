package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
)

const (
	tableSchedules    = "shop_schedules"
	tableAppointments = "appointments"
	tableBarbers      = "barbers"
	tableServices     = "services"
)

// Store читает расписание, записи, мастеров и услуги из проекта Supabase.
// Ошибки "не найдено" совпадают с ошибками postgres-репозиториев, чтобы use case не зависел от драйвера.
type Store struct {
	client  *supa.Client
	timeout time.Duration
}

// NewClient создает клиент Supabase по URL проекта и service key
func NewClient(url, key string) (*supa.Client, error) {
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create client: %v", ErrExecute, err)
	}
	return client, nil
}

// NewStore создает хранилище. timeout ограничивает один запрос, 0 = без ограничения.
func NewStore(client *supa.Client, timeout time.Duration) *Store {
	return &Store{client: client, timeout: timeout}
}

// GetDaySchedule получает рабочие часы барбершопа на день недели
func (s *Store) GetDaySchedule(ctx context.Context, shopID int64, weekday domain.Weekday) (*domain.OperatingWindow, error) {
	var rows []scheduleRow
	err := s.fetch(ctx, "GetDaySchedule", &rows, func() ([]byte, int64, error) {
		return s.client.From(tableSchedules).
			Select("opens_at,closes_at,is_active", "", false).
			Eq("shop_id", formatID(shopID)).
			Eq("weekday", strconv.Itoa(int(weekday))).
			Execute()
	})
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, schedule.ErrScheduleNotFound
	}

	row := rows[0]
	window := &domain.OperatingWindow{DayActive: row.IsActive}
	if row.OpensAt == nil || row.ClosesAt == nil {
		window.DayActive = false
		return window, nil
	}

	window.OpensAt = *row.OpensAt
	window.ClosesAt = *row.ClosesAt

	return window, nil
}

// GetByBarberAndDate получает активные записи мастера на дату
func (s *Store) GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Booking, error) {
	var rows []appointmentRow
	err := s.fetch(ctx, "GetByBarberAndDate", &rows, func() ([]byte, int64, error) {
		return s.client.From(tableAppointments).
			Select("id,barber_id,appointment_date,start_time,end_time,status", "", false).
			Eq("barber_id", formatID(barberID)).
			Eq("appointment_date", date.Format(domain.DateFormat)).
			In("status", domain.ActiveStatusStrings()).
			Order("start_time", &postgrest.OrderOpts{Ascending: true}).
			Execute()
	})
	if err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(rows))
	for _, row := range rows {
		bookingDate, err := time.Parse(domain.DateFormat, row.AppointmentDate)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBarberAndDate - appointment id=%d date %q: %v",
				ErrDecode, row.ID, row.AppointmentDate, err)
		}

		status, ok := domain.ParseBookingStatus(row.Status)
		if !ok {
			return nil, fmt.Errorf("%w: GetByBarberAndDate - appointment id=%d has unknown status %q",
				ErrDecode, row.ID, row.Status)
		}

		booking := &domain.Booking{
			ID:       row.ID,
			BarberID: row.BarberID,
			Date:     bookingDate,
			StartAt:  row.StartTime,
			Status:   status,
		}
		if row.EndTime != nil {
			booking.EndAt = *row.EndTime
		}

		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// GetDuration получает длительность услуги в минутах
func (s *Store) GetDuration(ctx context.Context, shopID, serviceID int64) (int, error) {
	var rows []serviceRow
	err := s.fetch(ctx, "GetDuration", &rows, func() ([]byte, int64, error) {
		return s.client.From(tableServices).
			Select("duration_minutes", "", false).
			Eq("id", formatID(serviceID)).
			Eq("shop_id", formatID(shopID)).
			Execute()
	})
	if err != nil {
		return 0, err
	}

	if len(rows) == 0 {
		return 0, service.ErrServiceNotFound
	}

	return rows[0].DurationMinutes, nil
}

// GetLunchBreak получает обеденный перерыв мастера, nil если перерыв не задан
func (s *Store) GetLunchBreak(ctx context.Context, shopID, barberID int64) (*domain.LunchBreak, error) {
	var rows []barberRow
	err := s.fetch(ctx, "GetLunchBreak", &rows, func() ([]byte, int64, error) {
		return s.client.From(tableBarbers).
			Select("lunch_start,lunch_end", "", false).
			Eq("id", formatID(barberID)).
			Eq("shop_id", formatID(shopID)).
			Execute()
	})
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, barber.ErrBarberNotFound
	}

	return lunchBreakFrom(rows[0]), nil
}

// GetActiveBarbers получает активных мастеров барбершопа в порядке id
func (s *Store) GetActiveBarbers(ctx context.Context, shopID int64) ([]*domain.Barber, error) {
	var rows []barberRow
	err := s.fetch(ctx, "GetActiveBarbers", &rows, func() ([]byte, int64, error) {
		return s.client.From(tableBarbers).
			Select("id,shop_id,name,is_active,lunch_start,lunch_end", "", false).
			Eq("shop_id", formatID(shopID)).
			Eq("is_active", "true").
			Order("id", &postgrest.OrderOpts{Ascending: true}).
			Execute()
	})
	if err != nil {
		return nil, err
	}

	barbers := make([]*domain.Barber, 0, len(rows))
	for _, row := range rows {
		barbers = append(barbers, &domain.Barber{
			ID:         row.ID,
			ShopID:     row.ShopID,
			Name:       row.Name,
			Active:     row.IsActive,
			LunchBreak: lunchBreakFrom(row),
		})
	}

	return barbers, nil
}

// PingContext проверяет доступность проекта легким запросом, используется health-check'ом
func (s *Store) PingContext(ctx context.Context) error {
	var rows []scheduleRow
	return s.fetch(ctx, "PingContext", &rows, func() ([]byte, int64, error) {
		return s.client.From(tableSchedules).
			Select("is_active", "", false).
			Limit(1, "").
			Execute()
	})
}

type fetchResult struct {
	data []byte
	err  error
}

// fetch выполняет запрос PostgREST и декодирует JSON-массив строк в dest.
// Клиент не принимает context: запрос идет в отдельной горутине,
// а вызывающий получает ошибку сразу после отмены ctx или истечения timeout.
func (s *Store) fetch(ctx context.Context, op string, dest interface{}, execute func() ([]byte, int64, error)) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrExecute, op, err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	done := make(chan fetchResult, 1)
	go func() {
		data, _, err := execute()
		done <- fetchResult{data: data, err: err}
	}()

	var res fetchResult
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %s: %v", ErrExecute, op, ctx.Err())
	case res = <-done:
	}

	if res.err != nil {
		return fmt.Errorf("%w: %s: %v", ErrExecute, op, res.err)
	}

	if err := json.Unmarshal(res.data, dest); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, op, err)
	}

	return nil
}

func lunchBreakFrom(row barberRow) *domain.LunchBreak {
	if row.LunchStart == nil || row.LunchEnd == nil || !row.LunchStart.IsBefore(*row.LunchEnd) {
		return nil
	}
	return &domain.LunchBreak{Start: *row.LunchStart, End: *row.LunchEnd}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
