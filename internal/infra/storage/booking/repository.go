package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository репозиторий записей (appointments), только чтение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBarberAndDate получает активные записи мастера (pending, confirmed) на одну дату,
// отсортированные по времени начала.
// Дата сравнивается как календарная (колонка DATE), часовые пояса уже учтены на стороне вызывающего.
func (r *Repository) GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"barber_id",
		"appointment_date",
		"start_time",
		"end_time",
		"status",
	).
		From("appointments").
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.Eq{"appointment_date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"status": domain.ActiveStatusStrings()}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс записей
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var endAt *types.TimeOfDay
		var status string

		err := rows.Scan(
			&booking.ID,
			&booking.BarberID,
			&booking.Date,
			&booking.StartAt,
			&endAt,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		parsed, ok := domain.ParseBookingStatus(status)
		if !ok {
			return nil, fmt.Errorf("%w: scanBookings - appointment id=%d has unknown status %q", ErrScanRow, booking.ID, status)
		}
		booking.Status = parsed

		if endAt != nil {
			booking.EndAt = *endAt
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
