package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository репозиторий недельного расписания барбершопов (shop_schedules)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetDaySchedule получает рабочие часы барбершопа на день недели (ISO, 1..7).
// Для выходного дня opens_at/closes_at могут быть NULL - тогда окно возвращается с DayActive = false.
func (r *Repository) GetDaySchedule(ctx context.Context, shopID int64, weekday domain.Weekday) (*domain.OperatingWindow, error) {
	query, args, err := psqlbuilder.Select(
		"opens_at",
		"closes_at",
		"is_active",
	).
		From("shop_schedules").
		Where(squirrel.Eq{"shop_id": shopID}).
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDaySchedule - build select query: %v", ErrBuildQuery, err)
	}

	var (
		opensAt, closesAt *types.TimeOfDay
		active            bool
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&opensAt, &closesAt, &active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDaySchedule - scan schedule: %v", ErrScanRow, err)
	}

	window := &domain.OperatingWindow{DayActive: active}
	if opensAt == nil || closesAt == nil {
		window.DayActive = false
		return window, nil
	}

	window.OpensAt = *opensAt
	window.ClosesAt = *closesAt

	return window, nil
}
