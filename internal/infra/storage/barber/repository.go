package barber

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

// Repository репозиторий мастеров барбершопа
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveBarbers получает активных мастеров барбершопа в порядке id
func (r *Repository) GetActiveBarbers(ctx context.Context, shopID int64) ([]*domain.Barber, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"shop_id",
		"name",
		"is_active",
		"lunch_start",
		"lunch_end",
	).
		From("barbers").
		Where(squirrel.Eq{"shop_id": shopID}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBarbers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBarbers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		var (
			barber               domain.Barber
			lunchStart, lunchEnd *types.TimeOfDay
		)

		if err := rows.Scan(&barber.ID, &barber.ShopID, &barber.Name, &barber.Active, &lunchStart, &lunchEnd); err != nil {
			return nil, fmt.Errorf("%w: GetActiveBarbers - scan row: %v", ErrScanRow, err)
		}

		barber.LunchBreak = lunchBreakFrom(lunchStart, lunchEnd)
		barbers = append(barbers, &barber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveBarbers - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// GetLunchBreak получает обеденный перерыв мастера.
// Возвращает nil без ошибки, если перерыв не задан.
func (r *Repository) GetLunchBreak(ctx context.Context, shopID, barberID int64) (*domain.LunchBreak, error) {
	query, args, err := psqlbuilder.Select("lunch_start", "lunch_end").
		From("barbers").
		Where(squirrel.Eq{"id": barberID}).
		Where(squirrel.Eq{"shop_id": shopID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLunchBreak - build select query: %v", ErrBuildQuery, err)
	}

	var lunchStart, lunchEnd *types.TimeOfDay
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&lunchStart, &lunchEnd)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLunchBreak - scan row: %v", ErrScanRow, err)
	}

	return lunchBreakFrom(lunchStart, lunchEnd), nil
}

// lunchBreakFrom собирает перерыв только если оба конца заданы и интервал не пустой
func lunchBreakFrom(start, end *types.TimeOfDay) *domain.LunchBreak {
	if start == nil || end == nil || !start.IsBefore(*end) {
		return nil
	}
	return &domain.LunchBreak{Start: *start, End: *end}
}
