package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetDuration получает длительность услуги в минутах
func (r *Repository) GetDuration(ctx context.Context, shopID, serviceID int64) (int, error) {
	query, args, err := psqlbuilder.Select("duration_minutes").
		From("services").
		Where(squirrel.Eq{"id": serviceID}).
		Where(squirrel.Eq{"shop_id": shopID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GetDuration - build select query: %v", ErrBuildQuery, err)
	}

	var duration int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&duration)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrServiceNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetDuration - scan row: %v", ErrScanRow, err)
	}

	return duration, nil
}
