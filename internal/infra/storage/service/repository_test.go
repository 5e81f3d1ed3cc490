package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectDuration = "SELECT duration_minutes FROM services WHERE id = $1 AND shop_id = $2"

func TestGetDuration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(selectDuration)).
		WithArgs(int64(11), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"duration_minutes"}).AddRow(45))

	duration, err := repo.GetDuration(context.Background(), 1, 11)
	require.NoError(t, err)
	assert.Equal(t, 45, duration)

	mock.ExpectQuery(regexp.QuoteMeta(selectDuration)).
		WithArgs(int64(12), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"duration_minutes"}))

	_, err = repo.GetDuration(context.Background(), 1, 12)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	mock.ExpectQuery(regexp.QuoteMeta(selectDuration)).WillReturnError(errors.New("too many connections"))

	_, err = repo.GetDuration(context.Background(), 1, 13)
	assert.ErrorIs(t, err, ErrScanRow)

	assert.NoError(t, mock.ExpectationsWereMet())
}
