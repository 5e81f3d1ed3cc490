package dbmetrics

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedQuery struct {
	operation string
	failed    bool
}

type fakeRecorder struct {
	mu      sync.Mutex
	queries []recordedQuery
	stats   int
}

func (r *fakeRecorder) RecordDBQuery(operation string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, recordedQuery{operation: operation, failed: err != nil})
}

func (r *fakeRecorder) SetDBStats(sql.DBStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats++
}

func (r *fakeRecorder) statsCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

func TestDB_RecordsQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	recorder := &fakeRecorder{}
	wrapped := Wrap(db, recorder)
	ctx := context.Background()

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))
	rows, err := wrapped.QueryContext(ctx, "SELECT 1")
	require.NoError(t, err)
	rows.Close()

	mock.ExpectQuery("SELECT 2").WillReturnError(errors.New("connection reset"))
	_, err = wrapped.QueryContext(ctx, "SELECT 2")
	require.Error(t, err)

	mock.ExpectQuery("SELECT 3").WillReturnRows(sqlmock.NewRows([]string{"three"}).AddRow(3))
	var three int
	require.NoError(t, wrapped.QueryRowContext(ctx, "SELECT 3").Scan(&three))
	assert.Equal(t, 3, three)

	assert.Equal(t, []recordedQuery{
		{operation: "query", failed: false},
		{operation: "query", failed: true},
		{operation: "query_row", failed: false},
	}, recorder.queries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_CollectStatsStops(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	recorder := &fakeRecorder{}
	stopCh := make(chan struct{})
	done := make(chan struct{})

	wrapped := Wrap(db, recorder)
	go func() {
		wrapped.collectStats(time.Millisecond, stopCh)
		close(done)
	}()

	require.Eventually(t, func() bool { return recorder.statsCalls() >= 2 }, time.Second, time.Millisecond)
	close(stopCh)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stats collector did not stop")
	}
}
