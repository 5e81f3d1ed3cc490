package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetrics() *Metrics {
	return NewWithRegistry("test-service", prometheus.NewRegistry())
}

func TestRecordHTTPRequest(t *testing.T) {
	m := newTestMetrics()

	m.RecordHTTPRequest("GET", "/api/v1/shops/{shopId}/available-barbers", "200", 120*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/v1/shops/{shopId}/available-barbers", "200", 80*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/v1/shops/{shopId}/available-barbers", "400", 5*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/shops/{shopId}/available-barbers", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/shops/{shopId}/available-barbers", "400")))
}

func TestRecordDBQuery(t *testing.T) {
	m := newTestMetrics()

	m.RecordDBQuery("query", 3*time.Millisecond, nil)
	m.RecordDBQuery("query", 4*time.Millisecond, errors.New("boom"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueryErrorsTotal.WithLabelValues("query")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration))
}

func TestSetDBStats(t *testing.T) {
	m := newTestMetrics()

	m.SetDBStats(sql.DBStats{OpenConnections: 5, InUse: 2, Idle: 3})

	assert.Equal(t, float64(5), testutil.ToFloat64(m.DBConnections.WithLabelValues("open")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.DBConnections.WithLabelValues("in_use")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.DBConnections.WithLabelValues("idle")))
}

func TestRecordAvailability(t *testing.T) {
	m := newTestMetrics()

	m.RecordSlotRejected("booking_overlap")
	m.RecordSlotRejected("booking_overlap")
	m.RecordSlotRejected("lunch_break")
	m.RecordAvailabilityOutcome("ok")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.SlotsRejectedTotal.WithLabelValues("booking_overlap")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SlotsRejectedTotal.WithLabelValues("lunch_break")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AvailabilityRequests.WithLabelValues("ok")))
}
