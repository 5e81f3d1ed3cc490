package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableSlots.Response), args.Error(1)
}

func doRequest(h *Handler, shopID, barberID, query string) *httptest.ResponseRecorder {
	target := fmt.Sprintf("/api/v1/shops/%s/barbers/%s/available-slots%s", shopID, barberID, query)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = mux.SetURLVars(req, map[string]string{"shopId": shopID, "barberId": barberID})

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &MockUseCase{}
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{ShopID: 1, BarberID: 7, ServiceID: 11, Date: date}).
		Return(&getAvailableSlots.Response{
			Date:            date,
			ShopID:          1,
			BarberID:        7,
			ServiceID:       11,
			DurationMinutes: 30,
			Slots:           []types.TimeOfDay{types.MustParseTimeOfDay("09:00"), types.MustParseTimeOfDay("09:30")},
		}, nil)

	rec := doRequest(NewHandler(uc, logger.Nop()), "1", "7", "?serviceId=11&date=2025-03-10")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-03-10", body.Date)
	assert.Equal(t, int64(7), body.BarberID)
	assert.Equal(t, 30, body.DurationMinutes)
	assert.Equal(t, []string{"09:00", "09:30"}, body.Slots)
	assert.NotContains(t, rec.Body.String(), "reason")
	uc.AssertExpectations(t)
}

func TestHandle_EmptyWithReason(t *testing.T) {
	uc := &MockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{
		Date:   time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
		Slots:  []types.TimeOfDay{},
		Reason: getAvailableSlots.ReasonDayClosed,
	}, nil)

	rec := doRequest(NewHandler(uc, logger.Nop()), "1", "7", "?serviceId=11&date=2025-03-16")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
	assert.Contains(t, rec.Body.String(), `"reason":"day_closed"`)
}

func TestHandle_BadRequest(t *testing.T) {
	tests := []struct {
		name     string
		shopID   string
		barberID string
		query    string
	}{
		{"invalid shop", "abc", "7", "?serviceId=11&date=2025-03-10"},
		{"invalid barber", "1", "x", "?serviceId=11&date=2025-03-10"},
		{"missing service", "1", "7", "?date=2025-03-10"},
		{"invalid service", "1", "7", "?serviceId=eleven&date=2025-03-10"},
		{"missing date", "1", "7", "?serviceId=11"},
		{"invalid date", "1", "7", "?serviceId=11&date=10.03.2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUseCase{}
			rec := doRequest(NewHandler(uc, logger.Nop()), tt.shopID, tt.barberID, tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: shopID must be positive", getAvailableSlots.ErrInvalidInput), http.StatusBadRequest, handlers.CodeBadRequest},
		{getAvailableSlots.ErrServiceNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{getAvailableSlots.ErrBarberNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{fmt.Errorf("%w: timeout", getAvailableSlots.ErrUpstreamUnavailable), http.StatusBadGateway, handlers.CodeUpstreamUnavailable},
		{getAvailableSlots.ErrInvalidConfig, http.StatusInternalServerError, handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &MockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(NewHandler(uc, logger.Nop()), "1", "7", "?serviceId=11&date=2025-03-10")
			assert.Equal(t, tt.status, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}
