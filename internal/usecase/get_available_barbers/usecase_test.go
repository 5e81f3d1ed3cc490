package get_available_barbers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type MockBarberRepository struct {
	mock.Mock
}

func (m *MockBarberRepository) GetActiveBarbers(ctx context.Context, shopID int64) ([]*domain.Barber, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Barber), args.Error(1)
}

// fakeSlots отдает заранее заданные слоты по ID мастера, с задержкой для проверки порядка
type fakeSlots struct {
	slots  map[int64][]string
	errs   map[int64]error
	delays map[int64]time.Duration

	mu       sync.Mutex
	calls    []int64
	inFlight int32
	peak     int32
}

func (f *fakeSlots) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	current := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		peak := atomic.LoadInt32(&f.peak)
		if current <= peak || atomic.CompareAndSwapInt32(&f.peak, peak, current) {
			break
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, req.BarberID)
	f.mu.Unlock()

	if d := f.delays[req.BarberID]; d > 0 {
		time.Sleep(d)
	}

	if err := f.errs[req.BarberID]; err != nil {
		return nil, err
	}

	resp := &getAvailableSlots.Response{Slots: []types.TimeOfDay{}}
	for _, s := range f.slots[req.BarberID] {
		resp.Slots = append(resp.Slots, types.MustParseTimeOfDay(s))
	}
	return resp, nil
}

var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func barbers(ids ...int64) []*domain.Barber {
	result := make([]*domain.Barber, 0, len(ids))
	for _, id := range ids {
		result = append(result, &domain.Barber{ID: id, ShopID: 1, Active: true})
	}
	return result
}

func request() *Request {
	return &Request{ShopID: 1, ServiceID: 11, Date: monday, Time: types.MustParseTimeOfDay("10:00")}
}

func TestExecute_PreservesFetchOrder(t *testing.T) {
	repo := &MockBarberRepository{}
	repo.On("GetActiveBarbers", mock.Anything, int64(1)).Return(barbers(3, 1, 2, 5), nil)

	slots := &fakeSlots{
		slots: map[int64][]string{
			3: {"09:00", "10:00"},
			1: {"10:00", "10:30"},
			2: {"11:00"},
			5: {"10:00"},
		},
		// первый мастер отвечает последним
		delays: map[int64]time.Duration{3: 30 * time.Millisecond},
	}

	uc := NewUseCase(repo, slots, 4, logger.Nop())

	resp, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 1, 5}, resp.BarberIDs)
	assert.Equal(t, "10:00", resp.Time.String())
	repo.AssertExpectations(t)
}

func TestExecute_NoBarbers(t *testing.T) {
	repo := &MockBarberRepository{}
	repo.On("GetActiveBarbers", mock.Anything, int64(1)).Return([]*domain.Barber{}, nil)

	slots := &fakeSlots{}
	uc := NewUseCase(repo, slots, 4, logger.Nop())

	resp, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	require.NotNil(t, resp.BarberIDs)
	assert.Empty(t, resp.BarberIDs)
	assert.Empty(t, slots.calls)
}

func TestExecute_ConcurrencyLimit(t *testing.T) {
	repo := &MockBarberRepository{}
	repo.On("GetActiveBarbers", mock.Anything, int64(1)).Return(barbers(1, 2, 3, 4, 5, 6), nil)

	delays := map[int64]time.Duration{}
	for id := int64(1); id <= 6; id++ {
		delays[id] = 10 * time.Millisecond
	}
	slots := &fakeSlots{delays: delays}

	uc := NewUseCase(repo, slots, 2, logger.Nop())

	_, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Len(t, slots.calls, 6)
	assert.LessOrEqual(t, atomic.LoadInt32(&slots.peak), int32(2))
}

func TestExecute_UpstreamFailureAborts(t *testing.T) {
	repo := &MockBarberRepository{}
	repo.On("GetActiveBarbers", mock.Anything, int64(1)).Return(barbers(1, 2), nil)

	slots := &fakeSlots{
		slots: map[int64][]string{1: {"10:00"}},
		errs:  map[int64]error{2: getAvailableSlots.ErrUpstreamUnavailable},
	}

	uc := NewUseCase(repo, slots, 4, logger.Nop())

	resp, err := uc.Execute(context.Background(), request())
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestExecute_InvalidConfigIsNotUpstream(t *testing.T) {
	repo := &MockBarberRepository{}
	repo.On("GetActiveBarbers", mock.Anything, int64(1)).Return(barbers(1, 7), nil)

	slots := &fakeSlots{
		slots: map[int64][]string{1: {"10:00"}},
		errs:  map[int64]error{7: fmt.Errorf("%w: slot interval must be positive", getAvailableSlots.ErrInvalidConfig)},
	}

	uc := NewUseCase(repo, slots, 4, logger.Nop())

	resp, err := uc.Execute(context.Background(), request())
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, getAvailableSlots.ErrInvalidConfig)
	assert.NotErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestExecute_UpstreamFailureKeepsCause(t *testing.T) {
	repo := &MockBarberRepository{}
	repo.On("GetActiveBarbers", mock.Anything, int64(1)).Return(barbers(2), nil)

	slots := &fakeSlots{errs: map[int64]error{2: getAvailableSlots.ErrUpstreamUnavailable}}
	uc := NewUseCase(repo, slots, 4, logger.Nop())

	_, err := uc.Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, getAvailableSlots.ErrUpstreamUnavailable)
}

func TestExecute_BarberListFailure(t *testing.T) {
	repo := &MockBarberRepository{}
	repo.On("GetActiveBarbers", mock.Anything, int64(1)).Return(nil, errors.New("timeout"))

	uc := NewUseCase(repo, &fakeSlots{}, 4, logger.Nop())

	_, err := uc.Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	repo := &MockBarberRepository{}
	repo.On("GetActiveBarbers", mock.Anything, int64(1)).Return(barbers(1), nil)

	slots := &fakeSlots{errs: map[int64]error{1: getAvailableSlots.ErrServiceNotFound}}
	uc := NewUseCase(repo, slots, 4, logger.Nop())

	_, err := uc.Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_VanishedBarberSkipped(t *testing.T) {
	repo := &MockBarberRepository{}
	repo.On("GetActiveBarbers", mock.Anything, int64(1)).Return(barbers(1, 2), nil)

	slots := &fakeSlots{
		slots: map[int64][]string{2: {"10:00"}},
		errs:  map[int64]error{1: getAvailableSlots.ErrBarberNotFound},
	}
	uc := NewUseCase(repo, slots, 4, logger.Nop())

	resp, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, resp.BarberIDs)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&MockBarberRepository{}, &fakeSlots{}, 0, logger.Nop())
	assert.Equal(t, DefaultConcurrency, uc.concurrency)

	bad := []*Request{
		nil,
		{ShopID: 0, ServiceID: 1, Date: monday},
		{ShopID: 1, ServiceID: 0, Date: monday},
		{ShopID: 1, ServiceID: 1},
		{ShopID: 1, ServiceID: 1, Date: monday, Time: types.TimeOfDay(types.MinutesPerDay)},
	}
	for _, req := range bad {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
