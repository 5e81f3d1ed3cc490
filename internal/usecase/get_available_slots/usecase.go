package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	barberRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/barber"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Settings параметры расчета, приходят из конфигурации
type Settings struct {
	SlotIntervalMinutes int
	Location            *time.Location // часовой пояс барбершопов, nil = UTC
}

// UseCase use case расчета свободных слотов мастера на дату
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	barberRepo   BarberRepository
	metrics      Metrics
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	barberRepo BarberRepository,
	metrics Metrics,
	settings Settings,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if settings.Location == nil {
		settings.Location = time.UTC
	}

	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		barberRepo:   barberRepo,
		metrics:      metrics,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: shop=%d, barber=%d, service=%d, date=%s",
		req.ShopID, req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	if uc.settings.SlotIntervalMinutes <= 0 {
		uc.logger.Error("GetAvailableSlots: slot interval %d is not positive", uc.settings.SlotIntervalMinutes)
		return nil, fmt.Errorf("%w: slot interval must be positive", ErrInvalidConfig)
	}

	response := &Response{
		Date:      req.Date,
		ShopID:    req.ShopID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Slots:     []types.TimeOfDay{},
	}

	// 2. Текущее время в часовом поясе барбершопа
	now := uc.timeProvider.Now().In(uc.settings.Location)

	// 3. Рабочие часы на день недели запрошенной даты
	weekday := domain.WeekdayOf(req.Date)
	window, err := uc.scheduleRepo.GetDaySchedule(ctx, req.ShopID, weekday)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Info("GetAvailableSlots: no schedule for shop=%d on %s", req.ShopID, weekday)
			uc.metrics.RecordAvailabilityOutcome(outcomeScheduleNotFound)
			response.Reason = ReasonScheduleNotFound
			return response, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule shop=%d weekday=%d: %v", req.ShopID, weekday, err)
		uc.metrics.RecordAvailabilityOutcome(outcomeError)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrUpstreamUnavailable, err)
	}

	if !window.DayActive {
		uc.logger.Info("GetAvailableSlots: shop=%d is closed on %s", req.ShopID, weekday)
		uc.metrics.RecordAvailabilityOutcome(outcomeDayClosed)
		response.Reason = ReasonDayClosed
		return response, nil
	}

	// 4. Длительность услуги
	duration, err := uc.serviceRepo.GetDuration(ctx, req.ShopID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found in shop=%d", req.ServiceID, req.ShopID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		uc.metrics.RecordAvailabilityOutcome(outcomeError)
		return nil, fmt.Errorf("%w: failed to get service duration: %v", ErrUpstreamUnavailable, err)
	}

	if duration <= 0 {
		uc.logger.Error("GetAvailableSlots: service id=%d has non-positive duration %d", req.ServiceID, duration)
		return nil, fmt.Errorf("%w: service %d duration %d", ErrInvalidConfig, req.ServiceID, duration)
	}
	response.DurationMinutes = duration

	// 5. Обеденный перерыв мастера
	lunchBreak, err := uc.barberRepo.GetLunchBreak(ctx, req.ShopID, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found in shop=%d", req.BarberID, req.ShopID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get lunch break barber=%d: %v", req.BarberID, err)
		uc.metrics.RecordAvailabilityOutcome(outcomeError)
		return nil, fmt.Errorf("%w: failed to get lunch break: %v", ErrUpstreamUnavailable, err)
	}

	// 6. Активные записи мастера на дату
	bookings, err := uc.bookingRepo.GetByBarberAndDate(ctx, req.BarberID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings barber=%d: %v", req.BarberID, err)
		uc.metrics.RecordAvailabilityOutcome(outcomeError)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrUpstreamUnavailable, err)
	}

	// 7. Кандидаты на начало записи
	candidates, err := availability.GenerateSlots(*window, uc.settings.SlotIntervalMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots for shop=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// 8. Фильтрация
	rejected := newRejectionCounter(uc.metrics)
	slots := availability.FilterAvailable(availability.FilterInput{
		Slots:           candidates,
		ServiceDuration: duration,
		Bookings:        bookings,
		LunchBreak:      lunchBreak,
		ClosesAt:        window.ClosesAt,
		Date:            req.Date,
		Now:             now,
	}, availability.Observers(rejected, newDebugObserver(uc.logger, req.BarberID)))

	response.Slots = slots

	if len(slots) == 0 {
		uc.metrics.RecordAvailabilityOutcome(outcomeFullyBooked)
	} else {
		uc.metrics.RecordAvailabilityOutcome(outcomeAvailable)
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for barber=%d on %s (rejected: %s)",
		len(slots), len(candidates), req.BarberID, req.Date.Format(domain.DateFormat), rejected)

	return response, nil
}
