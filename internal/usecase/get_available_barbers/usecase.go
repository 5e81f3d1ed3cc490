package get_available_barbers

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// DefaultConcurrency ограничение параллельных расчетов по умолчанию
const DefaultConcurrency = 8

// UseCase поиск мастеров, у которых свободно заданное время
type UseCase struct {
	barberRepo  BarberRepository
	slots       SlotsUseCase
	concurrency int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case. concurrency <= 0 заменяется на DefaultConcurrency.
func NewUseCase(barberRepo BarberRepository, slots SlotsUseCase, concurrency int, logger Logger) *UseCase {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &UseCase{
		barberRepo:  barberRepo,
		slots:       slots,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Execute выполняет поиск
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableBarbers: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableBarbers: shop=%d, service=%d, date=%s, time=%s",
		req.ShopID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	response := &Response{
		Date:      req.Date,
		Time:      req.Time,
		ShopID:    req.ShopID,
		ServiceID: req.ServiceID,
		BarberIDs: []int64{},
	}

	// 2. Активные мастера
	barbers, err := uc.barberRepo.GetActiveBarbers(ctx, req.ShopID)
	if err != nil {
		uc.logger.Error("GetAvailableBarbers: failed to get barbers of shop=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get barbers: %v", ErrUpstreamUnavailable, err)
	}

	if len(barbers) == 0 {
		uc.logger.Info("GetAvailableBarbers: shop=%d has no active barbers", req.ShopID)
		return response, nil
	}

	// 3. Параллельный расчет по каждому мастеру.
	// Результат пишется по индексу, поэтому порядок не зависит от порядка завершения.
	available := make([]bool, len(barbers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for i, barber := range barbers {
		g.Go(func() error {
			free, err := uc.isFree(gctx, req, barber.ID)
			if err != nil {
				return err
			}
			available[i] = free
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, getAvailableSlots.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableBarbers: service id=%d not found in shop=%d", req.ServiceID, req.ShopID)
			return nil, ErrServiceNotFound
		}
		if errors.Is(err, getAvailableSlots.ErrInvalidConfig) {
			uc.logger.Error("GetAvailableBarbers: invalid configuration for shop=%d: %v", req.ShopID, err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		uc.logger.Error("GetAvailableBarbers: search aborted for shop=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	// 4. Сборка ответа в порядке выборки
	for i, barber := range barbers {
		if available[i] {
			response.BarberIDs = append(response.BarberIDs, barber.ID)
		}
	}

	uc.logger.Info("GetAvailableBarbers: %d of %d barbers free at %s on %s",
		len(response.BarberIDs), len(barbers), req.Time, req.Date.Format(domain.DateFormat))

	return response, nil
}

// isFree проверяет, входит ли запрошенное время в свободные слоты мастера
func (uc *UseCase) isFree(ctx context.Context, req *Request, barberID int64) (bool, error) {
	resp, err := uc.slots.Execute(ctx, &getAvailableSlots.Request{
		ShopID:    req.ShopID,
		BarberID:  barberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
	})
	if err != nil {
		// мастер мог быть удален между выборкой списка и расчетом
		if errors.Is(err, getAvailableSlots.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableBarbers: barber id=%d disappeared, skipping", barberID)
			return false, nil
		}
		return false, fmt.Errorf("barber id=%d: %w", barberID, err)
	}

	for _, slot := range resp.Slots {
		if slot == req.Time {
			return true, nil
		}
	}
	return false, nil
}
