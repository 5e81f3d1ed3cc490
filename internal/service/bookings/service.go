package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	barberRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
)

// Service сервис для чтения занятости мастеров
type Service struct {
	bookingRepo BookingRepository
	barberRepo  BarberRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	bookingRepo BookingRepository,
	barberRepo BarberRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		barberRepo:  barberRepo,
		logger:      logger,
	}
}

// GetBarberAgenda возвращает записи, занимающие время мастера на дату, и его обеденный перерыв.
// Записи отсортированы по времени начала.
func (s *Service) GetBarberAgenda(ctx context.Context, req *models.GetBarberAgendaRequest) (*models.BarberAgendaResponse, error) {
	s.logger.Info("GetBarberAgenda: fetching agenda for shop=%d, barber=%d, date=%s",
		req.ShopID, req.BarberID, req.Date.Format(domain.DateFormat))

	// 1. Валидируем входные данные
	if req.ShopID <= 0 || req.BarberID <= 0 || req.Date.IsZero() {
		s.logger.Warn("GetBarberAgenda: invalid request shop=%d, barber=%d", req.ShopID, req.BarberID)
		return nil, fmt.Errorf("%w: shop_id, barber_id and date are required", ErrInvalidInput)
	}

	// 2. Проверяем мастера и получаем перерыв
	lunch, err := s.barberRepo.GetLunchBreak(ctx, req.ShopID, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("GetBarberAgenda: barber=%d not found in shop=%d", req.BarberID, req.ShopID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("GetBarberAgenda: failed to get barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 3. Получаем записи мастера
	bookings, err := s.bookingRepo.GetByBarberAndDate(ctx, req.BarberID, req.Date)
	if err != nil {
		s.logger.Error("GetBarberAgenda: failed to get bookings for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Оставляем только записи, которые занимают время
	items := make([]models.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if b == nil || !b.OccupiesTime() {
			continue
		}
		items = append(items, models.ToBookingResponse(b))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Start.IsBefore(items[j].Start)
	})

	s.logger.Info("GetBarberAgenda: barber=%d has %d bookings on %s",
		req.BarberID, len(items), req.Date.Format(domain.DateFormat))

	return &models.BarberAgendaResponse{
		Date:       req.Date.Format(domain.DateFormat),
		ShopID:     req.ShopID,
		BarberID:   req.BarberID,
		Bookings:   items,
		LunchBreak: models.ToLunchBreakResponse(lunch),
	}, nil
}
