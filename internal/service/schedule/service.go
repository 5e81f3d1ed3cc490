package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

// Settings параметры сетки слотов, которые отдаются вместе с расписанием
type Settings struct {
	SlotIntervalMinutes int
	Timezone            string
}

// Service сервис для чтения недельного расписания барбершопа
type Service struct {
	scheduleRepo ScheduleRepository
	settings     Settings
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	settings Settings,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		settings:     settings,
		logger:       logger,
	}
}

// GetWeeklySchedule возвращает рабочие часы на все дни недели, с понедельника по воскресенье.
// День без строки расписания считается закрытым. Если строк нет совсем, возвращается ErrScheduleNotFound.
func (s *Service) GetWeeklySchedule(ctx context.Context, shopID int64) (*models.WeeklyScheduleResponse, error) {
	s.logger.Info("GetWeeklySchedule: fetching schedule for shop=%d", shopID)

	if shopID <= 0 {
		s.logger.Warn("GetWeeklySchedule: invalid shop id=%d", shopID)
		return nil, fmt.Errorf("%w: shop_id must be positive", ErrInvalidInput)
	}

	days := make([]models.DayScheduleResponse, 0, int(domain.Sunday))
	missing := 0

	for weekday := domain.Monday; weekday <= domain.Sunday; weekday++ {
		window, err := s.scheduleRepo.GetDaySchedule(ctx, shopID, weekday)
		if err != nil {
			if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				s.logger.Error("GetWeeklySchedule: failed to get schedule shop=%d, weekday=%s: %v", shopID, weekday, err)
				return nil, fmt.Errorf("%w: failed to get day schedule: %v", ErrInternal, err)
			}
			missing++
		}

		days = append(days, models.ToDayScheduleResponse(weekday, window))
	}

	if missing == len(days) {
		s.logger.Warn("GetWeeklySchedule: no schedule rows for shop=%d", shopID)
		return nil, ErrScheduleNotFound
	}

	s.logger.Info("GetWeeklySchedule: schedule for shop=%d retrieved, missing_days=%d", shopID, missing)

	return &models.WeeklyScheduleResponse{
		ShopID:              shopID,
		SlotIntervalMinutes: s.settings.SlotIntervalMinutes,
		Timezone:            s.settings.Timezone,
		Days:                days,
	}, nil
}
