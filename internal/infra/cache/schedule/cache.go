package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

const keyPrefix = "availability:schedule"

// entry кешируемое значение. Found = false запоминает отсутствие строки расписания.
type entry struct {
	Found     bool            `json:"found"`
	DayActive bool            `json:"dayActive"`
	OpensAt   types.TimeOfDay `json:"opensAt"`
	ClosesAt  types.TimeOfDay `json:"closesAt"`
}

// Repository read-through кеш недельного расписания в Redis.
// Любая ошибка Redis не ломает запрос: значение читается из источника.
type Repository struct {
	client redis.Cmdable
	next   ScheduleRepository
	ttl    time.Duration
	logger Logger
}

// NewRepository создает кеширующий репозиторий поверх next
func NewRepository(client redis.Cmdable, next ScheduleRepository, ttl time.Duration, logger Logger) *Repository {
	return &Repository{
		client: client,
		next:   next,
		ttl:    ttl,
		logger: logger,
	}
}

// Key возвращает ключ Redis для дня недели барбершопа
func Key(shopID int64, weekday domain.Weekday) string {
	return fmt.Sprintf("%s:%d:%d", keyPrefix, shopID, int(weekday))
}

// GetDaySchedule отдает расписание из кеша, при промахе читает источник и сохраняет результат
func (r *Repository) GetDaySchedule(ctx context.Context, shopID int64, weekday domain.Weekday) (*domain.OperatingWindow, error) {
	key := Key(shopID, weekday)

	cached, err := r.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		window, hit, decodeErr := decode(cached)
		if decodeErr == nil {
			if !hit {
				return nil, scheduleRepo.ErrScheduleNotFound
			}
			return window, nil
		}
		r.logger.Warn("ScheduleCache: corrupted value for key=%s: %v", key, decodeErr)
	case errors.Is(err, redis.Nil):
	default:
		r.logger.Warn("ScheduleCache: failed to get key=%s: %v", key, err)
	}

	window, err := r.next.GetDaySchedule(ctx, shopID, weekday)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		return nil, err
	}

	r.store(ctx, key, window)

	if window == nil {
		return nil, err
	}

	return window, nil
}

func (r *Repository) store(ctx context.Context, key string, window *domain.OperatingWindow) {
	payload, err := encode(window)
	if err != nil {
		r.logger.Error("ScheduleCache: failed to encode key=%s: %v", key, err)
		return
	}

	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		r.logger.Warn("ScheduleCache: failed to set key=%s: %v", key, err)
	}
}

func encode(window *domain.OperatingWindow) (string, error) {
	e := entry{}
	if window != nil {
		e = entry{
			Found:     true,
			DayActive: window.DayActive,
			OpensAt:   window.OpensAt,
			ClosesAt:  window.ClosesAt,
		}
	}

	data, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decode(value string) (*domain.OperatingWindow, bool, error) {
	var e entry
	if err := json.Unmarshal([]byte(value), &e); err != nil {
		return nil, false, err
	}
	if !e.Found {
		return nil, false, nil
	}

	return &domain.OperatingWindow{
		DayActive: e.DayActive,
		OpensAt:   e.OpensAt,
		ClosesAt:  e.ClosesAt,
	}, true, nil
}
