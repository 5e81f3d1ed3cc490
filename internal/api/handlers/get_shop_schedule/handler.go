package get_shop_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
)

const (
	msgInvalidShopID    = "некорректный ID барбершопа"
	msgScheduleNotFound = "расписание барбершопа не найдено"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/schedule
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil || shopID <= 0 {
		h.logger.Warn("GET /shops/{id}/schedule - Invalid shop ID: %q", mux.Vars(r)["shopId"])
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	result, err := h.service.GetWeeklySchedule(r.Context(), shopID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrScheduleNotFound):
			h.logger.Warn("GET /shops/{id}/schedule - Schedule not found: shop_id=%d", shopID)
			handlers.RespondNotFound(w, msgScheduleNotFound)
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /shops/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidShopID)
		case errors.Is(err, schedule.ErrInternal):
			h.logger.Error("GET /shops/{id}/schedule - Upstream failure: shop_id=%d, error=%v", shopID, err)
			handlers.RespondBadGateway(w)
		default:
			h.logger.Error("GET /shops/{id}/schedule - Failed to get schedule: shop_id=%d, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{id}/schedule - Schedule retrieved successfully: shop_id=%d", shopID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
