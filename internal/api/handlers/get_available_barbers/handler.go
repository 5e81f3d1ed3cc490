package get_available_barbers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableBarbers "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_barbers"
)

const (
	msgInvalidShopID     = "некорректный ID барбершопа"
	msgInvalidServiceID  = "некорректный ID услуги"
	msgMissingParams     = "параметры serviceId, date и time обязательны"
	msgInvalidDateOrTime = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgServiceNotFound   = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableBarbersUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableBarbersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/available-barbers
// Query params: serviceId, date (YYYY-MM-DD), time (HH:MM) - все обязательны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/available-barbers - Invalid shop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	query := r.URL.Query()
	serviceIDStr, dateStr, timeStr := query.Get("serviceId"), query.Get("date"), query.Get("time")
	if serviceIDStr == "" || dateStr == "" || timeStr == "" {
		h.logger.Warn("GET /shops/{id}/available-barbers - Missing query params")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/available-barbers - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(shopID, serviceID, dateStr, timeStr)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/available-barbers - Invalid %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableBarbers.ErrInvalidInput):
			h.logger.Warn("GET /shops/{id}/available-barbers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableBarbers.ErrServiceNotFound):
			h.logger.Warn("GET /shops/{id}/available-barbers - Service not found: shop_id=%d, service_id=%d", shopID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableBarbers.ErrInvalidConfig):
			h.logger.Error("GET /shops/{id}/available-barbers - Invalid configuration: shop_id=%d, error=%v", shopID, err)
			handlers.RespondInternalError(w)

		case errors.Is(err, getAvailableBarbers.ErrUpstreamUnavailable):
			h.logger.Error("GET /shops/{id}/available-barbers - Upstream unavailable: shop_id=%d, error=%v", shopID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("GET /shops/{id}/available-barbers - Failed to search barbers: shop_id=%d, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{id}/available-barbers - Search completed: shop_id=%d, service_id=%d, barbers_count=%d",
		shopID, serviceID, len(result.BarberIDs))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
