package get_barber_agenda

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
)

const (
	msgInvalidShopID   = "некорректный ID барбершопа"
	msgInvalidBarberID = "некорректный ID мастера"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBarberNotFound  = "мастер не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/barbers/{barberId}/bookings
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	shopID, err := strconv.ParseInt(vars["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/barbers/{id}/bookings - Invalid shop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/barbers/{id}/bookings - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /shops/{id}/barbers/{id}/bookings - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/barbers/{id}/bookings - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetBarberAgenda(r.Context(), &models.GetBarberAgendaRequest{
		ShopID:   shopID,
		BarberID: barberID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /shops/{id}/barbers/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, bookings.ErrBarberNotFound):
			h.logger.Warn("GET /shops/{id}/barbers/{id}/bookings - Barber not found: shop_id=%d, barber_id=%d",
				shopID, barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)
		case errors.Is(err, bookings.ErrInternal):
			h.logger.Error("GET /shops/{id}/barbers/{id}/bookings - Upstream failure: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondBadGateway(w)
		default:
			h.logger.Error("GET /shops/{id}/barbers/{id}/bookings - Failed to get agenda: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{id}/barbers/{id}/bookings - Agenda retrieved successfully: barber_id=%d, count=%d",
		barberID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
