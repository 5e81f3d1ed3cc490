package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// Pinger хранилище, доступность которого проверяется
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Error(format string, v ...interface{})
}

type Response struct {
	Status string `json:"status"`
}

type Handler struct {
	storage Pinger
	logger  Logger
}

func NewHandler(storage Pinger, logger Logger) *Handler {
	return &Handler{storage: storage, logger: logger}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.storage.PingContext(ctx); err != nil {
		h.logger.Error("GET /health - storage ping failed: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, handlers.CodeUpstreamUnavailable, "хранилище недоступно")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok"})
}
