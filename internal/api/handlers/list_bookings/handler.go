package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings"
)

const msgTimeout = "хранилище не ответило вовремя, повторите попытку"

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

// Handle GET /bookings
// Возвращает все бронирования по возрастанию времени записи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, bookings.ErrTimeout) {
			h.logger.Error("GET /bookings - Store timeout: %v", err)
			handlers.RespondGatewayTimeout(w, msgTimeout)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings listed successfully: count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
