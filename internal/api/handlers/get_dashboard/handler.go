package get_dashboard

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

// Handle GET /dashboard
// nextClient равен null, если будущих записей нет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		if errors.Is(err, bookings.ErrTimeout) {
			h.logger.Error("GET /dashboard - Store timeout: %v", err)
			handlers.RespondGatewayTimeout(w, msgTimeout)
			return
		}
		h.logger.Error("GET /dashboard - Failed to build dashboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard - Dashboard built: bookings_today=%d", dashboard.BookingsToday)
	handlers.RespondJSON(w, http.StatusOK, dashboard)
}
