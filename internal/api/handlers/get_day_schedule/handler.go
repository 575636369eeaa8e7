package get_day_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTimeout     = "хранилище не ответило вовремя, повторите попытку"
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

// Handle GET /schedule/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/{date} - Invalid date=%q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	schedule, err := h.service.DaySchedule(r.Context(), date)
	if err != nil {
		if errors.Is(err, bookings.ErrTimeout) {
			h.logger.Error("GET /schedule/{date} - Store timeout: date=%s, error=%v", dateStr, err)
			handlers.RespondGatewayTimeout(w, msgTimeout)
			return
		}
		h.logger.Error("GET /schedule/{date} - Failed to get schedule: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/{date} - Schedule retrieved: date=%s, bookings=%d, total=%s",
		schedule.Date, len(schedule.Bookings), schedule.Total)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
