package get_revenue

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	getRevenue "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_revenue"
)

const (
	msgInvalidAt = "некорректный параметр at, ожидается RFC 3339"
	msgTimeout   = "хранилище не ответило вовремя, повторите попытку"
)

type Handler struct {
	useCase GetRevenueUseCase
	logger  Logger
}

func NewHandler(useCase GetRevenueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /revenue
// Query params: at (optional, RFC 3339), по умолчанию текущий момент
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getRevenue.Request{}

	if atStr := r.URL.Query().Get("at"); atStr != "" {
		at, err := time.Parse(domain.InstantFormat, atStr)
		if err != nil {
			h.logger.Warn("GET /revenue - Invalid at=%q: %v", atStr, err)
			handlers.RespondBadRequest(w, msgInvalidAt)
			return
		}
		req.At = &at
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getRevenue.ErrTimeout):
			h.logger.Error("GET /revenue - Store timeout: %v", err)
			handlers.RespondGatewayTimeout(w, msgTimeout)

		default:
			// Ноль вместо ошибки хранилища не отдаём
			h.logger.Error("GET /revenue - Failed to compute revenue: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /revenue - Revenue computed: day=%s, week=%s, month=%s",
		result.Summary.Day.StringFixed(2), result.Summary.Week.StringFixed(2), result.Summary.Month.StringFixed(2))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
