package export_bookings

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/export"
)

const (
	msgMissingRange = "параметры from и to обязательны"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "некорректный период выгрузки"
	msgTimeout      = "хранилище не ответило вовремя, повторите попытку"
)

type Handler struct {
	service ExportService
	logger  Logger
}

func NewHandler(service ExportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /bookings/export
// Query params: from, to (required, YYYY-MM-DD, включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr, toStr := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /bookings/export - Missing range: from=%q, to=%q", fromStr, toStr)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, errFrom := time.Parse(domain.DateFormat, fromStr)
	to, errTo := time.Parse(domain.DateFormat, toStr)
	if errFrom != nil || errTo != nil {
		h.logger.Warn("GET /bookings/export - Invalid date: from=%q, to=%q", fromStr, toStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Книга собирается в буфер целиком до записи заголовков
	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), from, to, &buf); err != nil {
		switch {
		case errors.Is(err, export.ErrInvalidRange):
			h.logger.Warn("GET /bookings/export - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, export.ErrTimeout):
			h.logger.Error("GET /bookings/export - Store timeout: %v", err)
			handlers.RespondGatewayTimeout(w, msgTimeout)

		default:
			h.logger.Error("GET /bookings/export - Failed to export bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	size := buf.Len()
	filename := fmt.Sprintf("bookings_%s_%s.xlsx", fromStr, toStr)
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(size))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /bookings/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /bookings/export - Export sent: from=%s, to=%s, bytes=%d", fromStr, toStr, size)
}
