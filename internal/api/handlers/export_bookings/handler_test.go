package export_bookings

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBooking/internal/service/export"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Export(ctx context.Context, from, to time.Time, w io.Writer) error {
	args := m.Called(ctx, from, to, w)
	if args.Error(0) == nil {
		_, _ = io.WriteString(w, "xlsx-bytes")
	}
	return args.Error(0)
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandler_OK(t *testing.T) {
	svc := &mockService{}
	svc.On("Export", mock.Anything,
		time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.October, 31, 0, 0, 0, 0, time.UTC),
		mock.Anything).Return(nil)

	w := get(NewHandler(svc, logger.Nop()), "/bookings/export?from=2026-10-01&to=2026-10-31")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bookings_2026-10-01_2026-10-31.xlsx")
	assert.Equal(t, "xlsx-bytes", w.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		svcErr     error
		wantStatus int
	}{
		{"missing to", "/bookings/export?from=2026-10-01", nil, http.StatusBadRequest},
		{"bad date", "/bookings/export?from=01.10.2026&to=2026-10-31", nil, http.StatusBadRequest},
		{"inverted range", "/bookings/export?from=2026-10-31&to=2026-10-01", export.ErrInvalidRange, http.StatusBadRequest},
		{"timeout", "/bookings/export?from=2026-10-01&to=2026-10-31", export.ErrTimeout, http.StatusGatewayTimeout},
		{"internal", "/bookings/export?from=2026-10-01&to=2026-10-31", export.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.svcErr != nil {
				svc.On("Export", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(tt.svcErr)
			}

			w := get(NewHandler(svc, logger.Nop()), tt.target)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotEqual(t, export.ContentType, w.Header().Get("Content-Type"))
		})
	}
}
