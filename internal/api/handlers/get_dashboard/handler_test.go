package get_dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings"
	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardResponse), args.Error(1)
}

func get(h *Handler) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	return w
}

func TestHandler_NoNextClient(t *testing.T) {
	svc := &mockService{}
	svc.On("Dashboard", mock.Anything).Return(&models.DashboardResponse{BookingsToday: 0}, nil)

	w := get(NewHandler(svc, logger.Nop()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookingsToday":0,"nextClient":null}`, w.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"timeout", bookings.ErrTimeout, http.StatusGatewayTimeout},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Dashboard", mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.wantStatus, get(NewHandler(svc, logger.Nop())).Code)
		})
	}
}
