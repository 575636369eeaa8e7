package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableSlots.Response), args.Error(1)
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandler_MarksBookedSlots(t *testing.T) {
	day := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{Date: day}).
		Return(&getAvailableSlots.Response{
			Date: day,
			Slots: []domain.AvailableSlot{
				{StartsAt: day.Add(8 * time.Hour)},
				{StartsAt: day.Add(8*time.Hour + 30*time.Minute), Booking: &domain.Booking{ID: 9, ClientName: "Lucas"}},
			},
		}, nil)

	w := get(NewHandler(uc, logger.Nop()), "/slots?date=2026-10-17")

	require.Equal(t, http.StatusOK, w.Code)
	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "08:00", resp.Slots[0].StartTime)
	assert.True(t, resp.Slots[0].Free)
	assert.Nil(t, resp.Slots[0].BookingID)
	assert.False(t, resp.Slots[1].Free)
	require.NotNil(t, resp.Slots[1].BookingID)
	assert.Equal(t, int64(9), *resp.Slots[1].BookingID)
	assert.Equal(t, "Lucas", resp.Slots[1].ClientName)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		ucErr      error
		wantStatus int
	}{
		{"missing date", "/slots", nil, http.StatusBadRequest},
		{"invalid date", "/slots?date=2026/10/17", nil, http.StatusBadRequest},
		{"timeout", "/slots?date=2026-10-17", getAvailableSlots.ErrTimeout, http.StatusGatewayTimeout},
		{"internal", "/slots?date=2026-10-17", getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			assert.Equal(t, tt.wantStatus, get(NewHandler(uc, logger.Nop()), tt.target).Code)
		})
	}
}
