package get_revenue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	getRevenue "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_revenue"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/timewindow"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getRevenue.Request) (*getRevenue.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getRevenue.Response), args.Error(1)
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandler_OK(t *testing.T) {
	at := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getRevenue.Request) bool {
		return req.At != nil && req.At.Equal(at)
	})).Return(&getRevenue.Response{
		At: at,
		Summary: domain.RevenueSummary{
			Day:         decimal.RequireFromString("50"),
			Week:        decimal.RequireFromString("80"),
			Month:       decimal.RequireFromString("100.3"),
			DayWindow:   timewindow.Day(at),
			WeekWindow:  timewindow.Week(at),
			MonthWindow: timewindow.Month(at),
		},
	}, nil)

	w := get(NewHandler(uc, logger.Nop()), "/revenue?at=2026-10-16T12:00:00Z")

	require.Equal(t, http.StatusOK, w.Code)
	var resp RevenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "50.00", resp.Day)
	assert.Equal(t, "80.00", resp.Week)
	assert.Equal(t, "100.30", resp.Month)
	assert.Equal(t, "2026-10-12T00:00:00Z", resp.Windows.Week.From)
	assert.Equal(t, "2026-10-31T23:59:59Z", resp.Windows.Month.To)

	// Суммы лежат на верхнем уровне и читаются клиентом как decimal
	var flat struct {
		Day   decimal.Decimal `json:"day"`
		Week  decimal.Decimal `json:"week"`
		Month decimal.Decimal `json:"month"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &flat))
	assert.True(t, flat.Day.Equal(decimal.NewFromInt(50)))
	assert.True(t, flat.Month.Equal(decimal.RequireFromString("100.3")))
}

func TestHandler_DefaultsToNow(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getRevenue.Request) bool {
		return req.At == nil
	})).Return(&getRevenue.Response{}, nil)

	assert.Equal(t, http.StatusOK, get(NewHandler(uc, logger.Nop()), "/revenue").Code)
	uc.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	t.Run("invalid at", func(t *testing.T) {
		uc := &mockUseCase{}
		assert.Equal(t, http.StatusBadRequest, get(NewHandler(uc, logger.Nop()), "/revenue?at=yesterday").Code)
		uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("timeout", func(t *testing.T) {
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getRevenue.ErrTimeout)
		assert.Equal(t, http.StatusGatewayTimeout, get(NewHandler(uc, logger.Nop()), "/revenue").Code)
	})

	t.Run("internal", func(t *testing.T) {
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getRevenue.ErrInternal)
		w := get(NewHandler(uc, logger.Nop()), "/revenue")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "0.00")
	})
}
