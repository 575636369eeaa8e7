package get_revenue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/timewindow"
)

// memoryStore хранилище в памяти с той же семантикой границ, что и BETWEEN
type memoryStore struct {
	bookings []*domain.Booking
	err      error
}

func (s *memoryStore) SumValueInRange(_ context.Context, start, end time.Time) (decimal.Decimal, error) {
	if s.err != nil {
		return decimal.Zero, s.err
	}
	return domain.SumValues(s.bookings, timewindow.Window{Start: start, End: end}), nil
}

type inlineTx struct{}

func (inlineTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

func newUseCase(store *memoryStore, now time.Time) *UseCase {
	uc := NewUseCase(store, inlineTx{}, time.UTC, logger.Nop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func booking(id int64, at time.Time, value string) *domain.Booking {
	return &domain.Booking{ID: id, ScheduledAt: at, Value: decimal.RequireFromString(value), ClientName: "Cliente"}
}

// пятница 16 октября 2026, неделя началась в понедельник 12-го
var now = time.Date(2026, time.October, 16, 15, 0, 0, 0, time.UTC)

func TestUseCase_Execute_OverlappingWindows(t *testing.T) {
	store := &memoryStore{bookings: []*domain.Booking{
		booking(1, time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC), "50"),  // сегодня
		booking(2, time.Date(2026, time.October, 13, 18, 0, 0, 0, time.UTC), "30"), // на этой неделе
		booking(3, time.Date(2026, time.October, 2, 10, 0, 0, 0, time.UTC), "20"),   // в этом месяце
	}}

	resp, err := newUseCase(store, now).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Equal(t, "50.00", resp.Summary.Day.StringFixed(2))
	assert.Equal(t, "80.00", resp.Summary.Week.StringFixed(2))
	assert.Equal(t, "100.00", resp.Summary.Month.StringFixed(2))
}

func TestUseCase_Execute_EmptyStoreIsZero(t *testing.T) {
	resp, err := newUseCase(&memoryStore{}, now).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.True(t, resp.Summary.Day.IsZero())
	assert.True(t, resp.Summary.Week.IsZero())
	assert.True(t, resp.Summary.Month.IsZero())
}

func TestUseCase_Execute_WeekBoundaryInclusive(t *testing.T) {
	monday := time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC)
	store := &memoryStore{bookings: []*domain.Booking{
		booking(1, monday, "40"),
		booking(2, monday.Add(-time.Second), "7"),
	}}

	resp, err := newUseCase(store, now).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Equal(t, "40.00", resp.Summary.Week.StringFixed(2))
	assert.Equal(t, "47.00", resp.Summary.Month.StringFixed(2))
	assert.Equal(t, monday, resp.Summary.WeekWindow.Start)
}

func TestUseCase_Execute_ExactDecimalSum(t *testing.T) {
	store := &memoryStore{bookings: []*domain.Booking{
		booking(1, now, "0.10"),
		booking(2, now.Add(time.Minute), "0.20"),
	}}

	resp, err := newUseCase(store, now).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.30").Equal(resp.Summary.Day))
}

func TestUseCase_Execute_ExplicitReferenceInstant(t *testing.T) {
	at := time.Date(2026, time.September, 30, 12, 0, 0, 0, time.UTC)
	store := &memoryStore{bookings: []*domain.Booking{
		booking(1, at, "25"),
		booking(2, now, "50"),
	}}

	resp, err := newUseCase(store, now).Execute(context.Background(), &Request{At: &at})

	require.NoError(t, err)
	assert.Equal(t, "25.00", resp.Summary.Day.StringFixed(2))
	assert.Equal(t, "25.00", resp.Summary.Month.StringFixed(2))
	// неделя 28 сентября - 4 октября
	assert.Equal(t, "25.00", resp.Summary.Week.StringFixed(2))
}

func TestUseCase_Execute_UsesShopTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 01:00 UTC субботы: ещё пятница 22:00 в Сан-Паулу
	store := &memoryStore{bookings: []*domain.Booking{
		booking(1, time.Date(2026, time.October, 17, 1, 0, 0, 0, time.UTC), "60"),
	}}
	uc := NewUseCase(store, inlineTx{}, loc, logger.Nop())
	uc.timeProvider = fixedTime{now: now}

	resp, err := uc.Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Equal(t, "60.00", resp.Summary.Day.StringFixed(2))
}

func TestUseCase_Execute_StoreFailure(t *testing.T) {
	t.Run("error is not reported as zero", func(t *testing.T) {
		resp, err := newUseCase(&memoryStore{err: errors.New("connection refused")}, now).
			Execute(context.Background(), &Request{})

		assert.ErrorIs(t, err, ErrInternal)
		assert.Nil(t, resp)
	})

	t.Run("timeout", func(t *testing.T) {
		_, err := newUseCase(&memoryStore{err: bookingRepo.ErrQueryTimeout}, now).
			Execute(context.Background(), &Request{})

		assert.ErrorIs(t, err, ErrTimeout)
	})
}
