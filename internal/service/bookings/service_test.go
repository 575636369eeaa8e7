package bookings

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/events"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/timewindow"
)

// memoryRepo хранилище в памяти с семантикой репозитория
type memoryRepo struct {
	bookings map[int64]*domain.Booking
	err      error
}

func newMemoryRepo(bookings ...*domain.Booking) *memoryRepo {
	r := &memoryRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *memoryRepo) sorted(keep func(*domain.Booking) bool) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if keep(b) {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ScheduledAt.Before(result[j].ScheduledAt) })
	return result
}

func (r *memoryRepo) FindAll(context.Context) ([]*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(func(*domain.Booking) bool { return true }), nil
}

func (r *memoryRepo) FindInRange(_ context.Context, start, end time.Time) ([]*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	w := timewindow.Window{Start: start, End: end}
	return r.sorted(func(b *domain.Booking) bool { return w.Contains(b.ScheduledAt) }), nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *memoryRepo) Delete(_ context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *memoryRepo) CountInRange(ctx context.Context, start, end time.Time) (int, error) {
	found, err := r.FindInRange(ctx, start, end)
	return len(found), err
}

func (r *memoryRepo) FindNextAfter(_ context.Context, after time.Time) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	next := r.sorted(func(b *domain.Booking) bool { return b.ScheduledAt.After(after) })
	if len(next) == 0 {
		return nil, nil
	}
	return next[0], nil
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (inlineTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishBookingEvent(ctx context.Context, eventType string, booking *domain.Booking) {
	m.Called(ctx, eventType, booking)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

var now = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

func fixture() []*domain.Booking {
	return []*domain.Booking{
		{ID: 1, ClientName: "João", ScheduledAt: now.Add(-3 * time.Hour), Value: decimal.RequireFromString("50.00")},
		{ID: 2, ClientName: "Pedro", ScheduledAt: now.Add(2 * time.Hour), Value: decimal.RequireFromString("35.50")},
		{ID: 3, ClientName: "Lucas", ScheduledAt: now.AddDate(0, 0, 1), Value: decimal.RequireFromString("40.00")},
	}
}

func newService(repo *memoryRepo, pub *mockPublisher) *Service {
	s := NewService(repo, inlineTx{}, pub, time.UTC, logger.Nop())
	s.timeProvider = fixedTime{now: now}
	return s
}

func TestService_List_OrderedByScheduledAt(t *testing.T) {
	s := newService(newMemoryRepo(fixture()...), &mockPublisher{})

	list, err := s.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, "35.50", list[1].Value)
}

func TestService_List_EmptyIsNotNil(t *testing.T) {
	list, err := newService(newMemoryRepo(), &mockPublisher{}).List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestService_DeleteThenList(t *testing.T) {
	pub := &mockPublisher{}
	s := newService(newMemoryRepo(fixture()...), pub)

	pub.On("PublishBookingEvent", mock.Anything, events.TypeBookingDeleted, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.ID == 2
	})).Return().Once()

	require.NoError(t, s.Delete(context.Background(), 2))

	list, err := s.List(context.Background())
	require.NoError(t, err)
	for _, b := range list {
		assert.NotEqual(t, int64(2), b.ID)
	}

	// повторное удаление
	assert.ErrorIs(t, s.Delete(context.Background(), 2), ErrBookingNotFound)
	pub.AssertExpectations(t)
}

func TestService_Delete_Missing(t *testing.T) {
	pub := &mockPublisher{}
	s := newService(newMemoryRepo(), pub)

	assert.ErrorIs(t, s.Delete(context.Background(), 42), ErrBookingNotFound)
	assert.ErrorIs(t, s.Delete(context.Background(), 0), ErrInvalidInput)
	pub.AssertNotCalled(t, "PublishBookingEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_GetByID(t *testing.T) {
	s := newService(newMemoryRepo(fixture()...), &mockPublisher{})

	b, err := s.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "João", b.ClientName)

	_, err = s.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_DaySchedule(t *testing.T) {
	s := newService(newMemoryRepo(fixture()...), &mockPublisher{})

	day, err := s.DaySchedule(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, "2026-10-16", day.Date)
	assert.Len(t, day.Bookings, 2)
	assert.Equal(t, "85.50", day.Total)
}

func TestService_Dashboard(t *testing.T) {
	s := newService(newMemoryRepo(fixture()...), &mockPublisher{})

	dashboard, err := s.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, dashboard.BookingsToday)
	require.NotNil(t, dashboard.NextClient)
	assert.Equal(t, "Pedro", dashboard.NextClient.ClientName)
}

func TestService_Dashboard_NoUpcoming(t *testing.T) {
	s := newService(newMemoryRepo(), &mockPublisher{})

	dashboard, err := s.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Zero(t, dashboard.BookingsToday)
	assert.Nil(t, dashboard.NextClient)
}

func TestService_RepositoryErrors(t *testing.T) {
	t.Run("internal", func(t *testing.T) {
		repo := newMemoryRepo()
		repo.err = errors.New("connection refused")

		_, err := newService(repo, &mockPublisher{}).List(context.Background())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("timeout", func(t *testing.T) {
		repo := newMemoryRepo()
		repo.err = bookingRepo.ErrQueryTimeout

		_, err := newService(repo, &mockPublisher{}).Dashboard(context.Background())
		assert.ErrorIs(t, err, ErrTimeout)
	})
}
