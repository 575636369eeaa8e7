package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/events"
	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/timewindow"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	publisher    EventPublisher
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
// location задает календарь для расписания дня и сводки
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		publisher:    publisher,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает все бронирования по возрастанию времени записи
func (s *Service) List(ctx context.Context) ([]models.BookingResponse, error) {
	s.logger.Info("List: fetching all bookings")

	bookings, err := s.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, s.repositoryError("List", err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		return nil, s.repositoryError("GetByID", err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование
// Повторное удаление того же ID возвращает ErrBookingNotFound
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	var deleted *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if err := s.bookingRepo.Delete(txCtx, id); err != nil {
			return err
		}

		deleted = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		return s.repositoryError("Delete", err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)

	s.publisher.PublishBookingEvent(ctx, events.TypeBookingDeleted, deleted)

	return nil
}

// DaySchedule возвращает записи календарного дня date (в часовом поясе барбершопа)
// и точную сумму их стоимости
func (s *Service) DaySchedule(ctx context.Context, date time.Time) (*models.DayScheduleResponse, error) {
	y, m, d := date.Date()
	window := timewindow.Day(time.Date(y, m, d, 0, 0, 0, 0, s.location))

	s.logger.Info("DaySchedule: fetching bookings for date=%s", window.Start.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.FindInRange(ctx, window.Start, window.End)
	if err != nil {
		return nil, s.repositoryError("DaySchedule", err)
	}

	schedule := &domain.DaySchedule{
		Date:     window.Start,
		Bookings: bookings,
		Total:    domain.SumValues(bookings, window),
	}

	s.logger.Info("DaySchedule: %d bookings, total=%s", len(bookings), schedule.Total.StringFixed(2))
	return models.FromDomainDaySchedule(schedule), nil
}

// Dashboard возвращает число записей на сегодня и ближайшего клиента
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	now := s.timeProvider.Now().In(s.location)
	today := timewindow.Day(now)

	s.logger.Info("Dashboard: now=%s", now.Format(domain.InstantFormat))

	var dashboard domain.Dashboard

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		count, err := s.bookingRepo.CountInRange(txCtx, today.Start, today.End)
		if err != nil {
			return err
		}

		next, err := s.bookingRepo.FindNextAfter(txCtx, now)
		if err != nil {
			return err
		}

		dashboard = domain.Dashboard{BookingsToday: count, NextClient: next}
		return nil
	})

	if err != nil {
		return nil, s.repositoryError("Dashboard", err)
	}

	return models.FromDomainDashboard(&dashboard), nil
}

// repositoryError логирует ошибку хранилища и переводит её в ошибку сервиса
func (s *Service) repositoryError(op string, err error) error {
	if errors.Is(err, bookingRepo.ErrQueryTimeout) || errors.Is(err, context.DeadlineExceeded) {
		s.logger.Error("%s: store timeout: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrTimeout, op, err)
	}

	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
