package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBooking/pkg/timewindow"
)

// UseCase use case для получения сетки слотов на день
type UseCase struct {
	bookingRepo  BookingRepository
	schedule     domain.SlotSchedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	schedule domain.SlotSchedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки слотов
// Прошедший день даёт пустую сетку, для сегодняшнего дня прошедшие слоты отбрасываются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата и текущее время в часовом поясе барбершопа
	day := uc.schedule.Date(req.Date)
	now := uc.schedule.In(uc.timeProvider.Now())

	uc.logger.Info("GetAvailableSlots: date=%s", day.Format(domain.DateFormat))

	if err := validateSchedule(uc.schedule); err != nil {
		uc.logger.Error("GetAvailableSlots: invalid schedule: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Прошедший день
	if isDateInPast(day, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", day.Format(domain.DateFormat))
		return &Response{Date: day, Slots: []domain.AvailableSlot{}}, nil
	}

	// 4. Генерируем слоты
	timeSlots, err := generateTimeSlots(uc.schedule, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	if isSameDay(day, now) {
		timeSlots = dropPastSlots(timeSlots, now)
	}

	// 5. Бронирования этого дня
	window := timewindow.Day(day)
	bookings, err := uc.bookingRepo.FindInRange(ctx, window.Start, window.End)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrQueryTimeout) || errors.Is(err, context.DeadlineExceeded) {
			uc.logger.Error("GetAvailableSlots: store timeout: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Помечаем занятые слоты
	slots := markBookedSlots(timeSlots, bookings)

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s, %d bookings",
		len(slots), day.Format(domain.DateFormat), len(bookings))

	return &Response{Date: day, Slots: slots}, nil
}
