package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/events"
)

// UseCase use case для обновления бронирования
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	publisher   EventPublisher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute обновляет бронирование
// Новое время проверяется на конфликт со всеми записями, кроме самой обновляемой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	fields := domain.BookingFields{
		ClientName:  req.ClientName,
		ScheduledAt: req.ScheduledAt,
		Value:       req.Value,
	}.Normalize()

	uc.logger.Info("UpdateBooking: id=%d, client=%q, scheduledAt=%s, value=%s",
		req.ID, fields.ClientName, fields.ScheduledAt.Format(domain.InstantFormat), fields.Value.StringFixed(2))

	// 1. Валидация входных данных
	if err := validateRequest(req.ID, fields); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Проверка существования, слота и обновление в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Бронирование должно существовать
		if _, err := uc.bookingRepo.GetByID(txCtx, req.ID); err != nil {
			return err
		}

		// 2.2. Новое время не должно совпадать с чужой записью
		existing, err := uc.bookingRepo.FindByExactTime(txCtx, fields.ScheduledAt)
		if err != nil {
			return err
		}

		decision := domain.CheckSlot(fields.ScheduledAt, existing, req.ID)
		if !decision.Admitted {
			return fmt.Errorf("%w: %s is taken by booking id=%d",
				ErrSlotConflict, fields.ScheduledAt.Format(domain.InstantFormat), decision.Conflict.ID)
		}

		// 2.3. Сохраняем изменения
		updated, err := uc.bookingRepo.Update(txCtx, req.ID, fields)
		if err != nil {
			return err
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, uc.handleError(req.ID, err)
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)

	uc.publisher.PublishBookingEvent(ctx, events.TypeBookingUpdated, result)

	return &Response{
		ID:          result.ID,
		ClientName:  result.ClientName,
		ScheduledAt: result.ScheduledAt,
		Value:       result.Value,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

func (uc *UseCase) handleError(id int64, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		uc.logger.Warn("UpdateBooking: booking id=%d not found", id)
		return ErrBookingNotFound
	case errors.Is(err, ErrSlotConflict):
		uc.logger.Warn("UpdateBooking: %v", err)
		return err
	case bookingRepo.IsSlotConflict(err):
		uc.logger.Warn("UpdateBooking: concurrent write for the same slot: %v", err)
		return fmt.Errorf("%w: %v", ErrSlotConflict, err)
	case errors.Is(err, bookingRepo.ErrQueryTimeout), errors.Is(err, context.DeadlineExceeded):
		uc.logger.Error("UpdateBooking: store timeout for id=%d: %v", id, err)
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	default:
		uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
