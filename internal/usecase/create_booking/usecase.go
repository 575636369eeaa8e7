package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/events"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	publisher   EventPublisher
	metrics     AdmissionMetrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics AdmissionMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		publisher:   publisher,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка слота и вставка выполняются в одной сериализуемой транзакции,
// уникальный индекс по scheduled_at отсекает оставшиеся гонки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	fields := domain.BookingFields{
		ClientName:  req.ClientName,
		ScheduledAt: req.ScheduledAt,
		Value:       req.Value,
	}.Normalize()

	uc.logger.Info("CreateBooking: client=%q, scheduledAt=%s, value=%s",
		fields.ClientName, fields.ScheduledAt.Format(domain.InstantFormat), fields.Value.StringFixed(2))

	// 1. Валидация входных данных
	if err := validateRequest(fields); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.IncBookingAdmission(metrics.AdmissionInvalid)
		return nil, err
	}

	var result *domain.Booking

	// 2. Проверка слота и сохранение в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Бронирования на тот же момент (с блокировкой FOR UPDATE)
		existing, err := uc.bookingRepo.FindByExactTime(txCtx, fields.ScheduledAt)
		if err != nil {
			return err
		}

		// 2.2. Точное совпадение времени означает конфликт
		decision := domain.CheckSlot(fields.ScheduledAt, existing, 0)
		if !decision.Admitted {
			return fmt.Errorf("%w: %s is taken by booking id=%d",
				ErrSlotConflict, fields.ScheduledAt.Format(domain.InstantFormat), decision.Conflict.ID)
		}

		// 2.3. Сохраняем бронирование
		booking := &domain.Booking{}
		booking.Apply(fields)

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.handleError(err)
	}

	uc.metrics.IncBookingAdmission(metrics.AdmissionAdmitted)
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 3. Событие публикуется после фиксации транзакции
	uc.publisher.PublishBookingEvent(ctx, events.TypeBookingCreated, result)

	return &Response{
		ID:          result.ID,
		ClientName:  result.ClientName,
		ScheduledAt: result.ScheduledAt,
		Value:       result.Value,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

// handleError переводит ошибку транзакции в ошибку usecase и фиксирует исход в метриках
func (uc *UseCase) handleError(err error) error {
	switch {
	case errors.Is(err, ErrSlotConflict):
		uc.logger.Warn("CreateBooking: %v", err)
		uc.metrics.IncBookingAdmission(metrics.AdmissionConflict)
		return err
	case bookingRepo.IsSlotConflict(err):
		// Параллельная вставка на то же время успела раньше
		uc.logger.Warn("CreateBooking: concurrent insert for the same slot: %v", err)
		uc.metrics.IncBookingAdmission(metrics.AdmissionConflict)
		return fmt.Errorf("%w: %v", ErrSlotConflict, err)
	case errors.Is(err, bookingRepo.ErrQueryTimeout), errors.Is(err, context.DeadlineExceeded):
		uc.logger.Error("CreateBooking: store timeout: %v", err)
		uc.metrics.IncBookingAdmission(metrics.AdmissionFailed)
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	default:
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		uc.metrics.IncBookingAdmission(metrics.AdmissionFailed)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
