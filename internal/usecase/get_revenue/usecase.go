package get_revenue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBooking/pkg/timewindow"
)

// UseCase use case для расчета выручки
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location задает календарь, по которому считаются окна
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute считает три независимые суммы: за день, неделю (с понедельника) и месяц,
// содержащие опорный момент. Все три суммы читаются из одного снимка данных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Опорный момент в часовом поясе барбершопа
	at := uc.timeProvider.Now()
	if req != nil && req.At != nil {
		at = *req.At
	}
	at = at.In(uc.location)

	summary := domain.RevenueSummary{
		DayWindow:   timewindow.Day(at),
		WeekWindow:  timewindow.Week(at),
		MonthWindow: timewindow.Month(at),
	}

	uc.logger.Info("GetRevenue: at=%s, week=%s..%s",
		at.Format(domain.InstantFormat),
		summary.WeekWindow.Start.Format(domain.DateFormat),
		summary.WeekWindow.End.Format(domain.DateFormat))

	// 2. Суммы по окнам
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		if summary.Day, err = uc.sum(txCtx, summary.DayWindow); err != nil {
			return err
		}
		if summary.Week, err = uc.sum(txCtx, summary.WeekWindow); err != nil {
			return err
		}
		if summary.Month, err = uc.sum(txCtx, summary.MonthWindow); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, bookingRepo.ErrQueryTimeout) || errors.Is(err, context.DeadlineExceeded) {
			uc.logger.Error("GetRevenue: store timeout: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		uc.logger.Error("GetRevenue: failed to sum revenue: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("GetRevenue: day=%s, week=%s, month=%s",
		summary.Day.StringFixed(2), summary.Week.StringFixed(2), summary.Month.StringFixed(2))

	return &Response{At: at, Summary: summary}, nil
}

func (uc *UseCase) sum(ctx context.Context, w timewindow.Window) (decimal.Decimal, error) {
	total, err := uc.bookingRepo.SumValueInRange(ctx, w.Start, w.End)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum %s..%s: %w",
			w.Start.Format(domain.InstantFormat), w.End.Format(domain.InstantFormat), err)
	}
	return total, nil
}
