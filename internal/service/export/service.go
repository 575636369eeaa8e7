package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBooking/pkg/timewindow"
)

const (
	sheetName = "Bookings"

	// MaxRangeDays ограничение периода выгрузки
	MaxRangeDays = 366
)

var header = []string{"ID", "Клиент", "Дата", "Время", "Стоимость"}

// ContentType MIME-тип выгрузки
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Service выгрузка бронирований в XLSX
type Service struct {
	bookingRepo BookingRepository
	location    *time.Location
	logger      Logger
}

// NewService создает новый экземпляр сервиса выгрузки
func NewService(bookingRepo BookingRepository, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{bookingRepo: bookingRepo, location: location, logger: logger}
}

// Export пишет в w книгу с бронированиями дат from..to (обе включительно)
// Последняя строка содержит итоговую сумму
func (s *Service) Export(ctx context.Context, from, to time.Time, w io.Writer) error {
	start := timewindow.StartOfDay(s.date(from))
	end := timewindow.EndOfDay(s.date(to))

	s.logger.Info("Export: bookings from=%s to=%s", start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	if end.Before(start) {
		return fmt.Errorf("%w: from %s is after to %s", ErrInvalidRange,
			start.Format(domain.DateFormat), end.Format(domain.DateFormat))
	}
	if start.AddDate(0, 0, MaxRangeDays).Before(end) {
		return fmt.Errorf("%w: range exceeds %d days", ErrInvalidRange, MaxRangeDays)
	}

	bookings, err := s.bookingRepo.FindInRange(ctx, start, end)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrQueryTimeout) || errors.Is(err, context.DeadlineExceeded) {
			s.logger.Error("Export: store timeout: %v", err)
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		s.logger.Error("Export: repository error: %v", err)
		return fmt.Errorf("%w: Export - repository error: %v", ErrInternal, err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := s.writeSheet(f, bookings, timewindow.Window{Start: start, End: end}); err != nil {
		s.logger.Error("Export: failed to build workbook: %v", err)
		return fmt.Errorf("%w: build workbook: %v", ErrInternal, err)
	}

	if err := f.Write(w); err != nil {
		s.logger.Error("Export: failed to write workbook: %v", err)
		return fmt.Errorf("%w: write workbook: %v", ErrInternal, err)
	}

	s.logger.Info("Export: exported %d bookings", len(bookings))
	return nil
}

func (s *Service) writeSheet(f *excelize.File, bookings []*domain.Booking, window timewindow.Window) error {
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(sheetName, "A1", "E1", bold)
	}

	row := 2
	for _, b := range bookings {
		at := b.ScheduledAt.In(s.location)
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}

		values := []interface{}{
			b.ID,
			b.ClientName,
			at.Format(domain.DateFormat),
			at.Format(domain.TimeFormat),
			b.Value.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
		row++
	}

	// Итог считается по decimal, в ячейку пишется только результат
	total := domain.SumValues(bookings, window)
	totalCell, err := excelize.CoordinatesToCellName(4, row)
	if err != nil {
		return err
	}
	totalRow := []interface{}{"Итого", total.InexactFloat64()}
	return f.SetSheetRow(sheetName, totalCell, &totalRow)
}

// date переносит календарную дату в часовой пояс барбершопа
func (s *Service) date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.location)
}
