package domain

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BarberBooking/pkg/timewindow"
)

// RevenueSummary выручка за день, неделю и месяц, содержащие опорный момент.
// Окна пересекаются: запись на сегодня входит во все три суммы.
type RevenueSummary struct {
	Day   decimal.Decimal
	Week  decimal.Decimal
	Month decimal.Decimal

	DayWindow   timewindow.Window
	WeekWindow  timewindow.Window
	MonthWindow timewindow.Window
}

// SumValues суммирует стоимость бронирований, попавших в окно
// Пустой набор даёт ноль
func SumValues(bookings []*Booking, window timewindow.Window) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bookings {
		if b == nil || !window.Contains(b.ScheduledAt) {
			continue
		}
		total = total.Add(b.Value)
	}
	return total
}
