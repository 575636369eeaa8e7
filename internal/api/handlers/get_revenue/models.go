package get_revenue

import (
	"time"

	getRevenue "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_revenue"
	"github.com/m04kA/SMC-BarberBooking/pkg/timewindow"
)

// RevenueResponse HTTP response model
// Суммы передаются строкой с двумя знаками после запятой, границы окон отдельно
type RevenueResponse struct {
	At      string         `json:"at"`
	Day     string         `json:"day"`
	Week    string         `json:"week"`
	Month   string         `json:"month"`
	Windows RevenueWindows `json:"windows"`
}

// RevenueWindows границы окон, по которым посчитаны суммы
type RevenueWindows struct {
	Day   WindowBounds `json:"day"`
	Week  WindowBounds `json:"week"`
	Month WindowBounds `json:"month"`
}

// WindowBounds включительные границы окна
type WindowBounds struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func bounds(w timewindow.Window) WindowBounds {
	return WindowBounds{
		From: w.Start.Format(time.RFC3339),
		To:   w.End.Format(time.RFC3339),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRevenue.Response) *RevenueResponse {
	s := resp.Summary
	return &RevenueResponse{
		At:    resp.At.Format(time.RFC3339),
		Day:   s.Day.StringFixed(2),
		Week:  s.Week.StringFixed(2),
		Month: s.Month.StringFixed(2),
		Windows: RevenueWindows{
			Day:   bounds(s.DayWindow),
			Week:  bounds(s.WeekWindow),
			Month: bounds(s.MonthWindow),
		},
	}
}
