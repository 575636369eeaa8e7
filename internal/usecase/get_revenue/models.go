package get_revenue

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Request модель запроса выручки
type Request struct {
	At *time.Time // Опорный момент; по умолчанию текущее время
}

// Response выручка за день, неделю и месяц
type Response struct {
	At      time.Time // Опорный момент в часовом поясе барбершопа
	Summary domain.RevenueSummary
}
