package update_booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на обновление бронирования
// Все поля перезаписываются целиком
type Request struct {
	ID          int64
	ClientName  string
	ScheduledAt time.Time
	Value       decimal.Decimal
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID          int64
	ClientName  string
	ScheduledAt time.Time
	Value       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
