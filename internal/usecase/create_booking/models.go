package create_booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientName  string          // Имя клиента (не короче 2 символов после обрезки пробелов)
	ScheduledAt time.Time       // Момент записи
	Value       decimal.Decimal // Стоимость услуги (>= 0)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	ClientName  string
	ScheduledAt time.Time
	Value       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
