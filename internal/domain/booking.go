package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Booking запись клиента барбершопа на конкретный момент времени
type Booking struct {
	ID          int64
	ClientName  string
	ScheduledAt time.Time       // Момент записи с точностью до секунды
	Value       decimal.Decimal // Стоимость услуги, хранится как NUMERIC без потери точности

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MaxValue наибольшая стоимость, которая помещается в NUMERIC(12,2)
var MaxValue = decimal.RequireFromString("9999999999.99")

// BookingFields изменяемые поля бронирования (для создания и обновления)
type BookingFields struct {
	ClientName  string
	ScheduledAt time.Time
	Value       decimal.Decimal
}

// Normalize приводит поля к каноническому виду: обрезает пробелы в имени
// и отбрасывает доли секунды у времени записи
func (f BookingFields) Normalize() BookingFields {
	return BookingFields{
		ClientName:  strings.TrimSpace(f.ClientName),
		ScheduledAt: NormalizeInstant(f.ScheduledAt),
		Value:       f.Value,
	}
}

// HasValidName true, если имя клиента после обрезки пробелов не короче MinClientNameLength
func (f BookingFields) HasValidName() bool {
	return utf8.RuneCountInString(strings.TrimSpace(f.ClientName)) >= MinClientNameLength
}

// HasValidValue true для неотрицательной стоимости
func (f BookingFields) HasValidValue() bool {
	return !f.Value.IsNegative()
}

// HasValidScale true, если у стоимости не больше ValueScale знаков после запятой
func (f BookingFields) HasValidScale() bool {
	return f.Value.Equal(f.Value.Truncate(ValueScale))
}

// WithinMaxValue true, если стоимость не превышает MaxValue
func (f BookingFields) WithinMaxValue() bool {
	return f.Value.LessThanOrEqual(MaxValue)
}

// NormalizeInstant отбрасывает доли секунды: слоты сравниваются с точностью до секунды
func NormalizeInstant(t time.Time) time.Time {
	return t.Truncate(time.Second)
}

// Apply переносит поля в бронирование
func (b *Booking) Apply(f BookingFields) {
	b.ClientName = f.ClientName
	b.ScheduledAt = f.ScheduledAt
	b.Value = f.Value
}

