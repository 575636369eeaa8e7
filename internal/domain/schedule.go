package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// SlotSchedule сетка слотов рабочего дня барбершопа
type SlotSchedule struct {
	OpenTime            types.TimeString // Начало первого слота
	CloseTime           types.TimeString // Конец последнего слота
	SlotDurationMinutes int
	Location            *time.Location // Часовой пояс барбершопа
}

// Loc часовой пояс барбершопа (UTC, если не задан)
func (s SlotSchedule) Loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// In переводит момент времени в часовой пояс барбершопа
func (s SlotSchedule) In(t time.Time) time.Time {
	return t.In(s.Loc())
}

// Date полночь календарной даты date в часовом поясе барбершопа
func (s SlotSchedule) Date(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.Loc())
}

// DaySchedule бронирования одного дня с итоговой суммой
type DaySchedule struct {
	Date     time.Time
	Bookings []*Booking
	Total    decimal.Decimal
}

// Dashboard сводка на текущий момент
type Dashboard struct {
	BookingsToday int
	NextClient    *Booking // Ближайшая запись после текущего момента
}
