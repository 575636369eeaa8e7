package domain

import "time"

// SlotDecision результат проверки слота
type SlotDecision struct {
	Admitted bool
	Conflict *Booking // Бронирование, уже занимающее слот (nil, если Admitted)
}

// CheckSlot проверяет, свободен ли момент candidate среди existing.
// Конфликтом считается только точное совпадение времени (с точностью до секунды),
// пересечение интервалов не проверяется. Бронирование с ID == excludeID
// пропускается, чтобы обновление записи не конфликтовало само с собой
// (для новой записи передаётся 0).
func CheckSlot(candidate time.Time, existing []*Booking, excludeID int64) SlotDecision {
	slot := NormalizeInstant(candidate)

	for _, b := range existing {
		if b == nil || (excludeID != 0 && b.ID == excludeID) {
			continue
		}
		if NormalizeInstant(b.ScheduledAt).Equal(slot) {
			return SlotDecision{Admitted: false, Conflict: b}
		}
	}

	return SlotDecision{Admitted: true}
}

// AvailableSlot слот сетки расписания на конкретный день
type AvailableSlot struct {
	StartsAt time.Time
	Booking  *Booking // Занявшее слот бронирование, если есть
}

// IsFree true, если слот не занят
func (s *AvailableSlot) IsFree() bool {
	return s.Booking == nil
}
