package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/timewindow"
)

// generateTimeSlots генерирует слоты дня с открытия с фиксированным шагом.
// Последний слот должен закончиться не позже закрытия.
func generateTimeSlots(schedule domain.SlotSchedule, day time.Time) ([]time.Time, error) {
	slots := make([]time.Time, 0)
	current := schedule.OpenTime

	for current.IsBefore(schedule.CloseTime) {
		slotEnd, err := current.AddMinutes(schedule.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(schedule.CloseTime) {
			break
		}

		slots = append(slots, current.On(day))
		current = slotEnd
	}

	return slots, nil
}

// dropPastSlots убирает слоты, которые начинаются раньше now
func dropPastSlots(slots []time.Time, now time.Time) []time.Time {
	result := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		if !s.Before(now) {
			result = append(result, s)
		}
	}
	return result
}

// markBookedSlots сопоставляет слоты с бронированиями через ту же проверку, что и при записи
func markBookedSlots(slots []time.Time, bookings []*domain.Booking) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, len(slots))

	for i, s := range slots {
		result[i] = domain.AvailableSlot{StartsAt: s}
		if decision := domain.CheckSlot(s, bookings, 0); !decision.Admitted {
			result[i].Booking = decision.Conflict
		}
	}

	return result
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return timewindow.StartOfDay(date).Before(timewindow.StartOfDay(now))
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	return timewindow.StartOfDay(date1).Equal(timewindow.StartOfDay(date2))
}

