package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil || req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateSchedule проверяет, что из настроек можно построить сетку
func validateSchedule(s domain.SlotSchedule) error {
	if err := s.OpenTime.Validate(); err != nil {
		return fmt.Errorf("invalid open time: %v", err)
	}
	if s.CloseTime.IsZero() {
		return fmt.Errorf("close time is required")
	}
	if !s.OpenTime.IsBefore(s.CloseTime) {
		return fmt.Errorf("open time %s must be before close time %s", s.OpenTime, s.CloseTime)
	}
	if s.SlotDurationMinutes <= 0 {
		return fmt.Errorf("slot duration must be positive, got %d", s.SlotDurationMinutes)
	}
	return nil
}
