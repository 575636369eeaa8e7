package create_booking

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// validateRequest валидирует нормализованные поля бронирования
func validateRequest(fields domain.BookingFields) error {
	if !fields.HasValidName() {
		return fmt.Errorf("%w: clientName must be at least %d characters", ErrInvalidInput, domain.MinClientNameLength)
	}

	if utf8.RuneCountInString(fields.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName must be at most %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if fields.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: scheduledAt is required", ErrInvalidInput)
	}

	if !fields.HasValidValue() {
		return fmt.Errorf("%w: value must not be negative", ErrInvalidInput)
	}

	if !fields.HasValidScale() {
		return fmt.Errorf("%w: value must have at most %d decimal places", ErrInvalidInput, domain.ValueScale)
	}

	if !fields.WithinMaxValue() {
		return fmt.Errorf("%w: value must not exceed %s", ErrInvalidInput, domain.MaxValue.StringFixed(domain.ValueScale))
	}

	return nil
}
