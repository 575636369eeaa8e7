package update_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrSlotConflict возвращается, когда новое время занято другой записью
	ErrSlotConflict = errors.New("update_booking: slot is already booked")

	// ErrTimeout возвращается, когда хранилище не ответило вовремя
	ErrTimeout = errors.New("update_booking: store timeout")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
