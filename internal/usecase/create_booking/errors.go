package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotConflict возвращается, когда на это время уже есть запись
	ErrSlotConflict = errors.New("create_booking: slot is already booked")

	// ErrTimeout возвращается, когда хранилище не ответило вовремя
	ErrTimeout = errors.New("create_booking: store timeout")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
