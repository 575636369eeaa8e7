package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateSlot возвращается, когда время уже занято (уникальный индекс
	// или конфликт сериализации)
	ErrDuplicateSlot = errors.New("booking.repository: slot already taken")

	// ErrQueryTimeout возвращается, когда запрос не уложился в таймаут
	ErrQueryTimeout = errors.New("booking.repository: query timeout")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
