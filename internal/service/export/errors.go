package export

import "errors"

var (
	// ErrInvalidRange возвращается, когда период задан некорректно
	ErrInvalidRange = errors.New("export: invalid date range")

	// ErrTimeout возвращается, когда хранилище не ответило вовремя
	ErrTimeout = errors.New("export: store timeout")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("export: internal error")
)
