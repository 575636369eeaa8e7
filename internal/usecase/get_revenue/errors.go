package get_revenue

import "errors"

var (
	// ErrTimeout возвращается, когда хранилище не ответило вовремя
	ErrTimeout = errors.New("get_revenue: store timeout")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Сумма при ошибке хранилища никогда не подменяется нулём
	ErrInternal = errors.New("get_revenue: internal error")
)
