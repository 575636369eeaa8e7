package domain

// Бизнес-ограничения
const (
	MinClientNameLength = 2
	MaxClientNameLength = 100

	// Стоимость хранится как NUMERIC(12,2)
	ValueScale = 2
)

// Сетка слотов по умолчанию: с 08:00 каждые 30 минут, последний слот в 21:30
const (
	DefaultOpenTime            = "08:00"
	DefaultCloseTime           = "22:00"
	DefaultSlotDurationMinutes = 30
	DefaultTimezone            = "America/Sao_Paulo"
)

// Форматы времени
const (
	TimeFormat    = "15:04"                     // HH:MM
	DateFormat    = "2006-01-02"                // YYYY-MM-DD
	InstantFormat = "2006-01-02T15:04:05Z07:00" // RFC3339
)
