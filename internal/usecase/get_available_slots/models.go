package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	Date time.Time // Дата (время суток игнорируется)
}

// Response сетка слотов на день
type Response struct {
	Date  time.Time              // Полночь запрошенного дня в часовом поясе барбершопа
	Slots []domain.AvailableSlot // Слоты по возрастанию времени, занятые помечены бронированием
}
