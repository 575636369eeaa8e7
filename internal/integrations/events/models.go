package events

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Типы событий (routing key в topic exchange)
const (
	TypeBookingCreated = "booking.created"
	TypeBookingUpdated = "booking.updated"
	TypeBookingDeleted = "booking.deleted"
)

// BookingEvent сообщение об изменении бронирования
type BookingEvent struct {
	Type        string    `json:"type"`
	BookingID   int64     `json:"bookingId"`
	ClientName  string    `json:"clientName,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt,omitempty"`
	Value       string    `json:"value,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// NewBookingEvent собирает событие из бронирования
func NewBookingEvent(eventType string, b *domain.Booking, now time.Time) BookingEvent {
	return BookingEvent{
		Type:        eventType,
		BookingID:   b.ID,
		ClientName:  b.ClientName,
		ScheduledAt: b.ScheduledAt,
		Value:       b.Value.StringFixed(2),
		OccurredAt:  now,
	}
}
