package events

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// NoopPublisher используется, когда события выключены в конфиге
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingEvent(context.Context, string, *domain.Booking) {}

func (NoopPublisher) Close() error { return nil }
