package update_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	updateBooking "github.com/m04kA/SMC-BarberBooking/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
// Поля перезаписываются целиком, как при создании
type UpdateBookingRequest struct {
	ClientName  string           `json:"clientName" validate:"required,min=2,max=100"`
	ScheduledAt string           `json:"scheduledAt" validate:"required"`
	Value       *decimal.Decimal `json:"value" validate:"required"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	ScheduledAt string `json:"scheduledAt"`
	Value       string `json:"value"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(id int64) (*updateBooking.Request, error) {
	scheduledAt, err := time.Parse(domain.InstantFormat, r.ScheduledAt)
	if err != nil {
		return nil, err
	}

	return &updateBooking.Request{
		ID:          id,
		ClientName:  r.ClientName,
		ScheduledAt: scheduledAt,
		Value:       *r.Value,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		ClientName:  resp.ClientName,
		ScheduledAt: resp.ScheduledAt.Format(time.RFC3339),
		Value:       resp.Value.StringFixed(2),
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
