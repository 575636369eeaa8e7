package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// value принимается и числом, и строкой ("50.00")
type CreateBookingRequest struct {
	ClientName  string           `json:"clientName" validate:"required,min=2,max=100"`
	ScheduledAt string           `json:"scheduledAt" validate:"required"` // RFC 3339
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
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	scheduledAt, err := time.Parse(domain.InstantFormat, r.ScheduledAt)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientName:  r.ClientName,
		ScheduledAt: scheduledAt,
		Value:       *r.Value,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		ClientName:  resp.ClientName,
		ScheduledAt: resp.ScheduledAt.Format(time.RFC3339),
		Value:       resp.Value.StringFixed(2),
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
