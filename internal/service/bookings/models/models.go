package models

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// BookingResponse ответ с данными бронирования
// Денежные суммы передаются строкой с двумя знаками после запятой
type BookingResponse struct {
	ID          int64     `json:"id"`
	ClientName  string    `json:"clientName"`
	ScheduledAt time.Time `json:"scheduledAt"` // RFC 3339
	Value       string    `json:"value"`       // "50.00"
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DayScheduleResponse записи одного дня с итоговой суммой
type DayScheduleResponse struct {
	Date     string            `json:"date"` // "2026-10-16"
	Bookings []BookingResponse `json:"bookings"`
	Total    string            `json:"total"`
}

// DashboardResponse сводка на текущий момент
type DashboardResponse struct {
	BookingsToday int              `json:"bookingsToday"`
	NextClient    *BookingResponse `json:"nextClient"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		ClientName:  b.ClientName,
		ScheduledAt: b.ScheduledAt,
		Value:       b.Value.StringFixed(2),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
// Пустой список сериализуется как [], а не null
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp = append(resp, *bookingResp)
		}
	}

	return resp
}

// FromDomainDaySchedule конвертирует расписание дня в DTO
func FromDomainDaySchedule(s *domain.DaySchedule) *DayScheduleResponse {
	return &DayScheduleResponse{
		Date:     s.Date.Format(domain.DateFormat),
		Bookings: FromDomainBookingList(s.Bookings),
		Total:    s.Total.StringFixed(2),
	}
}

// FromDomainDashboard конвертирует сводку в DTO
func FromDomainDashboard(d *domain.Dashboard) *DashboardResponse {
	return &DashboardResponse{
		BookingsToday: d.BookingsToday,
		NextClient:    FromDomainBooking(d.NextClient),
	}
}
