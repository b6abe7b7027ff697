package models

import (
	"time"

	"github.com/yaday/YND-BookingService/internal/domain"
)

// BookingResponse модель бронирования для выдачи наружу.
// JSON-теги повторяют имена колонок таблицы bookings.
type BookingResponse struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Email     string  `json:"email"`
	Telefono  *string `json:"telefono"`
	Servicio  string  `json:"servicio"`
	Fecha     string  `json:"fecha"`
	Hora      string  `json:"hora"`
	Mensaje   *string `json:"mensaje"`
	CreatedAt string  `json:"created_at"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Count    int               `json:"count"`
}

// FromDomainBooking конвертирует domain.Booking в модель выдачи
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Nombre:    b.Nombre,
		Email:     b.Email,
		Telefono:  b.Telefono,
		Servicio:  b.Servicio,
		Fecha:     b.Fecha.Format(domain.DateFormat),
		Hora:      b.Hora.String(),
		Mensaje:   b.Mensaje,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Count:    len(result),
	}
}
