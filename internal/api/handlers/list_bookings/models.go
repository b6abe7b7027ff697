package list_bookings

import (
	"github.com/yaday/YND-BookingService/internal/service/bookings/models"
)

// ListBookingsResponse HTTP response model
type ListBookingsResponse struct {
	Success  bool                     `json:"success"`
	Bookings []models.BookingResponse `json:"bookings"`
	Count    int                      `json:"count"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingListResponse) *ListBookingsResponse {
	return &ListBookingsResponse{
		Success:  true,
		Bookings: resp.Bookings,
		Count:    resp.Count,
	}
}
