package list_bookings

import (
	"context"

	"github.com/yaday/YND-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetRecentBookings(ctx context.Context) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
