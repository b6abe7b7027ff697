package create_booking

import (
	"context"

	"github.com/yaday/YND-BookingService/internal/domain"
	"github.com/yaday/YND-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetOccupiedSlots(ctx context.Context, fecha string) ([]types.TimeString, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// NotificationDispatcher интерфейс диспетчера исходящих уведомлений.
// Dispatch не блокирует и никогда не возвращает ошибку: результат
// уведомлений не влияет на судьбу бронирования.
type NotificationDispatcher interface {
	Dispatch(booking *domain.Booking)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
