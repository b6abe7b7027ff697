package bookings

import (
	"context"
	"fmt"

	"github.com/yaday/YND-BookingService/internal/domain"
	"github.com/yaday/YND-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetRecentBookings получает последние бронирования, новые первыми.
// Выдача ограничена domain.MaxRecentBookings записями.
func (s *Service) GetRecentBookings(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("GetRecentBookings: fetching up to %d bookings", domain.MaxRecentBookings)

	bookings, err := s.bookingRepo.ListRecent(ctx, domain.MaxRecentBookings)
	if err != nil {
		s.logger.Error("GetRecentBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetRecentBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRecentBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}
