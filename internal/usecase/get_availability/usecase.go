package get_availability

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// dateShapeRegex проверяет только форму YYYY-MM-DD, без валидации календаря.
// Невозможные даты вроде 2024-02-30 проходят проверку; их отклонит БД
// при приведении к date.
var dateShapeRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// UseCase use case для получения занятых слотов на дату
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения занятых слотов.
// Чтение идемпотентно и не имеет побочных эффектов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	fecha := strings.TrimSpace(req.Fecha)

	if fecha == "" {
		uc.logger.Warn("GetAvailability: missing fecha parameter")
		return nil, ErrMissingDate
	}

	if !dateShapeRegex.MatchString(fecha) {
		uc.logger.Warn("GetAvailability: invalid fecha format: %q", fecha)
		return nil, ErrInvalidDateFormat
	}

	horas, err := uc.bookingRepo.GetOccupiedSlots(ctx, fecha)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get occupied slots for fecha=%s: %v", fecha, err)
		return nil, fmt.Errorf("%w: failed to get occupied slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: fecha=%s, occupied=%d", fecha, len(horas))

	return &Response{
		Fecha:         fecha,
		HorasOcupadas: horas,
		Total:         len(horas),
	}, nil
}
