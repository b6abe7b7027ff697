package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaday/YND-BookingService/internal/domain"
	bookingRepo "github.com/yaday/YND-BookingService/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	dispatcher  NotificationDispatcher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	dispatcher NotificationDispatcher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости слота и вставка выполняются в одной сериализуемой
// транзакции: из двух конкурентных запросов на одну пару (fecha, hora)
// второй получает ErrSlotNotAvailable. Уведомления отправляются после
// фиксации транзакции и не влияют на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: servicio=%q, fecha=%s, hora=%s", req.Servicio, req.Fecha, req.Hora)

	// 1. Валидация входных данных
	parsed, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 2. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Занятые слоты на дату (с блокировкой FOR UPDATE)
		occupied, err := uc.bookingRepo.GetOccupiedSlots(txCtx, parsed.FechaRaw)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get occupied slots: %v", err)
			return fmt.Errorf("%w: failed to get occupied slots: %v", ErrInternal, err)
		}

		for _, hora := range occupied {
			if hora == parsed.Hora {
				uc.logger.Warn("CreateBooking: slot %s on %s already taken", parsed.Hora, parsed.FechaRaw)
				return ErrSlotNotAvailable
			}
		}

		// 2.2. Вставка бронирования
		booking := &domain.Booking{
			Nombre:   parsed.Nombre,
			Email:    parsed.Email,
			Telefono: parsed.Telefono,
			Servicio: parsed.Servicio,
			Fecha:    parsed.Fecha,
			Hora:     parsed.Hora,
			Mensaje:  parsed.Mensaje,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс (fecha, hora) — страховка на случай, когда
			// конкурентная вставка прошла между проверкой и INSERT
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: unique index rejected slot %s on %s", parsed.Hora, parsed.FechaRaw)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 3. Уведомления после фиксации: fire-and-forget, сбои только логируются
	uc.dispatcher.Dispatch(result)

	return &Response{
		ID:        result.ID,
		Nombre:    result.Nombre,
		Email:     result.Email,
		Telefono:  result.Telefono,
		Servicio:  result.Servicio,
		Fecha:     result.Fecha,
		Hora:      result.Hora,
		Mensaje:   result.Mensaje,
		CreatedAt: result.CreatedAt,
	}, nil
}
