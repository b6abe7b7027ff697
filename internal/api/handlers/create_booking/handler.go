package create_booking

import (
	"errors"
	"net/http"

	"github.com/yaday/YND-BookingService/internal/api/handlers"
	createBooking "github.com/yaday/YND-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgMissingFields      = "Faltan campos requeridos"
	msgInvalidEmail       = "Email inválido"
	msgInvalidPhone       = "Teléfono inválido"
	msgInvalidDate        = "Fecha inválida"
	msgInvalidTimeSlot    = "Hora inválida"
	msgSlotNotAvailable   = "La hora seleccionada ya no está disponible"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingFields):
			h.logger.Warn("POST /bookings - Missing required fields: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrInvalidEmail):
			h.logger.Warn("POST /bookings - Invalid email: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, createBooking.ErrInvalidPhone):
			h.logger.Warn("POST /bookings - Invalid phone: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: fecha=%s", req.Fecha)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: hora=%s", req.Hora)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: fecha=%s, hora=%s", req.Fecha, req.Hora)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: fecha=%s, hora=%s, error=%v",
				req.Fecha, req.Hora, err)
			handlers.RespondInternalError(w, err.Error())
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, fecha=%s, hora=%s",
		result.ID, req.Fecha, req.Hora)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
