package create_booking

import (
	"time"

	"github.com/yaday/YND-BookingService/internal/domain"
	createBooking "github.com/yaday/YND-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Nombre   string  `json:"nombre"`
	Email    string  `json:"email"`
	Telefono *string `json:"telefono,omitempty"`
	Servicio string  `json:"servicio"`
	Fecha    string  `json:"fecha"` // "2025-10-15"
	Hora     string  `json:"hora"`  // "10:30"
	Mensaje  *string `json:"mensaje,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Email     string  `json:"email"`
	Telefono  *string `json:"telefono,omitempty"`
	Servicio  string  `json:"servicio"`
	Fecha     string  `json:"fecha"`
	Hora      string  `json:"hora"`
	Mensaje   *string `json:"mensaje,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// CreateBookingResponse обертка ответа с флагом успеха и сообщением для клиента
type CreateBookingResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Поля передаются сырыми строками: валидация полностью в usecase.
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Nombre:   r.Nombre,
		Email:    r.Email,
		Telefono: r.Telefono,
		Servicio: r.Servicio,
		Fecha:    r.Fecha,
		Hora:     r.Hora,
		Mensaje:  r.Mensaje,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success: true,
		Message: "Reserva creada exitosamente",
		Booking: &BookingResponse{
			ID:        resp.ID,
			Nombre:    resp.Nombre,
			Email:     resp.Email,
			Telefono:  resp.Telefono,
			Servicio:  resp.Servicio,
			Fecha:     resp.Fecha.Format(domain.DateFormat),
			Hora:      resp.Hora.String(),
			Mensaje:   resp.Mensaje,
			CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		},
	}
}
