package create_booking

import (
	"time"

	"github.com/yaday/YND-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Поля передаются сырыми строками: валидация и парсинг выполняются в usecase,
// чтобы порядок проверок (обязательность → email → телефон → дата/слот)
// не зависел от транспортного слоя.
type Request struct {
	Nombre   string  // имя клиента
	Email    string  // email клиента
	Telefono *string // телефон (опционально)
	Servicio string  // услуга, свободный текст
	Fecha    string  // дата в форме YYYY-MM-DD
	Hora     string  // слот в форме HH:MM из фиксированного набора
	Mensaje  *string // сообщение (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID       int64
	Nombre   string
	Email    string
	Telefono *string
	Servicio string
	Fecha    time.Time
	Hora     types.TimeString
	Mensaje  *string

	CreatedAt time.Time
}
