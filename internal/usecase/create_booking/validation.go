package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/yaday/YND-BookingService/internal/domain"
	"github.com/yaday/YND-BookingService/pkg/types"
)

// emailRegex упрощенная проверка формы local@domain.tld, без полного RFC 5322
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// phoneDigitsRegex телефон после удаления разделителей должен состоять из цифр
var phoneDigitsRegex = regexp.MustCompile(`^\d+$`)

// minPhoneDigits минимальное количество цифр в телефоне
const minPhoneDigits = 9

// phoneSeparators разделители, допустимые в телефоне
var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "", ".", "")

// parsedRequest результат валидации: очищенные и распарсенные поля запроса
type parsedRequest struct {
	Nombre   string
	Email    string
	Telefono *string
	Servicio string
	Fecha    time.Time
	FechaRaw string // исходная строка даты для повторного запроса занятых слотов
	Hora     types.TimeString
	Mensaje  *string
}

// validateRequest валидирует запрос в фиксированном порядке:
// обязательные поля → email → телефон → дата → слот.
// Возвращается первая найденная ошибка.
func validateRequest(req *Request) (*parsedRequest, error) {
	nombre := strings.TrimSpace(req.Nombre)
	email := strings.TrimSpace(req.Email)
	servicio := strings.TrimSpace(req.Servicio)
	fecha := strings.TrimSpace(req.Fecha)
	hora := strings.TrimSpace(req.Hora)

	// 1. Обязательные поля
	if nombre == "" || email == "" || servicio == "" || fecha == "" || hora == "" {
		return nil, ErrMissingFields
	}

	// 2. Форма email
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	// 3. Телефон, если передан
	telefono := normalizeOptional(req.Telefono)
	if telefono != nil {
		digits := phoneSeparators.Replace(*telefono)
		if !phoneDigitsRegex.MatchString(digits) || len(digits) < minPhoneDigits {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPhone, *telefono)
		}
	}

	// 4. Дата: в отличие от запроса доступности, здесь дата парсится полностью —
	// несуществующий календарный день не должен доходить до INSERT в колонку date
	fechaParsed, err := time.Parse(domain.DateFormat, fecha)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, fecha)
	}

	// 5. Слот из фиксированного набора
	horaParsed, err := types.NewTimeStringFromString(hora)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, hora)
	}
	if !domain.IsBookableSlot(horaParsed) {
		return nil, fmt.Errorf("%w: %q is not a bookable slot", ErrInvalidTimeSlot, hora)
	}

	return &parsedRequest{
		Nombre:   nombre,
		Email:    email,
		Telefono: telefono,
		Servicio: servicio,
		Fecha:    fechaParsed,
		FechaRaw: fecha,
		Hora:     horaParsed,
		Mensaje:  normalizeOptional(req.Mensaje),
	}, nil
}

// normalizeOptional обрезает пробелы опционального поля; пустая строка становится nil
func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
