package create_booking

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнено обязательное поле
	ErrMissingFields = errors.New("create_booking: missing required fields")

	// ErrInvalidEmail возвращается при email, не похожем на local@domain.tld
	ErrInvalidEmail = errors.New("create_booking: invalid email")

	// ErrInvalidPhone возвращается при телефоне короче 9 цифр или с посторонними символами
	ErrInvalidPhone = errors.New("create_booking: invalid phone")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда hora не входит в фиксированный набор слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
