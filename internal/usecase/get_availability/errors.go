package get_availability

import "errors"

var (
	// ErrMissingDate возвращается, когда параметр fecha не передан
	ErrMissingDate = errors.New("get_availability: fecha parameter is required")

	// ErrInvalidDateFormat возвращается, когда fecha не соответствует форме YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("get_availability: invalid fecha format")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
