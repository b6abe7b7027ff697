package get_availability

import (
	getAvailability "github.com/yaday/YND-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Fecha         string   `json:"fecha"`
	HorasOcupadas []string `json:"horasOcupadas"`
	Total         int      `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// HorasOcupadas сериализуется пустым массивом, а не null.
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	horas := make([]string, 0, len(resp.HorasOcupadas))
	for _, h := range resp.HorasOcupadas {
		horas = append(horas, h.String())
	}

	return &AvailabilityResponse{
		Fecha:         resp.Fecha,
		HorasOcupadas: horas,
		Total:         resp.Total,
	}
}
