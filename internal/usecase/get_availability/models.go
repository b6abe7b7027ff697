package get_availability

import "github.com/yaday/YND-BookingService/pkg/types"

// Request модель запроса занятых слотов
type Request struct {
	Fecha string // дата в форме YYYY-MM-DD, как пришла от клиента
}

// Response модель ответа с занятыми слотами
type Response struct {
	Fecha         string             // дата запроса
	HorasOcupadas []types.TimeString // занятые слоты по возрастанию
	Total         int                // количество занятых слотов
}
