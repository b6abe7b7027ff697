package get_availability

import (
	"errors"
	"net/http"

	"github.com/yaday/YND-BookingService/internal/api/handlers"
	getAvailability "github.com/yaday/YND-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingDate       = "Fecha requerida"
	msgInvalidDateFormat = "Formato de fecha inválido, se espera YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?fecha=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getAvailability.Request{
		Fecha: r.URL.Query().Get("fecha"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrMissingDate):
			h.logger.Warn("GET /availability - Missing fecha parameter")
			handlers.RespondBadRequest(w, msgMissingDate)

		case errors.Is(err, getAvailability.ErrInvalidDateFormat):
			h.logger.Warn("GET /availability - Invalid fecha format: fecha=%s", req.Fecha)
			handlers.RespondBadRequest(w, msgInvalidDateFormat)

		default:
			h.logger.Error("GET /availability - Failed to get occupied slots: fecha=%s, error=%v", req.Fecha, err)
			handlers.RespondInternalError(w, err.Error())
		}
		return
	}

	h.logger.Info("GET /availability - Occupied slots fetched: fecha=%s, total=%d", result.Fecha, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
