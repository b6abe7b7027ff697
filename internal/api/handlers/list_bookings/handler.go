package list_bookings

import (
	"net/http"

	"github.com/yaday/YND-BookingService/internal/api/handlers"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetRecentBookings(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
		handlers.RespondInternalError(w, err.Error())
		return
	}

	h.logger.Info("GET /bookings - Bookings listed successfully: count=%d", result.Count)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
