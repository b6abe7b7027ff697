package chat_step

import (
	"errors"
	"net/http"

	"github.com/yaday/YND-BookingService/internal/api/handlers"
	"github.com/yaday/YND-BookingService/internal/chatflow"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgEmptyInput         = "Este campo es obligatorio"
	msgInvalidTransition  = "Acción no válida en este paso"
	msgUnknownEvent       = "Tipo de evento desconocido"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle POST /api/v1/chat/step
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChatStepRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chat/step - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Пустой state трактуется как начало диалога
	if req.State.Step == "" {
		req.State = chatflow.NewState()
	}

	next, prompt, err := chatflow.Apply(req.State, req.Event)
	if err != nil {
		switch {
		case errors.Is(err, chatflow.ErrEmptyInput):
			h.logger.Warn("POST /chat/step - Empty input: step=%s", req.State.Step)
			handlers.RespondBadRequest(w, msgEmptyInput)

		case errors.Is(err, chatflow.ErrInvalidTransition):
			h.logger.Warn("POST /chat/step - Invalid transition: step=%s, event=%s", req.State.Step, req.Event.Type)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, chatflow.ErrUnknownEvent):
			h.logger.Warn("POST /chat/step - Unknown event type: event=%s", req.Event.Type)
			handlers.RespondBadRequest(w, msgUnknownEvent)

		default:
			h.logger.Error("POST /chat/step - Failed to apply event: step=%s, error=%v", req.State.Step, err)
			handlers.RespondInternalError(w, err.Error())
		}
		return
	}

	h.logger.Info("POST /chat/step - Event applied: %s -> %s, event=%s", req.State.Step, next.Step, req.Event.Type)
	handlers.RespondJSON(w, http.StatusOK, ChatStepResponse{
		State:  next,
		Prompt: prompt,
	})
}
