package chat_step

import (
	"github.com/yaday/YND-BookingService/internal/chatflow"
)

// ChatStepRequest HTTP request model. Состояние диалога живет на клиенте
// и присылается целиком с каждым событием.
type ChatStepRequest struct {
	State chatflow.State `json:"state"`
	Event chatflow.Event `json:"event"`
}

// ChatStepResponse HTTP response model
type ChatStepResponse struct {
	State  chatflow.State `json:"state"`
	Prompt string         `json:"prompt"`
}
