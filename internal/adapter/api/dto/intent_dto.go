package dto

import (
	"github.com/orozcodev/comedor-pos/pkg/chatbot"
)

// IntentListResponse es la respuesta del listado de intenciones
type IntentListResponse struct {
	Intents []chatbot.Intent `json:"intents"`
	Count   int              `json:"count"`
}

// SaveIntentsRequest es el cuerpo para reemplazar el conjunto de
// intenciones completo
type SaveIntentsRequest struct {
	Intents []chatbot.Intent `json:"intents" binding:"required"`
}
