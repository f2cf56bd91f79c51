package chatbot

import (
	"strings"
)

const helpMessage = `🤖 Puedo ayudarte con consultas sobre el negocio:

• Buscar clientes: "buscar cliente juan"
• Ver deudores: "mostrar deudores"
• Deuda de un cliente: "cuánto debe cliente123"
• Ventas de hoy: "ventas de hoy"
• Ver el menú: "mostrar productos"
• Buscar productos: "buscar producto almuerzo"
• Principales deudores: "top deudores"

Escríbeme en lenguaje natural y haré lo posible por entenderte.`

const unknownMessage = `No estoy seguro de cómo ayudarte con eso. Escribe "ayuda" para ver lo que puedo hacer.`

// HandleFallback responde cuando ninguna intención supera el umbral de
// confianza: texto de ayuda si el usuario la pide, o una invitación
// genérica en cualquier otro caso
func HandleFallback(message string) ChatResponse {
	lower := strings.ToLower(message)
	if strings.Contains(lower, "ayuda") || strings.Contains(lower, "help") {
		return ChatResponse{Message: helpMessage, Type: ResponseTypeNormal}
	}
	return ChatResponse{Message: unknownMessage, Type: ResponseTypeNormal}
}
