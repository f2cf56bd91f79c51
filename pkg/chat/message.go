package chat

// Message representa una mensaje guardada en el historial de una sesión
// de conversación. Timestamp es ISO 8601 para que el historial sea
// ordenable como texto.
type Message struct {
	ID        string      `json:"id"`
	SessionID string      `json:"session_id"`
	Sender    string      `json:"sender"`
	Text      string      `json:"text"`
	Type      string      `json:"type,omitempty"`
	Intent    string      `json:"intent,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// Remitentes válidos de un mensaje
const (
	SenderUser = "user"
	SenderBot  = "bot"
)
