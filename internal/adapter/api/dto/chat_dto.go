package dto

// ChatRequest representa un mensaje entrante del usuario
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

// ChatMessage representa un mensaje tal como lo muestra la interfaz
type ChatMessage struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Sender    string      `json:"sender"`
	Timestamp string      `json:"timestamp"`
	Type      string      `json:"type,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Intent    string      `json:"intent,omitempty"`
}
