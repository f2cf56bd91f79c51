package chat

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/orozcodev/comedor-pos/pkg/gateway"
	"github.com/orozcodev/comedor-pos/pkg/logger"
)

// Repository define la interfaz para las operaciones del historial de chat
type Repository interface {
	// SaveMessage guarda un mensaje nuevo en el historial de su sesión
	SaveMessage(ctx context.Context, message *Message) error

	// GetHistory retorna el historial de una sesión en orden cronológico
	GetHistory(ctx context.Context, sessionID string, limit int) ([]Message, error)

	// ClearHistory elimina todo el historial de una sesión
	ClearHistory(ctx context.Context, sessionID string) error
}

const historyPath = "chat_history"

// gatewayRepository persiste el historial como documentos bajo
// chat_history/<session> en el Data Gateway
type gatewayRepository struct {
	gateway gateway.Gateway
	logger  logger.Logger
}

// NewRepository crea un repositorio de historial sobre el gateway dado
func NewRepository(gw gateway.Gateway, log logger.Logger) Repository {
	return &gatewayRepository{gateway: gw, logger: log}
}

func (r *gatewayRepository) SaveMessage(ctx context.Context, message *Message) error {
	if message.SessionID == "" {
		return fmt.Errorf("el mensaje no tiene sesión")
	}
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Timestamp == "" {
		message.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	path := historyPath + "/" + message.SessionID + "/" + message.ID
	if err := r.gateway.Set(ctx, path, message); err != nil {
		return fmt.Errorf("error al guardar el mensaje: %w", err)
	}
	return nil
}

func (r *gatewayRepository) GetHistory(ctx context.Context, sessionID string, limit int) ([]Message, error) {
	var stored map[string]Message
	found, err := r.gateway.Get(ctx, historyPath+"/"+sessionID, &stored)
	if err != nil {
		return nil, fmt.Errorf("error al cargar el historial: %w", err)
	}
	if !found {
		return []Message{}, nil
	}

	messages := make([]Message, 0, len(stored))
	for id, message := range stored {
		if message.ID == "" {
			message.ID = id
		}
		messages = append(messages, message)
	}
	sort.Slice(messages, func(i, j int) bool {
		if messages[i].Timestamp != messages[j].Timestamp {
			return messages[i].Timestamp < messages[j].Timestamp
		}
		return messages[i].ID < messages[j].ID
	})

	// Con límite se conservan los mensajes más recientes
	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	return messages, nil
}

func (r *gatewayRepository) ClearHistory(ctx context.Context, sessionID string) error {
	if err := r.gateway.Remove(ctx, historyPath+"/"+sessionID); err != nil {
		return fmt.Errorf("error al limpiar el historial: %w", err)
	}
	r.logger.Info("Historial de chat eliminado", "session_id", sessionID)
	return nil
}
