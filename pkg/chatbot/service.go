package chatbot

import (
	"context"

	"github.com/orozcodev/comedor-pos/pkg/gateway"
	"github.com/orozcodev/comedor-pos/pkg/logger"
)

const genericErrorMessage = "Lo siento, ocurrió un error inesperado al procesar tu mensaje. Intenta de nuevo en un momento."

// ChatBotService orquesta el ciclo completo de un mensaje: detección de
// intención, ejecución de la acción y generación de la respuesta
type ChatBotService struct {
	logger   logger.Logger
	registry *IntentRegistry
	executor *ActionExecutor
}

// NewChatBotService crea el servicio con sus colaboradores sobre el
// gateway dado
func NewChatBotService(gw gateway.Gateway, log logger.Logger) *ChatBotService {
	return &ChatBotService{
		logger:   log,
		registry: NewIntentRegistry(gw, log),
		executor: NewActionExecutor(gw, log),
	}
}

// ProcessMessage procesa un mensaje del usuario contra las intenciones
// dadas. Nunca retorna error: cualquier falla interna degrada a una
// respuesta de tipo "error" y un pánico inesperado a un mensaje genérico.
func (s *ChatBotService) ProcessMessage(ctx context.Context, message string, intents []Intent) (response ChatResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Pánico al procesar el mensaje", "panic", r, "message", message)
			response = ChatResponse{Message: genericErrorMessage, Type: ResponseTypeError}
		}
	}()

	intent := DetectIntent(message, intents)
	if intent == nil {
		s.logger.Debug("Ninguna intención superó el umbral", "message", message)
		return HandleFallback(message)
	}

	s.logger.Info("Intención detectada", "intent", intent.Name, "action", intent.Action)

	result := s.executor.Execute(ctx, intent.Action, message)
	text := GenerateResponse(intent.ResponseTemplate, result, message)

	if result.Err != "" {
		return ChatResponse{Message: text, Type: ResponseTypeError, Intent: intent.Name}
	}

	resp := ChatResponse{Message: text, Type: ResponseTypeData, Intent: intent.Name}
	if result.Data != nil {
		resp.Data = result.Data.Payload()
	}
	return resp
}

// LoadIntents expone la carga de intenciones del registro
func (s *ChatBotService) LoadIntents(ctx context.Context) ([]Intent, error) {
	return s.registry.LoadIntents(ctx)
}

// SaveIntents expone el guardado de intenciones del registro
func (s *ChatBotService) SaveIntents(ctx context.Context, intents []Intent) error {
	return s.registry.SaveIntents(ctx, intents)
}

// SeedDefaultIntents expone la siembra de las intenciones por defecto
func (s *ChatBotService) SeedDefaultIntents(ctx context.Context) ([]Intent, error) {
	return s.registry.SeedDefaultIntents(ctx)
}
