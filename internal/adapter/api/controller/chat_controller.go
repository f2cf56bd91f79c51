package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/orozcodev/comedor-pos/internal/adapter/api/dto"
	"github.com/orozcodev/comedor-pos/pkg/chat"
	"github.com/orozcodev/comedor-pos/pkg/chatbot"
	"github.com/orozcodev/comedor-pos/pkg/logger"
)

const defaultSession = "default"

const welcomeMessage = "👋 ¡Hola! Soy el asistente del comedor. Pregúntame por clientes, deudas, ventas o el menú. Escribe \"ayuda\" para ver ejemplos."

// ChatController gestiona las solicitudes del asistente conversacional
type ChatController struct {
	service *chatbot.ChatBotService
	history chat.Repository
	logger  logger.Logger
}

// NewChatController crea una nueva instancia de ChatController
func NewChatController(service *chatbot.ChatBotService, history chat.Repository, log logger.Logger) *ChatController {
	return &ChatController{
		service: service,
		history: history,
		logger:  log,
	}
}

// ProcessMessage procesa un mensaje del usuario y retorna la respuesta del
// asistente. Siempre responde 200 con una burbuja de chat; las fallas del
// backend llegan como mensajes de tipo "error".
func (c *ChatController) ProcessMessage(ctx *gin.Context) {
	var request dto.ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Solicitud inválida", err.Error()))
		return
	}

	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = defaultSession
	}

	c.saveMessage(ctx, &chat.Message{
		SessionID: sessionID,
		Sender:    chat.SenderUser,
		Text:      request.Message,
	})

	intents, err := c.service.LoadIntents(ctx)
	if err != nil {
		c.logger.Error("Error al cargar las intenciones", "error", err)
		ctx.JSON(http.StatusOK, c.newBotMessage(ctx, sessionID, chatbot.ChatResponse{
			Message: "No pude consultar la configuración del asistente en este momento.",
			Type:    chatbot.ResponseTypeError,
		}))
		return
	}

	response := c.service.ProcessMessage(ctx, request.Message, intents)
	ctx.JSON(http.StatusOK, c.newBotMessage(ctx, sessionID, response))
}

// GetWelcome retorna el mensaje de bienvenida del asistente
func (c *ChatController) GetWelcome(ctx *gin.Context) {
	sessionID := ctx.DefaultQuery("session_id", defaultSession)
	ctx.JSON(http.StatusOK, c.newBotMessage(ctx, sessionID, chatbot.ChatResponse{
		Message: welcomeMessage,
		Type:    chatbot.ResponseTypeWelcome,
	}))
}

// GetHistory retorna el historial de una sesión en orden cronológico
func (c *ChatController) GetHistory(ctx *gin.Context) {
	sessionID := ctx.DefaultQuery("session_id", defaultSession)
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	history, err := c.history.GetHistory(ctx, sessionID, limit)
	if err != nil {
		c.logger.Error("Error al cargar el historial", "error", err, "session_id", sessionID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al cargar el historial", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Historial cargado", history))
}

// ClearHistory elimina el historial de una sesión
func (c *ChatController) ClearHistory(ctx *gin.Context) {
	sessionID := ctx.DefaultQuery("session_id", defaultSession)

	if err := c.history.ClearHistory(ctx, sessionID); err != nil {
		c.logger.Error("Error al limpiar el historial", "error", err, "session_id", sessionID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al limpiar el historial", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Historial eliminado", nil))
}

// newBotMessage envuelve una respuesta del motor como burbuja de chat y la
// guarda en el historial
func (c *ChatController) newBotMessage(ctx context.Context, sessionID string, response chatbot.ChatResponse) dto.ChatMessage {
	message := dto.ChatMessage{
		ID:        uuid.New().String(),
		Text:      response.Message,
		Sender:    chat.SenderBot,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Type:      response.Type,
		Data:      response.Data,
		Intent:    response.Intent,
	}

	c.saveMessage(ctx, &chat.Message{
		ID:        message.ID,
		SessionID: sessionID,
		Sender:    chat.SenderBot,
		Text:      message.Text,
		Type:      message.Type,
		Intent:    message.Intent,
		Data:      message.Data,
		Timestamp: message.Timestamp,
	})
	return message
}

// saveMessage guarda en el historial; una falla aquí no bloquea la
// respuesta al usuario
func (c *ChatController) saveMessage(ctx context.Context, message *chat.Message) {
	if err := c.history.SaveMessage(ctx, message); err != nil {
		c.logger.Warn("No se pudo guardar el mensaje en el historial", "error", err, "session_id", message.SessionID)
	}
}
