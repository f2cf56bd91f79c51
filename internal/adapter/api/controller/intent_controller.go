package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orozcodev/comedor-pos/internal/adapter/api/dto"
	"github.com/orozcodev/comedor-pos/pkg/chatbot"
	"github.com/orozcodev/comedor-pos/pkg/logger"
)

// IntentController gestiona la configuración de intenciones del asistente
type IntentController struct {
	service *chatbot.ChatBotService
	logger  logger.Logger
}

// NewIntentController crea una nueva instancia de IntentController
func NewIntentController(service *chatbot.ChatBotService, log logger.Logger) *IntentController {
	return &IntentController{
		service: service,
		logger:  log,
	}
}

// List retorna todas las intenciones configuradas, ordenadas por id
func (c *IntentController) List(ctx *gin.Context) {
	intents, err := c.service.LoadIntents(ctx)
	if err != nil {
		c.logger.Error("Error al listar las intenciones", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar las intenciones", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.IntentListResponse{Intents: intents, Count: len(intents)})
}

// Replace sobrescribe el conjunto completo de intenciones
func (c *IntentController) Replace(ctx *gin.Context) {
	var request dto.SaveIntentsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Solicitud inválida", err.Error()))
		return
	}

	if err := c.service.SaveIntents(ctx, request.Intents); err != nil {
		c.logger.Error("Error al guardar las intenciones", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al guardar las intenciones", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Intenciones guardadas", gin.H{"count": len(request.Intents)}))
}

// Seed restaura el conjunto de intenciones por defecto
func (c *IntentController) Seed(ctx *gin.Context) {
	intents, err := c.service.SeedDefaultIntents(ctx)
	if err != nil {
		c.logger.Error("Error al sembrar las intenciones por defecto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al sembrar las intenciones", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Intenciones por defecto restauradas", dto.IntentListResponse{Intents: intents, Count: len(intents)}))
}
