package route

import (
	"github.com/gin-gonic/gin"

	"github.com/orozcodev/comedor-pos/internal/adapter/api/controller"
)

// SetupChatRoutes configura las rutas del asistente conversacional
func SetupChatRoutes(router *gin.RouterGroup, chatController *controller.ChatController) {
	chatRouter := router.Group("/chat")
	{
		chatRouter.POST("/message", chatController.ProcessMessage)
		chatRouter.GET("/welcome", chatController.GetWelcome)
		chatRouter.GET("/history", chatController.GetHistory)
		chatRouter.DELETE("/history", chatController.ClearHistory)
	}
}
