package route

import (
	"github.com/gin-gonic/gin"

	"github.com/orozcodev/comedor-pos/internal/adapter/api/controller"
)

// SetupAuthRoutes configura las rutas de autenticación
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		// Ruta de login (no requiere autenticación)
		authRouter.POST("/login", authController.Login)
	}
}
