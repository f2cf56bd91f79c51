package route

import (
	"github.com/gin-gonic/gin"

	"github.com/orozcodev/comedor-pos/internal/adapter/api/controller"
	"github.com/orozcodev/comedor-pos/pkg/auth"
)

// SetupIntentRoutes configura las rutas de administración de intenciones
func SetupIntentRoutes(router *gin.RouterGroup, intentController *controller.IntentController) {
	// La edición de intenciones requiere autenticación de administrador
	intentRouter := router.Group("/intents")
	intentRouter.Use(auth.JWTAuthMiddleware(), auth.RoleAuthMiddleware(auth.RoleAdmin))
	{
		intentRouter.GET("", intentController.List)
		intentRouter.PUT("", intentController.Replace)
		intentRouter.POST("/seed", intentController.Seed)
	}
}
