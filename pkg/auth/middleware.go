package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orozcodev/comedor-pos/internal/adapter/api/dto"
)

// JWTAuthMiddleware crea un middleware de autenticación JWT para las rutas
// de administración
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticación requerida",
				"No se proporcionó el encabezado Authorization",
			))
			return
		}

		// Verificar el formato "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Formato de token inválido",
				"Usa el formato 'Bearer <token>'",
			))
			return
		}

		claims, err := ValidateToken(tokenParts[1])
		if err != nil {
			message := "Token inválido"
			if err == ErrExpiredToken {
				message = "Token expirado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		c.Set("user", claims.User)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// RoleAuthMiddleware crea un middleware que exige uno de los roles dados
func RoleAuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRoleVal, exists := c.Get("user_role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticación requerida",
				"",
			))
			return
		}

		userRole, _ := userRoleVal.(string)
		for _, r := range roles {
			if userRole == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
			http.StatusForbidden,
			"Acceso denegado",
			"No tienes permiso para acceder a este recurso",
		))
	}
}
