package controller

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/orozcodev/comedor-pos/internal/adapter/api/dto"
	"github.com/orozcodev/comedor-pos/pkg/auth"
	"github.com/orozcodev/comedor-pos/pkg/logger"
)

const tokenDuration = 24 * time.Hour

// AuthController gestiona la autenticación del administrador
type AuthController struct {
	logger logger.Logger
}

// NewAuthController crea una nueva instancia de AuthController
func NewAuthController(log logger.Logger) *AuthController {
	return &AuthController{logger: log}
}

// Login verifica las credenciales del administrador y retorna un token JWT.
// El usuario y el hash bcrypt de la contraseña vienen del entorno.
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Solicitud inválida", err.Error()))
		return
	}

	adminUser := os.Getenv("ADMIN_USER")
	passwordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminUser == "" || passwordHash == "" {
		c.logger.Error("Credenciales de administrador no configuradas")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Autenticación no configurada", "Faltan ADMIN_USER o ADMIN_PASSWORD_HASH"))
		return
	}

	if request.User != adminUser ||
		bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(request.Password)) != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciales inválidas", "Usuario o contraseña incorrectos"))
		return
	}

	token, err := auth.GenerateToken(request.User, auth.RoleAdmin, tokenDuration)
	if err != nil {
		c.logger.Error("Error al generar el token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al generar el token", err.Error()))
		return
	}

	c.logger.Info("Administrador autenticado", "user", request.User)
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(tokenDuration.Seconds()),
	})
}
