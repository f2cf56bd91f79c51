package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orozcodev/comedor-pos/internal/adapter/api/controller"
	"github.com/orozcodev/comedor-pos/internal/adapter/api/route"
	infragateway "github.com/orozcodev/comedor-pos/internal/infrastructure/gateway"
	"github.com/orozcodev/comedor-pos/pkg/chat"
	"github.com/orozcodev/comedor-pos/pkg/chatbot"
	"github.com/orozcodev/comedor-pos/pkg/gateway"
	"github.com/orozcodev/comedor-pos/pkg/logger"
)

// App representa la aplicación y sus dependencias
type App struct {
	router  *gin.Engine
	logger  logger.Logger
	pool    *pgxpool.Pool
	service *chatbot.ChatBotService
}

// NewApp crea una nueva instancia de la aplicación
func NewApp() (*App, error) {
	log := logger.NewLogger()

	app := &App{logger: log}

	gw, err := app.newGateway()
	if err != nil {
		return nil, err
	}

	service := chatbot.NewChatBotService(gw, log)
	history := chat.NewRepository(gw, log)

	// Sembrar las intenciones por defecto cuando la colección está vacía
	if err := seedIntentsIfEmpty(service, log); err != nil {
		return nil, err
	}

	chatController := controller.NewChatController(service, history, log)
	intentController := controller.NewIntentController(service, log)
	authController := controller.NewAuthController(log)

	router := gin.Default()
	router.Use(newCORSMiddleware())

	api := router.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	route.SetupChatRoutes(api, chatController)
	route.SetupIntentRoutes(api, intentController)
	route.SetupAuthRoutes(api, authController)

	app.router = router
	app.service = service
	return app, nil
}

// newGateway selecciona el backend de datos según GATEWAY_DRIVER:
// firebase, postgres o memory
func (a *App) newGateway() (gateway.Gateway, error) {
	driver := os.Getenv("GATEWAY_DRIVER")
	switch driver {
	case "firebase":
		config, err := infragateway.NewFirebaseConfigFromEnv()
		if err != nil {
			return nil, err
		}
		a.logger.Info("Usando el gateway de Firebase", "url", config.DatabaseURL)
		return infragateway.NewFirebase(config), nil
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		pool, err := infragateway.NewPostgresPool(ctx)
		if err != nil {
			return nil, err
		}
		a.pool = pool
		a.logger.Info("Usando el gateway de PostgreSQL")
		return infragateway.NewPostgres(pool), nil
	case "memory", "":
		a.logger.Warn("Usando el gateway en memoria; los datos no persisten")
		return gateway.NewMemory(), nil
	default:
		return nil, fmt.Errorf("GATEWAY_DRIVER desconocido: %s", driver)
	}
}

func seedIntentsIfEmpty(service *chatbot.ChatBotService, log logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	intents, err := service.LoadIntents(ctx)
	if err != nil {
		return fmt.Errorf("error al verificar las intenciones: %w", err)
	}
	if len(intents) > 0 {
		return nil
	}

	log.Info("Colección de intenciones vacía; sembrando las intenciones por defecto")
	if _, err := service.SeedDefaultIntents(ctx); err != nil {
		return fmt.Errorf("error al sembrar las intenciones: %w", err)
	}
	return nil
}

func newCORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("ALLOWED_ORIGIN")

	config := cors.DefaultConfig()
	if origin == "" || origin == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = []string{origin}
	}
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")
	return cors.New(config)
}

// Run inicia el servidor HTTP en el puerto configurado
func (a *App) Run() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	a.logger.Info("Servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera los recursos de la aplicación
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
