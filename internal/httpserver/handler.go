package httpserver

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "clinic-assistant/internal/assistant/delivery/http"
	"clinic-assistant/internal/middleware"
	"clinic-assistant/internal/model"
	taskHTTP "clinic-assistant/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())

	ctx := context.Background()
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if srv.environment == string(model.EnvironmentProduction) || len(srv.allowOrigins) > 0 {
		corsCfg.AllowOrigins = srv.allowOrigins
		srv.l.Infof(ctx, "CORS mode: %s, origins: %v", srv.environment, srv.allowOrigins)
	} else {
		// Credentials cannot be combined with a wildcard origin.
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
		srv.l.Infof(ctx, "CORS mode: %s, all origins allowed", srv.environment)
	}
	srv.gin.Use(cors.New(corsCfg))
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	assistantHTTP.RegisterRoutes(api, srv.assistantHandler, srv.mw)
	taskHTTP.RegisterRoutes(api, srv.taskHandler, srv.mw)

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.mw.TelegramSecret(), srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	return nil
}
