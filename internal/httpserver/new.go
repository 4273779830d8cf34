package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	assistantHTTP "clinic-assistant/internal/assistant/delivery/http"
	assistantTelegram "clinic-assistant/internal/assistant/delivery/telegram"
	"clinic-assistant/internal/middleware"
	"clinic-assistant/internal/model"
	taskHTTP "clinic-assistant/internal/task/delivery/http"
	"clinic-assistant/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	allowOrigins    []string
	shutdownTimeout time.Duration

	mw middleware.Middleware

	// Domain handlers
	assistantHandler assistantHTTP.Handler
	taskHandler      taskHTTP.Handler
	telegramHandler  assistantTelegram.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	AllowOrigins    []string
	ShutdownTimeout time.Duration

	Middleware middleware.Middleware

	AssistantHandler assistantHTTP.Handler
	TaskHandler      taskHTTP.Handler
	// TelegramHandler is optional; the webhook route is skipped when nil.
	TelegramHandler assistantTelegram.Handler
}

// New creates a new HTTPServer instance and maps every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		allowOrigins:     cfg.AllowOrigins,
		shutdownTimeout:  shutdownTimeout,
		mw:               cfg.Middleware,
		assistantHandler: cfg.AssistantHandler,
		taskHandler:      cfg.TaskHandler,
		telegramHandler:  cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.environment == string(model.EnvironmentProduction) && len(srv.allowOrigins) == 0 {
		return errors.New("allowed origins are required in production")
	}
	if srv.assistantHandler == nil {
		return errors.New("assistant handler is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}
