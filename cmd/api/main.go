package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"clinic-assistant/config"
	_ "clinic-assistant/docs" // Swagger docs
	assistantHTTP "clinic-assistant/internal/assistant/delivery/http"
	assistantTelegram "clinic-assistant/internal/assistant/delivery/telegram"
	assistantUC "clinic-assistant/internal/assistant/usecase"
	"clinic-assistant/internal/httpserver"
	"clinic-assistant/internal/middleware"
	"clinic-assistant/internal/model"
	"clinic-assistant/internal/router"
	"clinic-assistant/internal/stats"
	taskHTTP "clinic-assistant/internal/task/delivery/http"
	"clinic-assistant/internal/task/repository"
	taskMemory "clinic-assistant/internal/task/repository/memory"
	taskPostgre "clinic-assistant/internal/task/repository/postgre"
	taskUC "clinic-assistant/internal/task/usecase"
	"clinic-assistant/internal/transcript"
	"clinic-assistant/pkg/datemath"
	"clinic-assistant/pkg/gcalendar"
	"clinic-assistant/pkg/log"
	"clinic-assistant/pkg/postgres"
	"clinic-assistant/pkg/scope"
	"clinic-assistant/pkg/taskparser"
	"clinic-assistant/pkg/telegram"
)

// @title       Clinic Assistant API
// @description Role-aware clinic chat assistant with task capture, Telegram and Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Clinic Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	timezone := cfg.Assistant.Timezone
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Task domain
	var taskRepo repository.Repository
	if cfg.Postgres.DSN != "" {
		pool, pgErr := postgres.Connect(ctx, cfg.Postgres.DSN)
		if pgErr != nil {
			logger.Error(ctx, "Failed to connect to postgres: ", pgErr)
			return
		}
		defer pool.Close()
		if pgErr := taskPostgre.EnsureSchema(ctx, pool); pgErr != nil {
			logger.Error(ctx, "Failed to prepare task schema: ", pgErr)
			return
		}
		taskRepo = taskPostgre.New(pool, logger)
		logger.Info(ctx, "✅ Task repository: postgres")
	} else {
		taskRepo = taskMemory.New(logger)
		logger.Info(ctx, "Task repository: in-memory (postgres.dsn not set)")
	}

	var taskOpts []taskUC.Option
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			taskOpts = append(taskOpts, taskUC.WithCalendar(calendarClient, cfg.GoogleCalendar.CalendarID))
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}
	taskUseCase := taskUC.New(logger, taskRepo, dateMathParser, taskOpts...)

	// 5. Assistant domain
	keywordRouter := router.New(logger, taskparser.New(dateMathParser))
	transcripts := transcript.New(cfg.Assistant.SessionCapacity, cfg.Assistant.SessionTTL)
	assistantUseCase := assistantUC.New(logger, keywordRouter, transcripts, stats.New(model.Stats{}), taskUseCase)

	// 6. Delivery
	mw := middleware.New(logger, scope.New(cfg.JWT.SecretKey, cfg.JWT.Issuer), middleware.Config{
		RateLimitPerMin: cfg.RateLimit.PerMin,
		RateLimitBurst:  cfg.RateLimit.Burst,
		TelegramSecret:  cfg.Telegram.SecretToken,
	})

	var telegramHandler assistantTelegram.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = assistantTelegram.New(logger, assistantUseCase, bot, assistantTelegram.Config{
			Role:         model.ParseRole(cfg.Assistant.DefaultRole),
			CaptureTasks: cfg.Telegram.CaptureTasks,
		})
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: telegram.bot_token is not set")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AllowOrigins:     cfg.CORS.AllowOrigins,
		ShutdownTimeout:  cfg.HTTPServer.ShutdownTimeout,
		Middleware:       mw,
		AssistantHandler: assistantHTTP.New(logger, assistantUseCase, cfg.Assistant.CaptureTasks),
		TaskHandler:      taskHTTP.New(logger, taskUseCase),
		TelegramHandler:  telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this service, auto-detecting an ngrok
// tunnel when no webhook URL is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, cfg.NgrokAPI)
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook not registered: no public URL")
		return
	}
	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
