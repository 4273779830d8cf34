package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	JWT        JWTConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Clinic assistant
	Assistant      AssistantConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
	Postgres       PostgresConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
}

type CORSConfig struct {
	AllowOrigins []string
}

type RateLimitConfig struct {
	PerMin int
	Burst  int
}

type AssistantConfig struct {
	Timezone        string
	SessionTTL      time.Duration
	SessionCapacity int
	DefaultRole     string
	CaptureTasks    bool
}

type TelegramConfig struct {
	BotToken     string
	WebhookURL   string
	SecretToken  string
	CaptureTasks bool
	// NgrokAPI is queried for a public URL when WebhookURL is empty.
	NgrokAPI string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type PostgresConfig struct {
	DSN string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/.
// A local .env file is loaded first so its values reach AutomaticEnv.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Auth & traffic
	cfg.JWT.SecretKey = expandEnvVar(viper.GetString("jwt.secret_key"))
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.CORS.AllowOrigins = splitList(viper.GetString("cors.allow_origins"))
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Assistant
	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	cfg.Assistant.SessionTTL = viper.GetDuration("assistant.session_ttl")
	cfg.Assistant.SessionCapacity = viper.GetInt("assistant.session_capacity")
	cfg.Assistant.DefaultRole = viper.GetString("assistant.default_role")
	cfg.Assistant.CaptureTasks = viper.GetBool("assistant.capture_tasks")

	// Telegram
	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = expandEnvVar(viper.GetString("telegram.secret_token"))
	cfg.Telegram.CaptureTasks = viper.GetBool("telegram.capture_tasks")
	cfg.Telegram.NgrokAPI = viper.GetString("telegram.ngrok_api")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")

	// Postgres
	cfg.Postgres.DSN = expandEnvVar(viper.GetString("postgres.dsn"))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Environment.Name == "production" && cfg.JWT.SecretKey == "" {
		return errors.New("jwt.secret_key is required in production")
	}
	if cfg.Assistant.SessionCapacity < 0 {
		return errors.New("assistant.session_capacity must not be negative")
	}
	if cfg.RateLimit.PerMin < 0 {
		return errors.New("rate_limit.per_min must not be negative")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("jwt.secret_key", "dev-secret")
	viper.SetDefault("jwt.issuer", "clinic-assistant")
	viper.SetDefault("cors.allow_origins", "http://localhost:3000")
	viper.SetDefault("rate_limit.per_min", 120)
	viper.SetDefault("rate_limit.burst", 0)

	viper.SetDefault("assistant.timezone", "Asia/Ho_Chi_Minh")
	viper.SetDefault("assistant.session_ttl", "24h")
	viper.SetDefault("assistant.session_capacity", 1000)
	viper.SetDefault("assistant.default_role", "receptionist")
	viper.SetDefault("assistant.capture_tasks", false)

	viper.SetDefault("telegram.capture_tasks", true)
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// splitList reads comma-separated values; viper does not split env strings.
func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
