package middleware

import (
	"clinic-assistant/pkg/log"
	"clinic-assistant/pkg/scope"
)

// Config holds the tunables of the HTTP middlewares.
type Config struct {
	RateLimitPerMin int
	RateLimitBurst  int
	TelegramSecret  string
}

type Middleware struct {
	l              log.Logger
	jwtManager     scope.Manager
	limiter        *rateLimiter
	telegramSecret string
}

func New(l log.Logger, jwtManager scope.Manager, cfg Config) Middleware {
	return Middleware{
		l:              l,
		jwtManager:     jwtManager,
		limiter:        newRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst),
		telegramSecret: cfg.TelegramSecret,
	}
}
