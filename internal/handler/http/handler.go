package http

import (
	"time"

	"github.com/hcorbage/corb3d/internal/config"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/service"
	"github.com/hcorbage/corb3d/internal/validators"
)

const defaultSessionCookieName = "corb3d_session"

// sessionCookie describes the cookie that carries the signed session token.
type sessionCookie struct {
	name   string
	secure bool
	ttl    time.Duration
}

type Handler struct {
	services  *service.Services
	validator validators.Validator

	cookie         sessionCookie
	allowedOrigins []string
	metrics        *httpMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	cookie := sessionCookie{
		name:   cfg.App.SessionCookieName,
		secure: cfg.App.SecureCookie,
		ttl:    cfg.App.SessionTTL,
	}
	if cookie.name == "" {
		cookie.name = defaultSessionCookieName
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewStructValidator(),
		cookie:         cookie,
		allowedOrigins: cfg.Server.AllowedOrigins,
		metrics:        newHTTPMetrics(),
		logger:         logger,
	}
}
