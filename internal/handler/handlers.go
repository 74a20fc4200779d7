package handler

import (
	"github.com/hcorbage/corb3d/internal/config"
	"github.com/hcorbage/corb3d/internal/handler/http"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
