package service

import (
	"context"
	"time"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
	startedAt time.Time

	now    clock
	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		startedAt: utcNow(),
		now:       utcNow,
		logger:    logger,
	}
}

func (s *appInfoService) BuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}

// Uptime returns the time elapsed since the service was constructed.
func (s *appInfoService) Uptime(ctx context.Context) time.Duration {
	return s.now().Sub(s.startedAt)
}
