package service

import (
	"context"

	"github.com/MKhiriev/finance-flow/internal/config"
	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/models"
)

type appInfoService struct {
	appVersion string
	build      models.BuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports the configured version. Build fields left
// empty by the linker are reported as "N/A".
func NewAppInfoService(cfg config.App, build models.BuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	if build.Version == "" {
		build.Version = cfg.Version
	}
	if build.Date == "" {
		build.Date = "N/A"
	}
	if build.Commit == "" {
		build.Commit = "N/A"
	}

	return &appInfoService{
		appVersion: cfg.Version,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfo {
	return s.build
}
