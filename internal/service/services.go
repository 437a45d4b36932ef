package service

import (
	"fmt"

	"github.com/MKhiriev/finance-flow/internal/config"
	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/internal/ratelimit"
	"github.com/MKhiriev/finance-flow/internal/store"
	"github.com/MKhiriev/finance-flow/models"
)

type Services struct {
	AuthService        AuthService
	TransactionService TransactionService
	CategoryService    CategoryService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, limiter ratelimit.RateLimiter, cfg config.StructuredConfig, build models.BuildInfo, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, limiter, cfg.Auth, cfg.RateLimit, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:        authService,
		TransactionService: NewTransactionService(storages.TransactionRepository, logger),
		CategoryService:    NewCategoryService(storages.CategoryRepository, logger),
		AppInfoService:     appInfoService,
	}, nil
}
