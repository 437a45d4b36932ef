// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/finance-flow/models"
)

// AuthService owns user accounts and the bearer tokens issued for them.
type AuthService interface {
	// Register creates the account and returns it with a fresh token.
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)
	// Login checks the credentials and returns the account with a fresh token.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)
	Me(ctx context.Context, userID int64) (models.User, error)
	ChangePassword(ctx context.Context, change models.PasswordChange) error
	// Authenticate verifies a raw token and returns the subject user id.
	Authenticate(ctx context.Context, token string) (int64, error)
}

// TransactionService manages the transactions of one user at a time. Every
// method is scoped by the user id carried in its arguments.
type TransactionService interface {
	Create(ctx context.Context, transaction models.Transaction) (int64, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	Get(ctx context.Context, id, userID int64) (models.Transaction, error)
	Update(ctx context.Context, transaction models.Transaction) error
	Delete(ctx context.Context, id, userID int64) error
	Balance(ctx context.Context, userID int64) (models.Balance, error)
}

type CategoryService interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Subcategories(ctx context.Context) ([]models.Subcategory, error)
	SubcategoriesByCategory(ctx context.Context, categoryID int64) ([]models.Subcategory, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfo
}
