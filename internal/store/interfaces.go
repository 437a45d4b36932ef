package store

import (
	"context"

	"github.com/MKhiriev/finance-flow/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt set.
	// A taken e-mail yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// TransactionRepository persists transactions. Every method is scoped to
// the owning user; a transaction of another user is reported as
// ErrTransactionNotFound.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, transaction models.Transaction) (int64, error)
	FindTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	FindTransactionByID(ctx context.Context, id, userID int64) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, transaction models.Transaction) error
	DeleteTransaction(ctx context.Context, id, userID int64) error
	GetBalance(ctx context.Context, userID int64) (models.Balance, error)
}

// CategoryRepository reads the seeded category tree.
type CategoryRepository interface {
	FindCategories(ctx context.Context) ([]models.Category, error)
	FindSubcategories(ctx context.Context) ([]models.Subcategory, error)
	FindSubcategoriesByCategory(ctx context.Context, categoryID int64) ([]models.Subcategory, error)
}

// ErrorClassificator maps a driver error to one of ErrDuplicate,
// ErrInvalidReference or ErrConstraintViolated, or nil when the error has
// no known class.
type ErrorClassificator interface {
	Classify(err error) error
}
