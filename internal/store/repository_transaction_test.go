// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/models"
)

func newTestTransactionRepo(t *testing.T) (TransactionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewTransactionRepository(db, logger.Nop()), mock
}

var transactionRowColumns = []string{
	"id", "user_id", "type", "transaction_date", "category_id", "subcategory_id",
	"amount", "description", "title", "location", "created_at",
	"category_name", "subcategory_name",
}

func sampleTransaction() models.Transaction {
	sub := int64(2)
	title := "Weekly shop"
	return models.Transaction{
		ID:              10,
		UserID:          1,
		Type:            models.TransactionExpense,
		TransactionDate: models.NewDate(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		CategoryID:      1,
		SubcategoryID:   &sub,
		Amount:          42.5,
		Description:     "milk, bread",
		Title:           &title,
	}
}

// ── query builders ───────────────────────────────────────────────────────────

func Test_buildFindTransactionsQuery(t *testing.T) {
	t.Run("user only", func(t *testing.T) {
		query, args, err := buildFindTransactionsQuery(models.TransactionFilter{UserID: 5})
		require.NoError(t, err)

		assert.Equal(t, []any{int64(5)}, args)
		assert.Contains(t, query, "FROM transactions t")
		assert.Contains(t, query, "LEFT JOIN categories c ON t.category_id = c.id")
		assert.Contains(t, query, "LEFT JOIN subcategories sc ON t.subcategory_id = sc.id")
		assert.Contains(t, query, "WHERE t.user_id = $1")
		assert.NotContains(t, query, "t.category_id = $")
		assert.True(t, strings.HasSuffix(query, "ORDER BY t.transaction_date DESC, t.created_at DESC"))
	})

	t.Run("with category", func(t *testing.T) {
		category := int64(3)
		query, args, err := buildFindTransactionsQuery(models.TransactionFilter{UserID: 5, CategoryID: &category})
		require.NoError(t, err)

		assert.Equal(t, []any{int64(5), int64(3)}, args)
		assert.Contains(t, query, "WHERE t.user_id = $1 AND t.category_id = $2")
	})
}

func Test_buildUpdateTransactionQuery(t *testing.T) {
	tx := sampleTransaction()

	query, args, err := buildUpdateTransactionQuery(tx)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE transactions SET type = $1, transaction_date = $2, category_id = $3, "+
		"subcategory_id = $4, amount = $5, description = $6, title = $7, location = $8 "+
		"WHERE id = $9 AND user_id = $10", query)
	require.Len(t, args, 10)
	assert.Equal(t, tx.ID, args[8])
	assert.Equal(t, tx.UserID, args[9])
}

// ── CreateTransaction ────────────────────────────────────────────────────────

func TestCreateTransaction_Success(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)
	tx := sampleTransaction()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(tx.UserID, "expense", "2024-03-15", tx.CategoryID, int64(2), 42.5, "milk, bread", "Weekly shop", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(77))

	id, err := repo.CreateTransaction(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction_ClassifiesDriverErrors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "unknown category", dbErr: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrInvalidReference},
		{name: "check violation", dbErr: pgError(pgerrcode.CheckViolation), wantErr: ErrConstraintViolated},
		{name: "amount overflow", dbErr: pgError(pgerrcode.NumericValueOutOfRange), wantErr: ErrConstraintViolated},
		{name: "connection", dbErr: errors.New("connection reset"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestTransactionRepo(t)
			mock.ExpectQuery("INSERT INTO transactions").WillReturnError(tt.dbErr)

			_, err := repo.CreateTransaction(context.Background(), sampleTransaction())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrExecutingQuery)
		})
	}
}

// ── FindTransactions / FindTransactionByID ───────────────────────────────────

func TestFindTransactions(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)
	created := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.user_id = $1 ORDER BY")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(transactionRowColumns).
			AddRow(2, 1, "income", "2024-03-16", 6, nil, 1000.0, "", nil, nil, created, "Income", nil).
			AddRow(1, 1, "expense", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 1, 2, 42.5, "milk", "Shop", "Corner", created, "Food", "Restaurants"))

	list, err := repo.FindTransactions(context.Background(), models.TransactionFilter{UserID: 1})
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, models.TransactionIncome, list[0].Type)
	assert.Equal(t, "2024-03-16", list[0].TransactionDate.String())
	assert.Nil(t, list[0].SubcategoryID)
	assert.Nil(t, list[0].SubcategoryName)
	require.NotNil(t, list[0].CategoryName)
	assert.Equal(t, "Income", *list[0].CategoryName)

	assert.Equal(t, "2024-03-15", list[1].TransactionDate.String())
	require.NotNil(t, list[1].SubcategoryID)
	assert.Equal(t, int64(2), *list[1].SubcategoryID)
	assert.Equal(t, "Corner", *list[1].Location)
}

func TestFindTransactions_Empty(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery("FROM transactions t").
		WillReturnRows(sqlmock.NewRows(transactionRowColumns))

	list, err := repo.FindTransactions(context.Background(), models.TransactionFilter{UserID: 1})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestFindTransactions_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)
		mock.ExpectQuery("FROM transactions t").WillReturnError(errors.New("boom"))

		_, err := repo.FindTransactions(context.Background(), models.TransactionFilter{UserID: 1})
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)
		mock.ExpectQuery("FROM transactions t").
			WillReturnRows(sqlmock.NewRows(transactionRowColumns).
				AddRow(1, 1, "expense", "not a date", 1, nil, 1.0, "", nil, nil, time.Now(), nil, nil))

		_, err := repo.FindTransactions(context.Background(), models.TransactionFilter{UserID: 1})
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("iteration", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)
		mock.ExpectQuery("FROM transactions t").
			WillReturnRows(sqlmock.NewRows(transactionRowColumns).
				AddRow(1, 1, "expense", "2024-01-01", 1, nil, 1.0, "", nil, nil, time.Now(), nil, nil).
				RowError(0, errors.New("network")))

		_, err := repo.FindTransactions(context.Background(), models.TransactionFilter{UserID: 1})
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestFindTransactionByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE t.id = $1 AND t.user_id = $2")).
			WithArgs(int64(10), int64(1)).
			WillReturnRows(sqlmock.NewRows(transactionRowColumns).
				AddRow(10, 1, "expense", "2024-03-15", 1, nil, 5.0, "", nil, nil, time.Now(), "Food", nil))

		tx, err := repo.FindTransactionByID(context.Background(), 10, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(10), tx.ID)
	})

	t.Run("other user or missing", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)
		mock.ExpectQuery("FROM transactions t").
			WithArgs(int64(10), int64(2)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindTransactionByID(context.Background(), 10, 2)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

// ── UpdateTransaction / DeleteTransaction ────────────────────────────────────

func TestUpdateTransaction(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "updated",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE transactions SET").WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not owned",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE transactions SET").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrTransactionNotFound,
		},
		{
			name: "unknown subcategory",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE transactions SET").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
			},
			wantErr: ErrInvalidReference,
		},
		{
			name: "rows affected error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE transactions SET").
					WillReturnResult(sqlmock.NewErrorResult(errors.New("unsupported")))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestTransactionRepo(t)
			tt.setup(mock)

			err := repo.UpdateTransaction(context.Background(), sampleTransaction())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions WHERE id = $1 AND user_id = $2")).
			WithArgs(int64(10), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteTransaction(context.Background(), 10, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)
		mock.ExpectExec("DELETE FROM transactions").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteTransaction(context.Background(), 10, 1), ErrTransactionNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestTransactionRepo(t)
		mock.ExpectExec("DELETE FROM transactions").WillReturnError(errors.New("boom"))

		assert.ErrorIs(t, repo.DeleteTransaction(context.Background(), 10, 1), ErrExecutingQuery)
	})
}

// ── GetBalance ───────────────────────────────────────────────────────────────

func TestGetBalance(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(CASE WHEN type = 'income'")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"total_income", "total_expense"}).AddRow("1500.00", 320.25))

	balance, err := repo.GetBalance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.Balance{TotalIncome: 1500, TotalExpense: 320.25, Balance: 1179.75}, balance)
}

func TestGetBalance_NoTransactions(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery("FROM transactions").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"total_income", "total_expense"}).AddRow(0, 0))

	balance, err := repo.GetBalance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.Balance{}, balance)
}

func TestGetBalance_Error(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)
	mock.ExpectQuery("FROM transactions").WillReturnError(errors.New("boom"))

	_, err := repo.GetBalance(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
