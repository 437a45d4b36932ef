// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/models"
)

// transactionRepository is the SQL implementation of
// [TransactionRepository]. Listing and update statements are assembled with
// squirrel, the rest are static.
type transactionRepository struct {
	*DB
	logger *logger.Logger
}

func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	return &transactionRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateTransaction inserts t and returns its id. A category or subcategory
// that does not exist yields an error wrapping [ErrInvalidReference].
func (r *transactionRepository) CreateTransaction(ctx context.Context, t models.Transaction) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := r.DB.QueryRowContext(ctx, createTransaction,
		t.UserID,
		t.Type,
		t.TransactionDate,
		t.CategoryID,
		t.SubcategoryID,
		t.Amount,
		t.Description,
		t.Title,
		t.Location,
	).Scan(&id)
	if err != nil {
		err = r.DB.classify(err)
		log.Err(err).
			Str("func", "transactionRepository.CreateTransaction").
			Int64("user_id", t.UserID).
			Msg("failed to insert transaction")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, nil
}

// FindTransactions lists the user's transactions, newest first, with
// category and subcategory names joined in.
func (r *transactionRepository) FindTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindTransactionsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.FindTransactions").
			Int64("user_id", filter.UserID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.FindTransactions").
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for listing transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Transaction, 0, 50)
	for rows.Next() {
		item, scanErr := scanTransaction(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "transactionRepository.FindTransactions").
				Int64("user_id", filter.UserID).
				Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "transactionRepository.FindTransactions").
			Int64("user_id", filter.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// FindTransactionByID returns one transaction of the user.
func (r *transactionRepository) FindTransactionByID(ctx context.Context, id, userID int64) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectTransactions().
		Where(sq.Eq{"t.id": id, "t.user_id": userID}).
		ToSql()
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanTransaction(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Transaction{}, ErrTransactionNotFound
	case err != nil:
		log.Err(err).
			Str("func", "transactionRepository.FindTransactionByID").
			Int64("transaction_id", id).
			Int64("user_id", userID).
			Msg("failed to get transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

// UpdateTransaction overwrites the editable fields of t, matched by
// t.ID and t.UserID.
func (r *transactionRepository) UpdateTransaction(ctx context.Context, t models.Transaction) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTransactionQuery(t)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		err = r.DB.classify(err)
		log.Err(err).
			Str("func", "transactionRepository.UpdateTransaction").
			Int64("transaction_id", t.ID).
			Int64("user_id", t.UserID).
			Msg("failed to update transaction")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectOneRow(result)
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(transactionsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.DeleteTransaction").
			Int64("transaction_id", id).
			Int64("user_id", userID).
			Msg("failed to delete transaction")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectOneRow(result)
}

// GetBalance sums the user's income and expense. A user without
// transactions has a zero balance.
func (r *transactionRepository) GetBalance(ctx context.Context, userID int64) (models.Balance, error) {
	log := logger.FromContext(ctx)

	var balance models.Balance
	err := r.DB.QueryRowContext(ctx, getBalance, userID).Scan(&balance.TotalIncome, &balance.TotalExpense)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.GetBalance").
			Int64("user_id", userID).
			Msg("failed to compute balance")
		return models.Balance{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	balance.Balance = balance.TotalIncome - balance.TotalExpense
	return balance, nil
}

func buildFindTransactionsQuery(filter models.TransactionFilter) (string, []any, error) {
	query := selectTransactions().Where(sq.Eq{"t.user_id": filter.UserID})
	if filter.CategoryID != nil {
		query = query.Where(sq.Eq{"t.category_id": *filter.CategoryID})
	}

	return query.
		OrderBy("t.transaction_date DESC", "t.created_at DESC").
		ToSql()
}

func buildUpdateTransactionQuery(t models.Transaction) (string, []any, error) {
	return psql.Update(transactionsTable).
		Set("type", t.Type).
		Set("transaction_date", t.TransactionDate).
		Set("category_id", t.CategoryID).
		Set("subcategory_id", t.SubcategoryID).
		Set("amount", t.Amount).
		Set("description", t.Description).
		Set("title", t.Title).
		Set("location", t.Location).
		Where(sq.Eq{"id": t.ID}).
		Where(sq.Eq{"user_id": t.UserID}).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Type,
		&t.TransactionDate,
		&t.CategoryID,
		&t.SubcategoryID,
		&t.Amount,
		&t.Description,
		&t.Title,
		&t.Location,
		&t.CreatedAt,
		&t.CategoryName,
		&t.SubcategoryName,
	)
	return t, err
}

func expectOneRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
