// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/internal/store"
	"github.com/MKhiriev/finance-flow/models"
)

type transactionService struct {
	transactionRepository store.TransactionRepository
	logger                *logger.Logger
}

func NewTransactionService(transactionRepository store.TransactionRepository, logger *logger.Logger) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		logger:                logger,
	}
}

// Create stores the transaction and returns its id. An unknown category or
// subcategory, or a value the database rejects, yields
// ErrInvalidDataProvided.
func (s *transactionService) Create(ctx context.Context, transaction models.Transaction) (int64, error) {
	log := logger.FromContext(ctx)

	if err := checkTransaction(transaction); err != nil {
		log.Error().Int64("user_id", transaction.UserID).Err(err).Msg("invalid transaction data provided")
		return 0, err
	}

	id, err := s.transactionRepository.CreateTransaction(ctx, transaction)
	if err != nil {
		log.Err(err).Int64("user_id", transaction.UserID).Msg("transaction creation ended with error")
		return 0, invalidDataOr(err, "transaction creation ended with error")
	}

	return id, nil
}

func (s *transactionService) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	transactions, err := s.transactionRepository.FindTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}

	return transactions, nil
}

func (s *transactionService) Get(ctx context.Context, id, userID int64) (models.Transaction, error) {
	transaction, err := s.transactionRepository.FindTransactionByID(ctx, id, userID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("error getting transaction: %w", err)
	}

	return transaction, nil
}

// Update overwrites an existing transaction of the user. A transaction that
// does not exist for that user yields store.ErrTransactionNotFound before
// any write is attempted.
func (s *transactionService) Update(ctx context.Context, transaction models.Transaction) error {
	log := logger.FromContext(ctx)

	if err := checkTransaction(transaction); err != nil {
		return err
	}

	if _, err := s.transactionRepository.FindTransactionByID(ctx, transaction.ID, transaction.UserID); err != nil {
		return fmt.Errorf("error getting transaction: %w", err)
	}

	if err := s.transactionRepository.UpdateTransaction(ctx, transaction); err != nil {
		log.Err(err).
			Int64("transaction_id", transaction.ID).
			Int64("user_id", transaction.UserID).
			Msg("transaction update ended with error")
		return invalidDataOr(err, "transaction update ended with error")
	}

	return nil
}

func (s *transactionService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.transactionRepository.DeleteTransaction(ctx, id, userID); err != nil {
		return fmt.Errorf("error deleting transaction: %w", err)
	}

	return nil
}

func (s *transactionService) Balance(ctx context.Context, userID int64) (models.Balance, error) {
	balance, err := s.transactionRepository.GetBalance(ctx, userID)
	if err != nil {
		return models.Balance{}, fmt.Errorf("error computing balance: %w", err)
	}

	return balance, nil
}

func checkTransaction(t models.Transaction) error {
	switch {
	case t.UserID == 0:
		return fmt.Errorf("%w: no user id", ErrInvalidDataProvided)
	case t.Type != models.TransactionIncome && t.Type != models.TransactionExpense:
		return fmt.Errorf("%w: unknown transaction type %q", ErrInvalidDataProvided, t.Type)
	case math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0):
		return fmt.Errorf("%w: amount is not a finite number", ErrInvalidDataProvided)
	case t.Amount <= 0:
		return fmt.Errorf("%w: amount must be positive", ErrInvalidDataProvided)
	}
	return nil
}

// invalidDataOr reports rejected references and values as
// ErrInvalidDataProvided and wraps everything else with msg.
func invalidDataOr(err error, msg string) error {
	if errors.Is(err, store.ErrInvalidReference) || errors.Is(err, store.ErrConstraintViolated) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
